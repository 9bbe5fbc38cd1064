package service

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/pribylovaa/go-filmorate/internal/config"
	"github.com/pribylovaa/go-filmorate/internal/models"
	"github.com/pribylovaa/go-filmorate/internal/storage/memory"
	"github.com/stretchr/testify/require"
)

// Сценарии поверх хранилища в памяти: сервисы и хранилище вместе.

type services struct {
	films  *FilmService
	people *PersonService
	dict   *DictionaryService
}

func newMemoryServices(t *testing.T) services {
	t.Helper()
	st := memory.New()
	t.Cleanup(st.Close)

	dict := NewDictionaryService(st)
	return services{
		films:  NewFilmService(st, st, dict, config.LimitsConfig{PopularDefault: 10}),
		people: NewPersonService(st),
		dict:   dict,
	}
}

func mustCreatePerson(t *testing.T, s *PersonService, login string) *models.Person {
	t.Helper()
	p, err := s.Create(context.Background(), PersonInput{
		Login:    login,
		Email:    login + "@example.com",
		Birthday: time.Date(1990, time.January, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	return p
}

func mustCreateFilm(t *testing.T, s *FilmService, name string) *models.Film {
	t.Helper()
	f, err := s.Create(context.Background(), FilmInput{
		Name:        name,
		Description: "d",
		ReleaseDate: time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC),
		Duration:    90,
		RatingID:    1,
		GenreIDs:    []int64{2},
	})
	require.NoError(t, err)
	return f
}

// Дружба симметрична, общие друзья — пересечение.
func TestScenario_Friendship(t *testing.T) {
	s := newMemoryServices(t)
	ctx := context.Background()

	a := mustCreatePerson(t, s.people, "alice")
	b := mustCreatePerson(t, s.people, "bob")
	c := mustCreatePerson(t, s.people, "carol")

	require.NoError(t, s.people.AddFriend(ctx, a.ID(), c.ID()))
	require.NoError(t, s.people.AddFriend(ctx, b.ID(), c.ID()))
	require.NoError(t, s.people.AddFriend(ctx, a.ID(), c.ID()))

	friends, err := s.people.Friends(ctx, c.ID())
	require.NoError(t, err)
	require.Len(t, friends, 2)
	require.Equal(t, a.ID(), friends[0].ID())
	require.Equal(t, b.ID(), friends[1].ID())

	common, err := s.people.CommonFriends(ctx, a.ID(), b.ID())
	require.NoError(t, err)
	require.Len(t, common, 1)
	require.Equal(t, c.ID(), common[0].ID())

	require.ErrorIs(t, s.people.AddFriend(ctx, a.ID(), a.ID()), ErrInvalidArgument)
	require.ErrorIs(t, s.people.AddFriend(ctx, a.ID(), 999), ErrPersonNotFound)

	require.NoError(t, s.people.DeleteFriend(ctx, c.ID(), a.ID()))
	friends, err = s.people.Friends(ctx, a.ID())
	require.NoError(t, err)
	require.Empty(t, friends)
}

// Update профиля не теряет друзей.
func TestScenario_PersonUpdateKeepsFriends(t *testing.T) {
	s := newMemoryServices(t)
	ctx := context.Background()

	a := mustCreatePerson(t, s.people, "alice")
	b := mustCreatePerson(t, s.people, "bob")
	require.NoError(t, s.people.AddFriend(ctx, a.ID(), b.ID()))

	upd, err := s.people.Update(ctx, PersonInput{
		ID: a.ID(), Login: "alice2", Name: "Alice", Email: "a@example.com",
		Birthday: time.Date(1991, time.May, 5, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	require.Equal(t, "alice2", upd.Login)
	require.True(t, upd.Friends.Has(b.ID()))

	_, err = s.people.Update(ctx, PersonInput{
		ID: b.ID(), Login: "alice2", Email: "b@example.com",
		Birthday: time.Date(1992, time.June, 6, 0, 0, 0, 0, time.UTC),
	})
	require.ErrorIs(t, err, ErrAlreadyExists)
}

// Лайки идемпотентны, рейтинг детерминирован.
func TestScenario_LikesAndTopPopular(t *testing.T) {
	s := newMemoryServices(t)
	ctx := context.Background()

	films := make([]*models.Film, 0, 4)
	for i := range 4 {
		films = append(films, mustCreateFilm(t, s.films, fmt.Sprintf("film-%d", i)))
	}
	u1 := mustCreatePerson(t, s.people, "u1")
	u2 := mustCreatePerson(t, s.people, "u2")

	// films[2]: 2 лайка, films[1] и films[3]: по 1, films[0]: 0.
	for _, like := range []struct{ film, person int64 }{
		{films[2].ID(), u1.ID()},
		{films[2].ID(), u2.ID()},
		{films[3].ID(), u1.ID()},
		{films[1].ID(), u2.ID()},
		{films[1].ID(), u2.ID()},
	} {
		_, err := s.films.SetLike(ctx, like.film, like.person)
		require.NoError(t, err)
	}

	top, err := s.films.TopPopular(ctx, 10)
	require.NoError(t, err)
	require.Equal(t, []int64{films[2].ID(), films[1].ID(), films[3].ID(), films[0].ID()}, ids(top))
	require.Equal(t, 1, top[1].LikeCount())

	top, err = s.films.TopPopular(ctx, 2)
	require.NoError(t, err)
	require.Len(t, top, 2)

	_, err = s.films.SetLike(ctx, 999, u1.ID())
	require.ErrorIs(t, err, ErrFilmNotFound)
	_, err = s.films.SetLike(ctx, films[0].ID(), 999)
	require.ErrorIs(t, err, ErrPersonNotFound)

	got, err := s.films.RemoveLike(ctx, films[2].ID(), u1.ID())
	require.NoError(t, err)
	require.Equal(t, 1, got.LikeCount())
}

// Без верхней границы TopPopular возвращает ровно count фильмов, если их достаточно.
func TestScenario_TopPopularLargeCount(t *testing.T) {
	s := newMemoryServices(t)
	ctx := context.Background()

	const n = 120
	for i := range n {
		mustCreateFilm(t, s.films, fmt.Sprintf("film-%d", i))
	}

	top, err := s.films.TopPopular(ctx, n)
	require.NoError(t, err)
	require.Len(t, top, n)

	top, err = s.films.TopPopular(ctx, n+5)
	require.NoError(t, err)
	require.Len(t, top, n)
}

// Update фильма сохраняет лайки, заменяет жанры и разрешает их названия.
func TestScenario_FilmUpdate(t *testing.T) {
	s := newMemoryServices(t)
	ctx := context.Background()

	f := mustCreateFilm(t, s.films, "film")
	u := mustCreatePerson(t, s.people, "u")
	_, err := s.films.SetLike(ctx, f.ID(), u.ID())
	require.NoError(t, err)

	upd, err := s.films.Update(ctx, FilmInput{
		ID: f.ID(), Name: "renamed", ReleaseDate: time.Date(2001, time.January, 1, 0, 0, 0, 0, time.UTC),
		Duration: 95, RatingID: 3, GenreIDs: []int64{6, 1},
	})
	require.NoError(t, err)
	require.Equal(t, "renamed", upd.Name)
	require.Equal(t, "PG-13", upd.Rating.Name)
	require.Equal(t, []models.Genre{{ID: 1, Name: "Комедия"}, {ID: 6, Name: "Боевик"}}, upd.Genres)
	require.Equal(t, 1, upd.LikeCount())

	_, err = s.films.Update(ctx, FilmInput{
		ID: 999, Name: "x", ReleaseDate: time.Date(2001, time.January, 1, 0, 0, 0, 0, time.UTC), Duration: 1, RatingID: 1,
	})
	require.ErrorIs(t, err, ErrFilmNotFound)

	_, err = s.films.Update(ctx, FilmInput{
		ID: f.ID(), Name: "x", ReleaseDate: time.Date(2001, time.January, 1, 0, 0, 0, 0, time.UTC), Duration: 1, RatingID: 42,
	})
	require.ErrorIs(t, err, ErrRatingNotFound)
}

func TestScenario_Dictionary(t *testing.T) {
	s := newMemoryServices(t)
	ctx := context.Background()

	genres, err := s.dict.Genres(ctx)
	require.NoError(t, err)
	require.Len(t, genres, 6)

	ratings, err := s.dict.Ratings(ctx)
	require.NoError(t, err)
	require.Equal(t, "G", ratings[0].Name)

	_, err = s.dict.GenreByID(ctx, 100)
	require.ErrorIs(t, err, ErrGenreNotFound)
}

// interleavingStore записывает связь непосредственно перед обновлением записи,
// воспроизводя параллельный SetLike/AddFriend между чтением и записью.
type interleavingStore struct {
	*memory.Storage
	beforeUpdate func()
}

func (s *interleavingStore) UpdateFilmDetails(ctx context.Context, film *models.Film) (*models.Film, error) {
	s.beforeUpdate()
	return s.Storage.UpdateFilmDetails(ctx, film)
}

func (s *interleavingStore) UpdateProfile(ctx context.Context, person *models.Person) (*models.Person, error) {
	s.beforeUpdate()
	return s.Storage.UpdateProfile(ctx, person)
}

// Лайк, сохранённый непосредственно перед Update фильма, не теряется.
func TestScenario_FilmUpdateKeepsInterleavedLike(t *testing.T) {
	st := &interleavingStore{Storage: memory.New()}
	dict := NewDictionaryService(st)
	films := NewFilmService(st, st, dict, config.LimitsConfig{PopularDefault: 10})
	people := NewPersonService(st)
	ctx := context.Background()

	st.beforeUpdate = func() {}
	f := mustCreateFilm(t, films, "film")
	u := mustCreatePerson(t, people, "u")

	st.beforeUpdate = func() {
		require.NoError(t, st.SaveLike(ctx, f.ID(), u.ID()))
	}

	upd, err := films.Update(ctx, FilmInput{
		ID: f.ID(), Name: "renamed", ReleaseDate: time.Date(2001, time.January, 1, 0, 0, 0, 0, time.UTC),
		Duration: 95, RatingID: 1,
	})
	require.NoError(t, err)
	require.Equal(t, []int64{u.ID()}, upd.Likes.Sorted())

	got, err := films.FilmByID(ctx, f.ID())
	require.NoError(t, err)
	require.True(t, got.Likes.Has(u.ID()))
}

// Дружба, добавленная другим пользователем перед Update профиля, сохраняется с обеих сторон.
func TestScenario_PersonUpdateKeepsInterleavedFriendship(t *testing.T) {
	st := &interleavingStore{Storage: memory.New(), beforeUpdate: func() {}}
	people := NewPersonService(st)
	ctx := context.Background()

	a := mustCreatePerson(t, people, "alice")
	b := mustCreatePerson(t, people, "bob")

	st.beforeUpdate = func() {
		require.NoError(t, st.SaveFriendship(ctx, b.ID(), a.ID()))
	}

	upd, err := people.Update(ctx, PersonInput{
		ID: a.ID(), Login: "alice", Name: "Alice", Email: "alice@example.com",
		Birthday: time.Date(1990, time.January, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	require.True(t, upd.Friends.Has(b.ID()))

	friendsOfB, err := people.Friends(ctx, b.ID())
	require.NoError(t, err)
	require.Len(t, friendsOfB, 1)
	require.Equal(t, a.ID(), friendsOfB[0].ID())
}

// Параллельные Update и SetLike/AddFriend не теряют связей.
func TestScenario_ConcurrentUpdatesKeepRelations(t *testing.T) {
	s := newMemoryServices(t)
	ctx := context.Background()

	f := mustCreateFilm(t, s.films, "film")
	owner := mustCreatePerson(t, s.people, "owner")

	const n = 20
	likers := make([]*models.Person, 0, n)
	for i := range n {
		likers = append(likers, mustCreatePerson(t, s.people, fmt.Sprintf("liker%d", i)))
	}

	var wg sync.WaitGroup
	for i, p := range likers {
		wg.Add(3)
		go func() {
			defer wg.Done()
			_, err := s.films.SetLike(ctx, f.ID(), p.ID())
			require.NoError(t, err)
		}()
		go func() {
			defer wg.Done()
			require.NoError(t, s.people.AddFriend(ctx, p.ID(), owner.ID()))
		}()
		go func() {
			defer wg.Done()
			_, err := s.films.Update(ctx, FilmInput{
				ID: f.ID(), Name: fmt.Sprintf("film-%d", i), ReleaseDate: time.Date(2001, time.January, 1, 0, 0, 0, 0, time.UTC),
				Duration: 90, RatingID: 1,
			})
			require.NoError(t, err)
			_, err = s.people.Update(ctx, PersonInput{
				ID: owner.ID(), Login: "owner", Name: fmt.Sprintf("Owner %d", i), Email: "owner@example.com",
				Birthday: time.Date(1990, time.January, 1, 0, 0, 0, 0, time.UTC),
			})
			require.NoError(t, err)
		}()
	}
	wg.Wait()

	got, err := s.films.FilmByID(ctx, f.ID())
	require.NoError(t, err)
	require.Equal(t, n, got.LikeCount())

	friends, err := s.people.Friends(ctx, owner.ID())
	require.NoError(t, err)
	require.Len(t, friends, n)
}

func ids(films []*models.Film) []int64 {
	out := make([]int64, 0, len(films))
	for _, f := range films {
		out = append(out, f.ID())
	}
	return out
}

// storagetest содержит общий набор проверок контракта storage.Storage.
// Один и тот же набор прогоняется против storage/memory и storage/postgres,
// чтобы обе реализации вели себя одинаково.
package storagetest

import (
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/pribylovaa/go-filmorate/internal/models"
	"github.com/pribylovaa/go-filmorate/internal/storage"
	"github.com/stretchr/testify/require"
)

// Factory возвращает новое пустое хранилище со справочниками по умолчанию.
// Освобождение ресурсов регистрируется через t.Cleanup.
type Factory func(t *testing.T) storage.Storage

// Run прогоняет весь набор проверок.
func Run(t *testing.T, newStorage Factory) {
	t.Run("FilmRoundTrip", func(t *testing.T) { testFilmRoundTrip(t, newStorage(t)) })
	t.Run("FilmIdentityRules", func(t *testing.T) { testFilmIdentityRules(t, newStorage(t)) })
	t.Run("FilmUpdateReplacesRelations", func(t *testing.T) { testFilmUpdateReplacesRelations(t, newStorage(t)) })
	t.Run("FilmUpdateDetailsKeepsLikes", func(t *testing.T) { testFilmUpdateDetailsKeepsLikes(t, newStorage(t)) })
	t.Run("FilmDictionaryReferences", func(t *testing.T) { testFilmDictionaryReferences(t, newStorage(t)) })
	t.Run("Likes", func(t *testing.T) { testLikes(t, newStorage(t)) })
	t.Run("TopPopular", func(t *testing.T) { testTopPopular(t, newStorage(t)) })
	t.Run("PersonRoundTrip", func(t *testing.T) { testPersonRoundTrip(t, newStorage(t)) })
	t.Run("PersonIdentityRules", func(t *testing.T) { testPersonIdentityRules(t, newStorage(t)) })
	t.Run("LoginUnique", func(t *testing.T) { testLoginUnique(t, newStorage(t)) })
	t.Run("Friendship", func(t *testing.T) { testFriendship(t, newStorage(t)) })
	t.Run("CommonFriends", func(t *testing.T) { testCommonFriends(t, newStorage(t)) })
	t.Run("PersonUpdateReplacesFriends", func(t *testing.T) { testPersonUpdateReplacesFriends(t, newStorage(t)) })
	t.Run("PersonUpdateProfileKeepsFriends", func(t *testing.T) { testPersonUpdateProfileKeepsFriends(t, newStorage(t)) })
	t.Run("Dictionary", func(t *testing.T) { testDictionary(t, newStorage(t)) })
}

// Опции сравнения: учитываем неэкспортируемый id и считаем nil/пустые коллекции равными.
var cmpOpts = []cmp.Option{
	cmp.AllowUnexported(models.Identity{}),
	cmpopts.EquateEmpty(),
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// NewFilm — фильм с валидными полями без id.
func NewFilm(name string) *models.Film {
	return &models.Film{
		Name:        name,
		Description: "description of " + name,
		ReleaseDate: date(1967, time.March, 25),
		Duration:    100,
		Rating:      &models.Rating{ID: 1},
	}
}

// NewPerson — пользователь с валидными полями без id.
func NewPerson(login string) *models.Person {
	return &models.Person{
		Login:    login,
		Name:     "Name " + login,
		Email:    login + "@mail.ru",
		Birthday: date(1946, time.August, 20),
	}
}

func mustFilm(t *testing.T, st storage.Storage, f *models.Film) *models.Film {
	t.Helper()
	created, err := st.CreateFilm(context.Background(), f)
	require.NoError(t, err)
	return created
}

func mustPerson(t *testing.T, st storage.Storage, p *models.Person) *models.Person {
	t.Helper()
	created, err := st.CreatePerson(context.Background(), p)
	require.NoError(t, err)
	return created
}

func filmIDs(films []*models.Film) []int64 {
	out := make([]int64, 0, len(films))
	for _, f := range films {
		out = append(out, f.ID())
	}
	return out
}

func personIDs(people []*models.Person) []int64 {
	out := make([]int64, 0, len(people))
	for _, p := range people {
		out = append(out, p.ID())
	}
	return out
}

func testFilmRoundTrip(t *testing.T, st storage.Storage) {
	ctx := context.Background()

	in := NewFilm("nisi eiusmod")
	in.Genres = []models.Genre{{ID: 2}, {ID: 1}, {ID: 2}}

	created, err := st.CreateFilm(ctx, in)
	require.NoError(t, err)
	require.True(t, created.HasID())
	require.False(t, in.HasID(), "input must not be mutated")

	want := &models.Film{
		Identity:    created.Identity,
		Name:        in.Name,
		Description: in.Description,
		ReleaseDate: in.ReleaseDate,
		Duration:    in.Duration,
		Rating:      &models.Rating{ID: 1, Name: "G"},
		Genres:      []models.Genre{{ID: 1, Name: "Комедия"}, {ID: 2, Name: "Драма"}},
	}
	if diff := cmp.Diff(want, created, cmpOpts...); diff != "" {
		t.Fatalf("created film mismatch (-want +got):\n%s", diff)
	}

	got, err := st.FilmByID(ctx, created.ID())
	require.NoError(t, err)
	if diff := cmp.Diff(created, got, cmpOpts...); diff != "" {
		t.Fatalf("film by id mismatch (-want +got):\n%s", diff)
	}

	second := mustFilm(t, st, NewFilm("second"))
	require.Greater(t, second.ID(), created.ID())

	all, err := st.Films(ctx)
	require.NoError(t, err)
	require.Equal(t, []int64{created.ID(), second.ID()}, filmIDs(all))
}

func testFilmIdentityRules(t *testing.T, st storage.Storage) {
	ctx := context.Background()

	withID := NewFilm("with id")
	require.NoError(t, withID.SetID(42))
	_, err := st.CreateFilm(ctx, withID)
	require.ErrorIs(t, err, storage.ErrInvalidArgument)

	_, err = st.UpdateFilm(ctx, NewFilm("no id"))
	require.ErrorIs(t, err, storage.ErrInvalidArgument)

	missing := NewFilm("missing")
	require.NoError(t, missing.SetID(9999))
	_, err = st.UpdateFilm(ctx, missing)
	require.ErrorIs(t, err, storage.ErrFilmNotFound)
	require.ErrorIs(t, err, storage.ErrNotFound)

	_, err = st.FilmByID(ctx, 9999)
	require.ErrorIs(t, err, storage.ErrFilmNotFound)
}

func testFilmUpdateReplacesRelations(t *testing.T, st storage.Storage) {
	ctx := context.Background()

	p1 := mustPerson(t, st, NewPerson("p1"))
	p2 := mustPerson(t, st, NewPerson("p2"))

	in := NewFilm("film")
	in.Genres = []models.Genre{{ID: 1}, {ID: 2}}
	in.Likes = models.NewIDSet(p1.ID())
	created := mustFilm(t, st, in)
	require.Equal(t, 1, created.LikeCount())

	upd := created.Clone()
	upd.Name = "film updated"
	upd.Rating = &models.Rating{ID: 4}
	upd.Genres = []models.Genre{{ID: 3}}
	upd.Likes = models.NewIDSet(p2.ID())

	updated, err := st.UpdateFilm(ctx, upd)
	require.NoError(t, err)
	require.Equal(t, "film updated", updated.Name)
	require.Equal(t, &models.Rating{ID: 4, Name: "R"}, updated.Rating)
	require.Equal(t, []models.Genre{{ID: 3, Name: "Мультфильм"}}, updated.Genres)
	require.Equal(t, []int64{p2.ID()}, updated.Likes.Sorted())

	got, err := st.FilmByID(ctx, created.ID())
	require.NoError(t, err)
	if diff := cmp.Diff(updated, got, cmpOpts...); diff != "" {
		t.Fatalf("updated film mismatch (-want +got):\n%s", diff)
	}

	// Повторное сохранение того же состояния идемпотентно.
	again, err := st.UpdateFilm(ctx, got)
	require.NoError(t, err)
	if diff := cmp.Diff(got, again, cmpOpts...); diff != "" {
		t.Fatalf("idempotent update mismatch (-want +got):\n%s", diff)
	}

	upd.Genres = nil
	cleared, err := st.UpdateFilm(ctx, upd)
	require.NoError(t, err)
	require.Empty(t, cleared.Genres)
}

func testFilmDictionaryReferences(t *testing.T, st storage.Storage) {
	ctx := context.Background()

	badRating := NewFilm("bad rating")
	badRating.Rating = &models.Rating{ID: 999}
	_, err := st.CreateFilm(ctx, badRating)
	require.ErrorIs(t, err, storage.ErrRatingNotFound)

	badGenre := NewFilm("bad genre")
	badGenre.Genres = []models.Genre{{ID: 1}, {ID: 999}}
	_, err = st.CreateFilm(ctx, badGenre)
	require.ErrorIs(t, err, storage.ErrGenreNotFound)

	badLike := NewFilm("bad like")
	badLike.Likes = models.NewIDSet(999)
	_, err = st.CreateFilm(ctx, badLike)
	require.ErrorIs(t, err, storage.ErrPersonNotFound)

	all, err := st.Films(ctx)
	require.NoError(t, err)
	require.Empty(t, all, "failed creates must not leave partial records")
}

func testLikes(t *testing.T, st storage.Storage) {
	ctx := context.Background()

	f := mustFilm(t, st, NewFilm("film"))
	p := mustPerson(t, st, NewPerson("liker"))

	require.NoError(t, st.SaveLike(ctx, f.ID(), p.ID()))
	require.NoError(t, st.SaveLike(ctx, f.ID(), p.ID()))

	got, err := st.FilmByID(ctx, f.ID())
	require.NoError(t, err)
	require.Equal(t, 1, got.LikeCount())

	require.NoError(t, st.RemoveLike(ctx, f.ID(), p.ID()))
	require.NoError(t, st.RemoveLike(ctx, f.ID(), p.ID()))

	got, err = st.FilmByID(ctx, f.ID())
	require.NoError(t, err)
	require.Equal(t, 0, got.LikeCount())

	require.ErrorIs(t, st.SaveLike(ctx, 9999, p.ID()), storage.ErrFilmNotFound)
	require.ErrorIs(t, st.SaveLike(ctx, f.ID(), 9999), storage.ErrPersonNotFound)
	require.ErrorIs(t, st.RemoveLike(ctx, 9999, p.ID()), storage.ErrFilmNotFound)
	require.ErrorIs(t, st.RemoveLike(ctx, f.ID(), 9999), storage.ErrPersonNotFound)
}

func testTopPopular(t *testing.T, st storage.Storage) {
	ctx := context.Background()

	f1 := mustFilm(t, st, NewFilm("f1"))
	f2 := mustFilm(t, st, NewFilm("f2"))
	f3 := mustFilm(t, st, NewFilm("f3"))
	f4 := mustFilm(t, st, NewFilm("f4"))

	a := mustPerson(t, st, NewPerson("a"))
	b := mustPerson(t, st, NewPerson("b"))

	require.NoError(t, st.SaveLike(ctx, f2.ID(), a.ID()))
	require.NoError(t, st.SaveLike(ctx, f3.ID(), a.ID()))
	require.NoError(t, st.SaveLike(ctx, f3.ID(), b.ID()))
	require.NoError(t, st.SaveLike(ctx, f3.ID(), b.ID()))
	require.NoError(t, st.SaveLike(ctx, f4.ID(), b.ID()))

	top, err := st.TopPopular(ctx, 2)
	require.NoError(t, err)
	require.Equal(t, []int64{f3.ID(), f2.ID()}, filmIDs(top))
	require.Equal(t, 2, top[0].LikeCount())
	require.NotNil(t, top[0].Rating)
	require.Equal(t, "G", top[0].Rating.Name)

	top, err = st.TopPopular(ctx, 10)
	require.NoError(t, err)
	require.Equal(t, []int64{f3.ID(), f2.ID(), f4.ID(), f1.ID()}, filmIDs(top))

	_, err = st.TopPopular(ctx, 0)
	require.ErrorIs(t, err, storage.ErrInvalidArgument)
	_, err = st.TopPopular(ctx, -5)
	require.ErrorIs(t, err, storage.ErrInvalidArgument)
}

func testPersonRoundTrip(t *testing.T, st storage.Storage) {
	ctx := context.Background()

	in := NewPerson("dolore")
	created, err := st.CreatePerson(ctx, in)
	require.NoError(t, err)
	require.True(t, created.HasID())

	want := in.Clone()
	want.Identity = created.Identity
	if diff := cmp.Diff(want, created, cmpOpts...); diff != "" {
		t.Fatalf("created person mismatch (-want +got):\n%s", diff)
	}

	got, err := st.PersonByID(ctx, created.ID())
	require.NoError(t, err)
	if diff := cmp.Diff(created, got, cmpOpts...); diff != "" {
		t.Fatalf("person by id mismatch (-want +got):\n%s", diff)
	}

	other := mustPerson(t, st, NewPerson("other"))
	all, err := st.People(ctx)
	require.NoError(t, err)
	require.Equal(t, []int64{created.ID(), other.ID()}, personIDs(all))
}

func testPersonIdentityRules(t *testing.T, st storage.Storage) {
	ctx := context.Background()

	withID := NewPerson("withid")
	require.NoError(t, withID.SetID(5))
	_, err := st.CreatePerson(ctx, withID)
	require.ErrorIs(t, err, storage.ErrInvalidArgument)

	_, err = st.UpdatePerson(ctx, NewPerson("noid"))
	require.ErrorIs(t, err, storage.ErrInvalidArgument)

	missing := NewPerson("missing")
	require.NoError(t, missing.SetID(9999))
	_, err = st.UpdatePerson(ctx, missing)
	require.ErrorIs(t, err, storage.ErrPersonNotFound)

	_, err = st.PersonByID(ctx, 9999)
	require.ErrorIs(t, err, storage.ErrPersonNotFound)
}

func testLoginUnique(t *testing.T, st storage.Storage) {
	ctx := context.Background()

	a := mustPerson(t, st, NewPerson("taken"))
	_, err := st.CreatePerson(ctx, NewPerson("taken"))
	require.ErrorIs(t, err, storage.ErrAlreadyExists)

	b := mustPerson(t, st, NewPerson("free"))
	upd := b.Clone()
	upd.Login = "taken"
	_, err = st.UpdatePerson(ctx, upd)
	require.ErrorIs(t, err, storage.ErrAlreadyExists)

	// Смена логина освобождает старый.
	upd = a.Clone()
	upd.Login = "renamed"
	_, err = st.UpdatePerson(ctx, upd)
	require.NoError(t, err)
	mustPerson(t, st, NewPerson("taken"))
}

func testFriendship(t *testing.T, st storage.Storage) {
	ctx := context.Background()

	a := mustPerson(t, st, NewPerson("a"))
	b := mustPerson(t, st, NewPerson("b"))

	require.NoError(t, st.SaveFriendship(ctx, a.ID(), b.ID()))
	require.NoError(t, st.SaveFriendship(ctx, a.ID(), b.ID()))

	fa, err := st.Friends(ctx, a.ID())
	require.NoError(t, err)
	require.Equal(t, []int64{b.ID()}, personIDs(fa))

	fb, err := st.Friends(ctx, b.ID())
	require.NoError(t, err)
	require.Equal(t, []int64{a.ID()}, personIDs(fb))

	got, err := st.PersonByID(ctx, a.ID())
	require.NoError(t, err)
	require.Equal(t, []int64{b.ID()}, got.Friends.Sorted())

	require.NoError(t, st.RemoveFriendship(ctx, b.ID(), a.ID()))
	fa, err = st.Friends(ctx, a.ID())
	require.NoError(t, err)
	require.Empty(t, fa)
	fb, err = st.Friends(ctx, b.ID())
	require.NoError(t, err)
	require.Empty(t, fb)

	require.ErrorIs(t, st.SaveFriendship(ctx, a.ID(), a.ID()), storage.ErrInvalidArgument)
	require.ErrorIs(t, st.SaveFriendship(ctx, a.ID(), 9999), storage.ErrPersonNotFound)
	require.ErrorIs(t, st.RemoveFriendship(ctx, 9999, a.ID()), storage.ErrPersonNotFound)

	_, err = st.Friends(ctx, 9999)
	require.ErrorIs(t, err, storage.ErrPersonNotFound)
}

func testCommonFriends(t *testing.T, st storage.Storage) {
	ctx := context.Background()

	a := mustPerson(t, st, NewPerson("a"))
	b := mustPerson(t, st, NewPerson("b"))
	c := mustPerson(t, st, NewPerson("c"))
	d := mustPerson(t, st, NewPerson("d"))
	e := mustPerson(t, st, NewPerson("e"))

	for _, pair := range [][2]int64{
		{a.ID(), c.ID()}, {a.ID(), d.ID()}, {a.ID(), b.ID()},
		{b.ID(), d.ID()}, {b.ID(), c.ID()}, {b.ID(), e.ID()},
	} {
		require.NoError(t, st.SaveFriendship(ctx, pair[0], pair[1]))
	}

	common, err := st.CommonFriends(ctx, a.ID(), b.ID())
	require.NoError(t, err)
	require.Equal(t, []int64{c.ID(), d.ID()}, personIDs(common))

	common, err = st.CommonFriends(ctx, c.ID(), e.ID())
	require.NoError(t, err)
	require.Equal(t, []int64{b.ID()}, personIDs(common))

	common, err = st.CommonFriends(ctx, d.ID(), e.ID())
	require.NoError(t, err)
	require.Equal(t, []int64{b.ID()}, personIDs(common))

	_, err = st.CommonFriends(ctx, a.ID(), 9999)
	require.ErrorIs(t, err, storage.ErrPersonNotFound)
}

// UpdateFilmDetails игнорирует переданные лайки и оставляет сохранённые.
func testFilmUpdateDetailsKeepsLikes(t *testing.T, st storage.Storage) {
	ctx := context.Background()

	p1 := mustPerson(t, st, NewPerson("p1"))
	p2 := mustPerson(t, st, NewPerson("p2"))

	in := NewFilm("film")
	in.Genres = []models.Genre{{ID: 1}}
	created := mustFilm(t, st, in)

	stale := created.Clone()
	require.NoError(t, st.SaveLike(ctx, created.ID(), p1.ID()))
	require.NoError(t, st.SaveLike(ctx, created.ID(), p2.ID()))

	stale.Name = "film updated"
	stale.Rating = &models.Rating{ID: 2}
	stale.Genres = []models.Genre{{ID: 5}, {ID: 2}}

	updated, err := st.UpdateFilmDetails(ctx, stale)
	require.NoError(t, err)
	require.Equal(t, "film updated", updated.Name)
	require.Equal(t, &models.Rating{ID: 2, Name: "PG"}, updated.Rating)
	require.Equal(t, []models.Genre{{ID: 2, Name: "Драма"}, {ID: 5, Name: "Документальный"}}, updated.Genres)
	require.Equal(t, []int64{p1.ID(), p2.ID()}, updated.Likes.Sorted())

	got, err := st.FilmByID(ctx, created.ID())
	require.NoError(t, err)
	if diff := cmp.Diff(updated, got, cmpOpts...); diff != "" {
		t.Fatalf("updated film mismatch (-want +got):\n%s", diff)
	}

	_, err = st.UpdateFilmDetails(ctx, NewFilm("no id"))
	require.ErrorIs(t, err, storage.ErrInvalidArgument)

	ghost := NewFilm("ghost")
	require.NoError(t, ghost.SetID(9999))
	_, err = st.UpdateFilmDetails(ctx, ghost)
	require.ErrorIs(t, err, storage.ErrFilmNotFound)

	badRating := got.Clone()
	badRating.Rating = &models.Rating{ID: 42}
	_, err = st.UpdateFilmDetails(ctx, badRating)
	require.ErrorIs(t, err, storage.ErrRatingNotFound)
}

// UpdateProfile не трогает дружбу ни с одной из сторон.
func testPersonUpdateProfileKeepsFriends(t *testing.T, st storage.Storage) {
	ctx := context.Background()

	a := mustPerson(t, st, NewPerson("a"))
	b := mustPerson(t, st, NewPerson("b"))
	mustPerson(t, st, NewPerson("taken"))

	stale, err := st.PersonByID(ctx, a.ID())
	require.NoError(t, err)
	require.NoError(t, st.SaveFriendship(ctx, b.ID(), a.ID()))

	stale.Login = "a2"
	stale.Name = "renamed"

	updated, err := st.UpdateProfile(ctx, stale)
	require.NoError(t, err)
	require.Equal(t, "a2", updated.Login)
	require.Equal(t, "renamed", updated.Name)
	require.Equal(t, []int64{b.ID()}, updated.Friends.Sorted())

	fb, err := st.Friends(ctx, b.ID())
	require.NoError(t, err)
	require.Equal(t, []int64{a.ID()}, personIDs(fb))

	dup := updated.Clone()
	dup.Login = "taken"
	_, err = st.UpdateProfile(ctx, dup)
	require.ErrorIs(t, err, storage.ErrAlreadyExists)

	_, err = st.UpdateProfile(ctx, NewPerson("no-id"))
	require.ErrorIs(t, err, storage.ErrInvalidArgument)

	ghost := NewPerson("ghost")
	require.NoError(t, ghost.SetID(9999))
	_, err = st.UpdateProfile(ctx, ghost)
	require.ErrorIs(t, err, storage.ErrPersonNotFound)
}

func testPersonUpdateReplacesFriends(t *testing.T, st storage.Storage) {
	ctx := context.Background()

	a := mustPerson(t, st, NewPerson("a"))
	b := mustPerson(t, st, NewPerson("b"))
	c := mustPerson(t, st, NewPerson("c"))

	require.NoError(t, st.SaveFriendship(ctx, a.ID(), b.ID()))

	upd, err := st.PersonByID(ctx, a.ID())
	require.NoError(t, err)
	upd.Name = "renamed"
	upd.Friends = models.NewIDSet(c.ID())

	updated, err := st.UpdatePerson(ctx, upd)
	require.NoError(t, err)
	require.Equal(t, "renamed", updated.Name)
	require.Equal(t, []int64{c.ID()}, updated.Friends.Sorted())

	fb, err := st.Friends(ctx, b.ID())
	require.NoError(t, err)
	require.Empty(t, fb)

	fc, err := st.Friends(ctx, c.ID())
	require.NoError(t, err)
	require.Equal(t, []int64{a.ID()}, personIDs(fc))

	self := updated.Clone()
	self.Friends = models.NewIDSet(a.ID())
	_, err = st.UpdatePerson(ctx, self)
	require.ErrorIs(t, err, storage.ErrInvalidArgument)

	ghost := updated.Clone()
	ghost.Friends = models.NewIDSet(9999)
	_, err = st.UpdatePerson(ctx, ghost)
	require.ErrorIs(t, err, storage.ErrPersonNotFound)

	got, err := st.PersonByID(ctx, a.ID())
	require.NoError(t, err)
	require.Equal(t, []int64{c.ID()}, got.Friends.Sorted(), "failed update must not change friends")
}

func testDictionary(t *testing.T, st storage.Storage) {
	ctx := context.Background()

	genres, err := st.Genres(ctx)
	require.NoError(t, err)
	require.Len(t, genres, 6)
	require.Equal(t, models.Genre{ID: 1, Name: "Комедия"}, genres[0])
	require.Equal(t, models.Genre{ID: 6, Name: "Боевик"}, genres[5])

	g, err := st.GenreByID(ctx, 2)
	require.NoError(t, err)
	require.Equal(t, "Драма", g.Name)

	_, err = st.GenreByID(ctx, 999)
	require.ErrorIs(t, err, storage.ErrGenreNotFound)

	ratings, err := st.Ratings(ctx)
	require.NoError(t, err)
	require.Equal(t, []models.Rating{
		{ID: 1, Name: "G"}, {ID: 2, Name: "PG"}, {ID: 3, Name: "PG-13"}, {ID: 4, Name: "R"}, {ID: 5, Name: "NC-17"},
	}, ratings)

	r, err := st.RatingByID(ctx, 5)
	require.NoError(t, err)
	require.Equal(t, "NC-17", r.Name)

	_, err = st.RatingByID(ctx, 999)
	require.ErrorIs(t, err, storage.ErrRatingNotFound)
}

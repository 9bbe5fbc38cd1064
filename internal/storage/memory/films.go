package memory

import (
	"context"
	"fmt"
	"slices"

	"github.com/pribylovaa/go-filmorate/internal/models"
	"github.com/pribylovaa/go-filmorate/internal/ranking"
	"github.com/pribylovaa/go-filmorate/internal/storage"
)

// CreateFilm сохраняет новый фильм и назначает ему id.
func (s *Storage) CreateFilm(ctx context.Context, film *models.Film) (*models.Film, error) {
	const op = "storage/memory/films/CreateFilm"

	span := startSpan(ctx, "CreateFilm")
	defer span.End()

	if film.HasID() {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrInvalidArgument)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	stored, err := s.resolveFilm(film)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := stored.SetID(s.filmSeq.Next()); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.films[stored.ID()] = stored

	return stored.Clone(), nil
}

// UpdateFilm перезаписывает фильм целиком, включая жанры и лайки.
func (s *Storage) UpdateFilm(ctx context.Context, film *models.Film) (*models.Film, error) {
	const op = "storage/memory/films/UpdateFilm"

	span := startSpan(ctx, "UpdateFilm")
	defer span.End()

	if !film.HasID() {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrInvalidArgument)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.films[film.ID()]; !ok {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrFilmNotFound)
	}

	stored, err := s.resolveFilm(film)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.films[film.ID()] = stored

	return stored.Clone(), nil
}

// UpdateFilmDetails перезаписывает поля и жанры фильма, лайки остаются прежними.
func (s *Storage) UpdateFilmDetails(ctx context.Context, film *models.Film) (*models.Film, error) {
	const op = "storage/memory/films/UpdateFilmDetails"

	span := startSpan(ctx, "UpdateFilmDetails")
	defer span.End()

	if !film.HasID() {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrInvalidArgument)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.films[film.ID()]
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrFilmNotFound)
	}

	details := film.Clone()
	details.Likes = nil

	stored, err := s.resolveFilm(details)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	stored.Likes = current.Likes.Clone()
	s.films[film.ID()] = stored

	return stored.Clone(), nil
}

// FilmByID возвращает копию фильма.
func (s *Storage) FilmByID(ctx context.Context, id int64) (*models.Film, error) {
	const op = "storage/memory/films/FilmByID"

	span := startSpan(ctx, "FilmByID")
	defer span.End()

	s.mu.RLock()
	defer s.mu.RUnlock()

	f, ok := s.films[id]
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrFilmNotFound)
	}

	return f.Clone(), nil
}

// Films возвращает копии всех фильмов по возрастанию id.
func (s *Storage) Films(ctx context.Context) ([]*models.Film, error) {
	span := startSpan(ctx, "Films")
	defer span.End()

	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.filmsSorted(), nil
}

// SaveLike добавляет лайк; повторный лайк ничего не меняет.
func (s *Storage) SaveLike(ctx context.Context, filmID, personID int64) error {
	const op = "storage/memory/films/SaveLike"

	span := startSpan(ctx, "SaveLike")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := s.likeTarget(filmID, personID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if f.Likes == nil {
		f.Likes = make(models.IDSet)
	}
	f.Likes.Add(personID)

	return nil
}

// RemoveLike убирает лайк; отсутствие лайка — не ошибка.
func (s *Storage) RemoveLike(ctx context.Context, filmID, personID int64) error {
	const op = "storage/memory/films/RemoveLike"

	span := startSpan(ctx, "RemoveLike")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := s.likeTarget(filmID, personID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	f.Likes.Remove(personID)

	return nil
}

// TopPopular ранжирует фильмы в памяти тем же порядком, что и агрегирующий SQL-запрос.
func (s *Storage) TopPopular(ctx context.Context, count int) ([]*models.Film, error) {
	const op = "storage/memory/films/TopPopular"

	span := startSpan(ctx, "TopPopular")
	defer span.End()

	s.mu.RLock()
	defer s.mu.RUnlock()

	top, err := ranking.Top(s.filmsSorted(), count)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %v", op, storage.ErrInvalidArgument, err)
	}

	return top, nil
}

// resolveFilm проверяет ссылки фильма на справочники и пользователей
// и возвращает копию с заполненными названиями жанров/рейтинга. Вызывается под mu.
func (s *Storage) resolveFilm(film *models.Film) (*models.Film, error) {
	out := film.Clone()

	if film.Rating != nil {
		r, ok := s.ratings[film.Rating.ID]
		if !ok {
			return nil, storage.ErrRatingNotFound
		}
		out.Rating = &r
	}

	genres := models.NormalizeGenres(film.Genres)
	for i, g := range genres {
		known, ok := s.genres[g.ID]
		if !ok {
			return nil, storage.ErrGenreNotFound
		}
		genres[i] = known
	}
	out.Genres = genres

	for id := range film.Likes {
		if _, ok := s.people[id]; !ok {
			return nil, storage.ErrPersonNotFound
		}
	}

	return out, nil
}

func (s *Storage) likeTarget(filmID, personID int64) (*models.Film, error) {
	f, ok := s.films[filmID]
	if !ok {
		return nil, storage.ErrFilmNotFound
	}

	if _, ok := s.people[personID]; !ok {
		return nil, storage.ErrPersonNotFound
	}

	return f, nil
}

func (s *Storage) filmsSorted() []*models.Film {
	ids := make([]int64, 0, len(s.films))
	for id := range s.films {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	out := make([]*models.Film, 0, len(ids))
	for _, id := range ids {
		out = append(out, s.films[id].Clone())
	}

	return out
}

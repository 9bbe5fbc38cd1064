package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/pribylovaa/go-filmorate/internal/models"
	"github.com/pribylovaa/go-filmorate/internal/storage"
)

// Genres возвращает все жанры по возрастанию id.
func (s *Storage) Genres(ctx context.Context) ([]models.Genre, error) {
	span := startSpan(ctx, "Genres")
	defer span.End()

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Genre, 0, len(s.genres))
	for _, g := range s.genres {
		out = append(out, g)
	}
	slices.SortFunc(out, func(a, b models.Genre) int { return cmp.Compare(a.ID, b.ID) })

	return out, nil
}

// GenreByID возвращает жанр по id.
func (s *Storage) GenreByID(ctx context.Context, id int64) (models.Genre, error) {
	const op = "storage/memory/dictionary/GenreByID"

	span := startSpan(ctx, "GenreByID")
	defer span.End()

	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.genres[id]
	if !ok {
		return models.Genre{}, fmt.Errorf("%s: %w", op, storage.ErrGenreNotFound)
	}

	return g, nil
}

// Ratings возвращает все рейтинги MPA по возрастанию id.
func (s *Storage) Ratings(ctx context.Context) ([]models.Rating, error) {
	span := startSpan(ctx, "Ratings")
	defer span.End()

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Rating, 0, len(s.ratings))
	for _, r := range s.ratings {
		out = append(out, r)
	}
	slices.SortFunc(out, func(a, b models.Rating) int { return cmp.Compare(a.ID, b.ID) })

	return out, nil
}

// RatingByID возвращает рейтинг MPA по id.
func (s *Storage) RatingByID(ctx context.Context, id int64) (models.Rating, error) {
	const op = "storage/memory/dictionary/RatingByID"

	span := startSpan(ctx, "RatingByID")
	defer span.End()

	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.ratings[id]
	if !ok {
		return models.Rating{}, fmt.Errorf("%s: %w", op, storage.ErrRatingNotFound)
	}

	return r, nil
}

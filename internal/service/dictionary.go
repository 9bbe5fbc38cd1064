package service

import (
	"context"
	"fmt"

	"github.com/pribylovaa/go-filmorate/internal/cache"
	"github.com/pribylovaa/go-filmorate/internal/models"
	"github.com/pribylovaa/go-filmorate/internal/storage"
	"github.com/pribylovaa/go-filmorate/pkg/log"
)

// DictionaryService — чтение справочников жанров и рейтингов MPA.
type DictionaryService struct {
	storage storage.DictionaryStorage
	cache   cache.DictionaryCache
}

// NewDictionaryService создаёт сервис справочников без кэша.
func NewDictionaryService(st storage.DictionaryStorage) *DictionaryService {
	return &DictionaryService{storage: st}
}

// SetCache подключает кэш справочников (nil отключает кэш).
// Ошибки кэша не прерывают запрос: сервис уходит в хранилище.
func (s *DictionaryService) SetCache(c cache.DictionaryCache) {
	s.cache = c
}

// Genres возвращает все жанры по возрастанию id.
func (s *DictionaryService) Genres(ctx context.Context) ([]models.Genre, error) {
	const op = "service/dictionary/Genres"

	lg := log.From(ctx).With("op", op)

	if s.cache != nil {
		genres, ok, err := s.cache.Genres(ctx)
		switch {
		case err != nil:
			lg.Warn("cache read failed", "err", err)
		case ok:
			return genres, nil
		}
	}

	genres, err := s.storage.Genres(ctx)
	if err != nil {
		return nil, translate(lg, op, err)
	}

	if s.cache != nil {
		if err := s.cache.SetGenres(ctx, genres); err != nil {
			lg.Warn("cache write failed", "err", err)
		}
	}

	return genres, nil
}

// GenreByID возвращает жанр или ErrGenreNotFound.
func (s *DictionaryService) GenreByID(ctx context.Context, id int64) (models.Genre, error) {
	const op = "service/dictionary/GenreByID"

	lg := log.From(ctx).With("op", op, "genre_id", id)

	if s.cache != nil {
		genres, ok, err := s.cache.Genres(ctx)
		if err != nil {
			lg.Warn("cache read failed", "err", err)
		}

		if ok {
			for _, g := range genres {
				if g.ID == id {
					return g, nil
				}
			}
		}
	}

	g, err := s.storage.GenreByID(ctx, id)
	if err != nil {
		return models.Genre{}, translate(lg, op, err)
	}

	return g, nil
}

// Ratings возвращает все рейтинги MPA по возрастанию id.
func (s *DictionaryService) Ratings(ctx context.Context) ([]models.Rating, error) {
	const op = "service/dictionary/Ratings"

	lg := log.From(ctx).With("op", op)

	if s.cache != nil {
		ratings, ok, err := s.cache.Ratings(ctx)
		switch {
		case err != nil:
			lg.Warn("cache read failed", "err", err)
		case ok:
			return ratings, nil
		}
	}

	ratings, err := s.storage.Ratings(ctx)
	if err != nil {
		return nil, translate(lg, op, err)
	}

	if s.cache != nil {
		if err := s.cache.SetRatings(ctx, ratings); err != nil {
			lg.Warn("cache write failed", "err", err)
		}
	}

	return ratings, nil
}

// RatingByID возвращает рейтинг или ErrRatingNotFound.
func (s *DictionaryService) RatingByID(ctx context.Context, id int64) (models.Rating, error) {
	const op = "service/dictionary/RatingByID"

	lg := log.From(ctx).With("op", op, "rating_id", id)

	if s.cache != nil {
		ratings, ok, err := s.cache.Ratings(ctx)
		if err != nil {
			lg.Warn("cache read failed", "err", err)
		}

		if ok {
			for _, r := range ratings {
				if r.ID == id {
					return r, nil
				}
			}
		}
	}

	r, err := s.storage.RatingByID(ctx, id)
	if err != nil {
		return models.Rating{}, translate(lg, op, err)
	}

	return r, nil
}

// resolveRating проверяет существование рейтинга и возвращает его с названием.
func (s *DictionaryService) resolveRating(ctx context.Context, id int64) (*models.Rating, error) {
	const op = "service/dictionary/resolveRating"

	r, err := s.RatingByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &r, nil
}

// resolveGenres проверяет каждый жанр и возвращает их без повторов по возрастанию id.
func (s *DictionaryService) resolveGenres(ctx context.Context, ids []int64) ([]models.Genre, error) {
	const op = "service/dictionary/resolveGenres"

	if len(ids) == 0 {
		return nil, nil
	}

	out := make([]models.Genre, 0, len(ids))
	for _, id := range ids {
		g, err := s.GenreByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		out = append(out, g)
	}

	return models.NormalizeGenres(out), nil
}

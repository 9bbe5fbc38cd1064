package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/pribylovaa/go-filmorate/internal/models"
	"github.com/pribylovaa/go-filmorate/internal/storage"
)

// Genres возвращает все жанры по возрастанию id.
func (s *Storage) Genres(ctx context.Context) ([]models.Genre, error) {
	const op = "storage/postgres/dictionary/Genres"

	rows, err := s.db.Query(ctx, `SELECT id, name FROM genres ORDER BY id`)
	if err != nil {
		return nil, wrapErr(op, err)
	}
	defer rows.Close()

	var out []models.Genre
	for rows.Next() {
		var g models.Genre
		if err := rows.Scan(&g.ID, &g.Name); err != nil {
			return nil, wrapErr(op, err)
		}
		out = append(out, g)
	}

	if err := rows.Err(); err != nil {
		return nil, wrapErr(op, err)
	}

	return out, nil
}

// GenreByID возвращает жанр по id.
func (s *Storage) GenreByID(ctx context.Context, id int64) (models.Genre, error) {
	const op = "storage/postgres/dictionary/GenreByID"

	var g models.Genre
	err := s.db.QueryRow(ctx, `SELECT id, name FROM genres WHERE id = $1`, id).Scan(&g.ID, &g.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Genre{}, wrapErr(op, storage.ErrGenreNotFound)
		}

		return models.Genre{}, wrapErr(op, err)
	}

	return g, nil
}

// Ratings возвращает все рейтинги MPA по возрастанию id.
func (s *Storage) Ratings(ctx context.Context) ([]models.Rating, error) {
	const op = "storage/postgres/dictionary/Ratings"

	rows, err := s.db.Query(ctx, `SELECT id, name FROM ratings ORDER BY id`)
	if err != nil {
		return nil, wrapErr(op, err)
	}
	defer rows.Close()

	var out []models.Rating
	for rows.Next() {
		var r models.Rating
		if err := rows.Scan(&r.ID, &r.Name); err != nil {
			return nil, wrapErr(op, err)
		}
		out = append(out, r)
	}

	if err := rows.Err(); err != nil {
		return nil, wrapErr(op, err)
	}

	return out, nil
}

// RatingByID возвращает рейтинг MPA по id.
func (s *Storage) RatingByID(ctx context.Context, id int64) (models.Rating, error) {
	const op = "storage/postgres/dictionary/RatingByID"

	var r models.Rating
	err := s.db.QueryRow(ctx, `SELECT id, name FROM ratings WHERE id = $1`, id).Scan(&r.ID, &r.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Rating{}, wrapErr(op, storage.ErrRatingNotFound)
		}

		return models.Rating{}, wrapErr(op, err)
	}

	return r, nil
}

package storage

import (
	"context"

	"github.com/pribylovaa/go-filmorate/internal/models"
)

// DictionaryStorage — справочники жанров и рейтингов MPA.
// Наполняются начальными данными; ядро их не изменяет.
type DictionaryStorage interface {
	// Genres возвращает все жанры по возрастанию id.
	Genres(ctx context.Context) ([]models.Genre, error)
	// GenreByID возвращает жанр (ErrGenreNotFound при отсутствии).
	GenreByID(ctx context.Context, id int64) (models.Genre, error)
	// Ratings возвращает все рейтинги по возрастанию id.
	Ratings(ctx context.Context) ([]models.Rating, error)
	// RatingByID возвращает рейтинг (ErrRatingNotFound при отсутствии).
	RatingByID(ctx context.Context, id int64) (models.Rating, error)
}

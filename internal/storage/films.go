package storage

import (
	"context"

	"github.com/pribylovaa/go-filmorate/internal/models"
)

// FilmStorage — контракт репозитория фильмов.
type FilmStorage interface {
	// CreateFilm назначает id и сохраняет фильм вместе с жанрами и лайками.
	// Фильм не должен иметь id (иначе ErrInvalidArgument).
	CreateFilm(ctx context.Context, film *models.Film) (*models.Film, error)
	// UpdateFilm перезаписывает все изменяемые поля, жанры и лайки целиком.
	// Ошибки: ErrInvalidArgument без id, ErrFilmNotFound при отсутствии записи.
	UpdateFilm(ctx context.Context, film *models.Film) (*models.Film, error)
	// UpdateFilmDetails перезаписывает поля и жанры фильма, не затрагивая лайки:
	// лайки, сохранённые параллельно, не теряются. Ошибки те же, что у UpdateFilm.
	UpdateFilmDetails(ctx context.Context, film *models.Film) (*models.Film, error)
	// FilmByID возвращает фильм по id (ErrFilmNotFound при отсутствии).
	FilmByID(ctx context.Context, id int64) (*models.Film, error)
	// Films возвращает все фильмы по возрастанию id.
	Films(ctx context.Context) ([]*models.Film, error)
	// SaveLike идемпотентно добавляет лайк пользователя фильму.
	SaveLike(ctx context.Context, filmID, personID int64) error
	// RemoveLike идемпотентно убирает лайк.
	RemoveLike(ctx context.Context, filmID, personID int64) error
	// TopPopular возвращает не более count фильмов: лайки по убыванию, затем id по возрастанию.
	TopPopular(ctx context.Context, count int) ([]*models.Film, error)
}

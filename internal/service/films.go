package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pribylovaa/go-filmorate/internal/config"
	"github.com/pribylovaa/go-filmorate/internal/models"
	"github.com/pribylovaa/go-filmorate/internal/storage"
	"github.com/pribylovaa/go-filmorate/pkg/log"
)

// FilmInput — входные данные для создания и обновления фильма.
// ID пуст при создании и обязателен при обновлении.
type FilmInput struct {
	ID          int64
	Name        string    `validate:"notblank"`
	Description string    `validate:"max=200"`
	ReleaseDate time.Time `validate:"cinemaepoch"`
	Duration    int32     `validate:"gt=0"`
	RatingID    int64     `validate:"gt=0"`
	GenreIDs    []int64
}

// FilmService — операции над фильмами, лайками и рейтингом популярности.
type FilmService struct {
	films  storage.FilmStorage
	people storage.PersonStorage
	dict   *DictionaryService
	limits config.LimitsConfig
}

// NewFilmService создаёт сервис фильмов.
// people нужен для проверки существования пользователя при лайке.
func NewFilmService(films storage.FilmStorage, people storage.PersonStorage, dict *DictionaryService, limits config.LimitsConfig) *FilmService {
	return &FilmService{
		films:  films,
		people: people,
		dict:   dict,
		limits: limits,
	}
}

// buildFilm валидирует вход и собирает модель с разрешёнными рейтингом и жанрами.
func (s *FilmService) buildFilm(ctx context.Context, op string, in FilmInput) (*models.Film, error) {
	lg := log.From(ctx).With("op", op)

	in.Name = strings.TrimSpace(in.Name)
	if err := checkInput(lg, op, in); err != nil {
		return nil, err
	}

	rating, err := s.dict.resolveRating(ctx, in.RatingID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	genres, err := s.dict.resolveGenres(ctx, in.GenreIDs)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &models.Film{
		Name:        in.Name,
		Description: in.Description,
		ReleaseDate: in.ReleaseDate,
		Duration:    in.Duration,
		Rating:      rating,
		Genres:      genres,
	}, nil
}

// Create создаёт фильм.
//
// Валидация:
//   - ID должен быть пустым (иначе ErrInvalidArgument);
//   - name не пустой, description до 200 символов;
//   - дата релиза не раньше 28.12.1895, продолжительность > 0;
//   - рейтинг и жанры существуют в справочнике (ErrRatingNotFound / ErrGenreNotFound).
func (s *FilmService) Create(ctx context.Context, in FilmInput) (*models.Film, error) {
	const op = "service/films/Create"

	lg := log.From(ctx).With("op", op)

	if in.ID != 0 {
		lg.Warn("invalid argument: id must be empty on create", "film_id", in.ID)

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	film, err := s.buildFilm(ctx, op, in)
	if err != nil {
		return nil, err
	}

	created, err := s.films.CreateFilm(ctx, film)
	if err != nil {
		return nil, translate(lg, op, err)
	}

	lg.Info("film created", "film_id", created.ID())

	return created, nil
}

// Update перезаписывает поля фильма, жанры и рейтинг.
// Лайки принадлежат SetLike/RemoveLike, хранилище их не перезаписывает.
//
// Ошибки: ErrInvalidArgument без id, ErrFilmNotFound при отсутствии фильма.
func (s *FilmService) Update(ctx context.Context, in FilmInput) (*models.Film, error) {
	const op = "service/films/Update"

	lg := log.From(ctx).With("op", op, "film_id", in.ID)

	if in.ID <= 0 {
		lg.Warn("invalid argument: id is required on update")

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	film, err := s.buildFilm(ctx, op, in)
	if err != nil {
		return nil, err
	}

	if err := film.SetID(in.ID); err != nil {
		return nil, translate(lg, op, err)
	}

	updated, err := s.films.UpdateFilmDetails(ctx, film)
	if err != nil {
		return nil, translate(lg, op, err)
	}

	return updated, nil
}

// FilmByID возвращает фильм или ErrFilmNotFound.
func (s *FilmService) FilmByID(ctx context.Context, id int64) (*models.Film, error) {
	const op = "service/films/FilmByID"

	lg := log.From(ctx).With("op", op, "film_id", id)

	film, err := s.films.FilmByID(ctx, id)
	if err != nil {
		return nil, translate(lg, op, err)
	}

	return film, nil
}

// Films возвращает все фильмы по возрастанию id.
func (s *FilmService) Films(ctx context.Context) ([]*models.Film, error) {
	const op = "service/films/Films"

	lg := log.From(ctx).With("op", op)

	films, err := s.films.Films(ctx)
	if err != nil {
		return nil, translate(lg, op, err)
	}

	return films, nil
}

// checkLikeTarget проверяет существование фильма, затем пользователя.
func (s *FilmService) checkLikeTarget(ctx context.Context, filmID, personID int64) error {
	if _, err := s.films.FilmByID(ctx, filmID); err != nil {
		return err
	}

	if _, err := s.people.PersonByID(ctx, personID); err != nil {
		return err
	}

	return nil
}

// SetLike добавляет лайк пользователя фильму и возвращает обновлённый фильм.
// Повторный лайк не меняет счётчик.
func (s *FilmService) SetLike(ctx context.Context, filmID, personID int64) (*models.Film, error) {
	const op = "service/films/SetLike"

	lg := log.From(ctx).With("op", op, "film_id", filmID, "person_id", personID)

	if err := s.checkLikeTarget(ctx, filmID, personID); err != nil {
		return nil, translate(lg, op, err)
	}

	if err := s.films.SaveLike(ctx, filmID, personID); err != nil {
		return nil, translate(lg, op, err)
	}

	film, err := s.films.FilmByID(ctx, filmID)
	if err != nil {
		return nil, translate(lg, op, err)
	}

	return film, nil
}

// RemoveLike убирает лайк; отсутствие лайка ошибкой не считается.
func (s *FilmService) RemoveLike(ctx context.Context, filmID, personID int64) (*models.Film, error) {
	const op = "service/films/RemoveLike"

	lg := log.From(ctx).With("op", op, "film_id", filmID, "person_id", personID)

	if err := s.checkLikeTarget(ctx, filmID, personID); err != nil {
		return nil, translate(lg, op, err)
	}

	if err := s.films.RemoveLike(ctx, filmID, personID); err != nil {
		return nil, translate(lg, op, err)
	}

	film, err := s.films.FilmByID(ctx, filmID)
	if err != nil {
		return nil, translate(lg, op, err)
	}

	return film, nil
}

// TopPopular возвращает не более count фильмов: лайки по убыванию, затем id по возрастанию.
// count <= 0 и count выше limits.popular_max (если он задан) — ErrInvalidArgument.
func (s *FilmService) TopPopular(ctx context.Context, count int) ([]*models.Film, error) {
	const op = "service/films/TopPopular"

	lg := log.From(ctx).With("op", op, "count", count)

	if count <= 0 {
		lg.Warn("invalid argument: count must be positive")

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if s.limits.PopularMax > 0 && count > s.limits.PopularMax {
		lg.Warn("invalid argument: count exceeds limit", "max", s.limits.PopularMax)

		return nil, fmt.Errorf("%s: %w: count exceeds %d", op, ErrInvalidArgument, s.limits.PopularMax)
	}

	films, err := s.films.TopPopular(ctx, count)
	if err != nil {
		return nil, translate(lg, op, err)
	}

	return films, nil
}

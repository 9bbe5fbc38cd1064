package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pribylovaa/go-filmorate/internal/models"
	"github.com/pribylovaa/go-filmorate/internal/storage"
)

// filmColumns — единый список колонок фильма (с рейтингом),
// используемый во всех SELECT, чтобы гарантировать одинаковый порядок сканирования.
const filmColumns = `
f.id, f.name, f.description, f.release_date, f.duration, r.id, r.name
`

const filmFrom = `
FROM films f
LEFT JOIN ratings r ON r.id = f.rating_id
`

// scanFilm сканирует строку фильма; жанры и лайки догружаются отдельно.
func scanFilm(row pgx.Row) (*models.Film, error) {
	var (
		film       models.Film
		id         int64
		ratingID   *int64
		ratingName *string
	)

	if err := row.Scan(
		&id,
		&film.Name,
		&film.Description,
		&film.ReleaseDate,
		&film.Duration,
		&ratingID,
		&ratingName,
	); err != nil {
		return nil, err
	}

	film.Identity = models.IdentityOf(id)
	film.ReleaseDate = film.ReleaseDate.UTC()

	if ratingID != nil {
		film.Rating = &models.Rating{ID: *ratingID}
		if ratingName != nil {
			film.Rating.Name = *ratingName
		}
	}

	film.Likes = make(models.IDSet)

	return &film, nil
}

func collectFilms(rows pgx.Rows) ([]*models.Film, error) {
	defer rows.Close()

	var films []*models.Film
	for rows.Next() {
		f, err := scanFilm(rows)
		if err != nil {
			return nil, err
		}
		films = append(films, f)
	}

	return films, rows.Err()
}

// loadFilmRelations догружает жанры и лайки для набора фильмов двумя запросами.
func loadFilmRelations(ctx context.Context, q querier, films []*models.Film) error {
	if len(films) == 0 {
		return nil
	}

	byID := make(map[int64]*models.Film, len(films))
	ids := make([]int64, 0, len(films))
	for _, f := range films {
		byID[f.ID()] = f
		ids = append(ids, f.ID())
	}

	rows, err := q.Query(ctx, `
	SELECT fg.film_id, g.id, g.name
	FROM film_genres fg
	JOIN genres g ON g.id = fg.genre_id
	WHERE fg.film_id = ANY($1)
	ORDER BY fg.film_id, g.id`, ids)
	if err != nil {
		return err
	}

	for rows.Next() {
		var filmID int64
		var g models.Genre
		if err := rows.Scan(&filmID, &g.ID, &g.Name); err != nil {
			rows.Close()
			return err
		}
		byID[filmID].Genres = append(byID[filmID].Genres, g)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}

	rows, err = q.Query(ctx, `SELECT film_id, person_id FROM likes WHERE film_id = ANY($1)`, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var filmID, personID int64
		if err := rows.Scan(&filmID, &personID); err != nil {
			return err
		}
		byID[filmID].Likes.Add(personID)
	}

	return rows.Err()
}

func filmByID(ctx context.Context, q querier, id int64) (*models.Film, error) {
	film, err := scanFilm(q.QueryRow(ctx, `SELECT `+filmColumns+filmFrom+` WHERE f.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrFilmNotFound
		}

		return nil, err
	}

	if err := loadFilmRelations(ctx, q, []*models.Film{film}); err != nil {
		return nil, err
	}

	return film, nil
}

// replaceFilmRelations удаляет и заново вставляет жанры и лайки фильма.
func replaceFilmRelations(ctx context.Context, q querier, film *models.Film, id int64) error {
	if err := replaceGenres(ctx, q, film, id); err != nil {
		return err
	}

	if _, err := q.Exec(ctx, `DELETE FROM likes WHERE film_id = $1`, id); err != nil {
		return err
	}

	batch := &pgx.Batch{}
	for _, personID := range film.Likes.Sorted() {
		batch.Queue(`INSERT INTO likes (film_id, person_id) VALUES ($1, $2)`, id, personID)
	}

	return execBatch(ctx, q, batch)
}

// replaceGenres заменяет жанры фильма; таблица лайков не затрагивается.
func replaceGenres(ctx context.Context, q querier, film *models.Film, id int64) error {
	if _, err := q.Exec(ctx, `DELETE FROM film_genres WHERE film_id = $1`, id); err != nil {
		return err
	}

	batch := &pgx.Batch{}
	for _, g := range models.NormalizeGenres(film.Genres) {
		batch.Queue(`INSERT INTO film_genres (film_id, genre_id) VALUES ($1, $2)`, id, g.ID)
	}

	return execBatch(ctx, q, batch)
}

// updateFilmRow перезаписывает строку фильма (строка блокируется до конца транзакции).
func updateFilmRow(ctx context.Context, q querier, film *models.Film) error {
	tag, err := q.Exec(ctx, `
		UPDATE films
		SET name = $2, description = $3, release_date = $4, duration = $5, rating_id = $6
		WHERE id = $1`,
		film.ID(),
		film.Name,
		film.Description,
		dateOnly(film.ReleaseDate),
		film.Duration,
		ratingIDOf(film),
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return storage.ErrFilmNotFound
	}

	return nil
}

func ratingIDOf(film *models.Film) *int64 {
	if film.Rating == nil {
		return nil
	}

	id := film.Rating.ID
	return &id
}

// CreateFilm вставляет фильм и его связи в одной транзакции.
// Ошибки: storage.ErrInvalidArgument при заданном id,
// storage.ErrRatingNotFound / ErrGenreNotFound / ErrPersonNotFound при битых ссылках.
func (s *Storage) CreateFilm(ctx context.Context, film *models.Film) (*models.Film, error) {
	const op = "storage/postgres/films/CreateFilm"

	if film.HasID() {
		return nil, wrapErr(op, storage.ErrInvalidArgument)
	}

	var created *models.Film
	err := s.inTx(ctx, func(tx pgx.Tx) error {
		var id int64
		err := tx.QueryRow(ctx, `
		INSERT INTO films (name, description, release_date, duration, rating_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
			film.Name,
			film.Description,
			dateOnly(film.ReleaseDate),
			film.Duration,
			ratingIDOf(film),
		).Scan(&id)
		if err != nil {
			return err
		}

		if err := replaceFilmRelations(ctx, tx, film, id); err != nil {
			return err
		}

		created, err = filmByID(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, wrapErr(op, err)
	}

	return created, nil
}

// UpdateFilm перезаписывает фильм и заменяет его связи целиком.
// Ошибки: storage.ErrInvalidArgument без id, storage.ErrFilmNotFound если ни одна строка не обновлена.
func (s *Storage) UpdateFilm(ctx context.Context, film *models.Film) (*models.Film, error) {
	const op = "storage/postgres/films/UpdateFilm"

	if !film.HasID() {
		return nil, wrapErr(op, storage.ErrInvalidArgument)
	}

	var updated *models.Film
	err := s.inTx(ctx, func(tx pgx.Tx) error {
		if err := updateFilmRow(ctx, tx, film); err != nil {
			return err
		}

		if err := replaceFilmRelations(ctx, tx, film, film.ID()); err != nil {
			return err
		}

		var err error
		updated, err = filmByID(ctx, tx, film.ID())
		return err
	})
	if err != nil {
		return nil, wrapErr(op, err)
	}

	return updated, nil
}

// UpdateFilmDetails перезаписывает фильм и его жанры; строки likes не удаляются,
// поэтому лайки, сохранённые параллельно, остаются на месте.
func (s *Storage) UpdateFilmDetails(ctx context.Context, film *models.Film) (*models.Film, error) {
	const op = "storage/postgres/films/UpdateFilmDetails"

	if !film.HasID() {
		return nil, wrapErr(op, storage.ErrInvalidArgument)
	}

	var updated *models.Film
	err := s.inTx(ctx, func(tx pgx.Tx) error {
		if err := updateFilmRow(ctx, tx, film); err != nil {
			return err
		}

		if err := replaceGenres(ctx, tx, film, film.ID()); err != nil {
			return err
		}

		var err error
		updated, err = filmByID(ctx, tx, film.ID())
		return err
	})
	if err != nil {
		return nil, wrapErr(op, err)
	}

	return updated, nil
}

// FilmByID возвращает фильм с жанрами и лайками.
func (s *Storage) FilmByID(ctx context.Context, id int64) (*models.Film, error) {
	const op = "storage/postgres/films/FilmByID"

	film, err := filmByID(ctx, s.db, id)
	if err != nil {
		return nil, wrapErr(op, err)
	}

	return film, nil
}

// Films возвращает все фильмы по возрастанию id.
func (s *Storage) Films(ctx context.Context) ([]*models.Film, error) {
	const op = "storage/postgres/films/Films"

	rows, err := s.db.Query(ctx, `SELECT `+filmColumns+filmFrom+` ORDER BY f.id`)
	if err != nil {
		return nil, wrapErr(op, err)
	}

	films, err := collectFilms(rows)
	if err != nil {
		return nil, wrapErr(op, err)
	}

	if err := loadFilmRelations(ctx, s.db, films); err != nil {
		return nil, wrapErr(op, err)
	}

	return films, nil
}

// checkLikeTarget проверяет существование фильма, затем пользователя.
func checkLikeTarget(ctx context.Context, q querier, filmID, personID int64) error {
	ok, err := exists(ctx, q, "films", filmID)
	if err != nil {
		return err
	}
	if !ok {
		return storage.ErrFilmNotFound
	}

	ok, err = exists(ctx, q, "people", personID)
	if err != nil {
		return err
	}
	if !ok {
		return storage.ErrPersonNotFound
	}

	return nil
}

// SaveLike добавляет лайк; повторная вставка игнорируется.
func (s *Storage) SaveLike(ctx context.Context, filmID, personID int64) error {
	const op = "storage/postgres/films/SaveLike"

	if err := checkLikeTarget(ctx, s.db, filmID, personID); err != nil {
		return wrapErr(op, err)
	}

	_, err := s.db.Exec(ctx, `
	INSERT INTO likes (film_id, person_id) VALUES ($1, $2)
	ON CONFLICT (film_id, person_id) DO NOTHING`, filmID, personID)
	if err != nil {
		return wrapErr(op, err)
	}

	return nil
}

// RemoveLike удаляет лайк; отсутствие строки — не ошибка.
func (s *Storage) RemoveLike(ctx context.Context, filmID, personID int64) error {
	const op = "storage/postgres/films/RemoveLike"

	if err := checkLikeTarget(ctx, s.db, filmID, personID); err != nil {
		return wrapErr(op, err)
	}

	if _, err := s.db.Exec(ctx, `DELETE FROM likes WHERE film_id = $1 AND person_id = $2`, filmID, personID); err != nil {
		return wrapErr(op, err)
	}

	return nil
}

// TopPopular считает лайки одним агрегирующим запросом.
// Порядок: число лайков по убыванию, затем id по возрастанию.
func (s *Storage) TopPopular(ctx context.Context, count int) ([]*models.Film, error) {
	const op = "storage/postgres/films/TopPopular"

	if count <= 0 {
		return nil, wrapErr(op, storage.ErrInvalidArgument)
	}

	rows, err := s.db.Query(ctx, `SELECT `+filmColumns+filmFrom+`
	LEFT JOIN likes l ON l.film_id = f.id
	GROUP BY f.id, r.id
	ORDER BY COUNT(l.person_id) DESC, f.id ASC
	LIMIT $1`, count)
	if err != nil {
		return nil, wrapErr(op, err)
	}

	films, err := collectFilms(rows)
	if err != nil {
		return nil, wrapErr(op, err)
	}

	if err := loadFilmRelations(ctx, s.db, films); err != nil {
		return nil, wrapErr(op, err)
	}

	return films, nil
}

// dateOnly отбрасывает время суток (колонки DATE).
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// postgres предоставляет реализацию storage.Storage на базе PostgreSQL.
//
// Связи (жанры фильма, лайки, дружба) при каждом create/update
// заменяются целиком (delete-then-reinsert) в одной транзакции
// вместе с основной записью.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pribylovaa/go-filmorate/internal/storage"
)

type Storage struct {
	db *pgxpool.Pool
}

// New создает и инициализирует пул соединений к PostgreSQL.
func New(ctx context.Context, dbURL string) (*Storage, error) {
	const op = "storage/postgres/New"

	config, err := pgxpool.ParseConfig(dbURL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	config.ConnConfig.Tracer = newQueryTracer(nil)

	db, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := db.Ping(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{db: db}, nil
}

// Close закрывает пул соединений.
// Должен вызываться при остановке приложения.
func (s *Storage) Close() {
	s.db.Close()
}

// Ping проверяет доступность БД (используется readiness-пробой).
func (s *Storage) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

// querier — общее подмножество *pgxpool.Pool и pgx.Tx.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

// inTx выполняет fn в транзакции: commit при nil, rollback при ошибке.
func (s *Storage) inTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	return pgx.BeginFunc(ctx, s.db, fn)
}

// execBatch отправляет пакет и проверяет результат каждого запроса.
func execBatch(ctx context.Context, q querier, b *pgx.Batch) error {
	if b.Len() == 0 {
		return nil
	}

	br := q.SendBatch(ctx, b)
	for range b.Len() {
		if _, err := br.Exec(); err != nil {
			_ = br.Close()
			return err
		}
	}

	return br.Close()
}

// exists проверяет наличие строки с id в таблице table.
func exists(ctx context.Context, q querier, table string, id int64) (bool, error) {
	var ok bool
	err := q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM `+table+` WHERE id = $1)`, id).Scan(&ok)

	return ok, err
}

// fkTargets сопоставляет имя FK-ограничения с ошибкой "не найдено" нужной сущности.
var fkTargets = map[string]error{
	"films_rating_fk":       storage.ErrRatingNotFound,
	"film_genres_genre_fk":  storage.ErrGenreNotFound,
	"film_genres_film_fk":   storage.ErrFilmNotFound,
	"likes_film_fk":         storage.ErrFilmNotFound,
	"likes_person_fk":       storage.ErrPersonNotFound,
	"friendships_person_fk": storage.ErrPersonNotFound,
	"friendships_friend_fk": storage.ErrPersonNotFound,
}

// wrapErr переводит ошибку драйвера в ошибки пакета storage.
// Ошибки storage пробрасываются как есть; типы драйвера наружу не выходят.
func wrapErr(op string, err error) error {
	if errors.Is(err, storage.ErrNotFound) ||
		errors.Is(err, storage.ErrInvalidArgument) ||
		errors.Is(err, storage.ErrAlreadyExists) ||
		errors.Is(err, storage.ErrStorageFailure) {
		return fmt.Errorf("%s: %w", op, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
		case pgerrcode.ForeignKeyViolation:
			if target, ok := fkTargets[pgErr.ConstraintName]; ok {
				return fmt.Errorf("%s: %w", op, target)
			}
			return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		case pgerrcode.CheckViolation:
			return fmt.Errorf("%s: %w: %s", op, storage.ErrInvalidArgument, pgErr.ConstraintName)
		}
	}

	for _, ctxErr := range []error{context.Canceled, context.DeadlineExceeded} {
		if errors.Is(err, ctxErr) {
			return fmt.Errorf("%s: %w: %w", op, storage.ErrStorageFailure, ctxErr)
		}
	}

	return fmt.Errorf("%s: %w: %v", op, storage.ErrStorageFailure, err)
}

// Проверка выполнения контракта верхнего уровня.
var _ storage.Storage = (*Storage)(nil)

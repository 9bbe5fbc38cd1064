package postgres

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pribylovaa/go-filmorate/internal/models"
	"github.com/pribylovaa/go-filmorate/internal/storage"
	"github.com/pribylovaa/go-filmorate/internal/storage/storagetest"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// Интеграционные тесты для пакета postgres:
// — поднимают реальный PostgreSQL через testcontainers-go (образ postgres:16-alpine);
// — применяют миграцию ./migrations/1_init.up.sql (схема + справочники);
// — прогоняют общий контракт storage.Storage (storagetest.Run);
// — проверяют атомарность замены связей и поведение при истёкшем контексте.
//
// Юнит-тесты маппинга ошибок драйвера (wrapErr) запускаются всегда.
//
// Запуск локально:
//   GO_TEST_INTEGRATION=1 go test ./internal/storage/postgres -v -race -count=1

// repoRootFromThisFile — определяет корень репозитория относительно текущего файла тестов.
func repoRootFromThisFile() string {
	// internal/storage/postgres/... -> подняться на 3 уровня до корня.
	_, thisFile, _, _ := runtime.Caller(0)
	return filepath.Clean(filepath.Join(filepath.Dir(thisFile), "..", "..", ".."))
}

// readMigration — читает содержимое SQL-миграции из подкаталога ./migrations.
func readMigration(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(repoRootFromThisFile(), "migrations", name)
	b, err := os.ReadFile(path)
	require.NoError(t, err, "read migration %s", path)
	return string(b)
}

// startPostgres — поднимает контейнер PostgreSQL и возвращает построитель DSN по имени базы.
// Если переменная окружения GO_TEST_INTEGRATION не установлена — тест пропускается.
func startPostgres(t *testing.T) (dsn func(db string) string, cleanup func()) {
	t.Helper()
	if os.Getenv("GO_TEST_INTEGRATION") == "" {
		t.Skip("integration tests are disabled (set GO_TEST_INTEGRATION=1)")
	}

	ctx := context.Background()
	req := tc.ContainerRequest{
		Image:        "docker.io/postgres:16-alpine",
		Env:          map[string]string{"POSTGRES_USER": "user", "POSTGRES_PASSWORD": "pass", "POSTGRES_DB": "db"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp").WithStartupTimeout(60 * time.Second),
	}
	t.Logf("starting postgres container with image=%q", req.Image)
	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
		ProviderType:     tc.ProviderDocker,
	})
	require.NoError(t, err)

	host, _ := c.Host(ctx)
	port, _ := c.MappedPort(ctx, "5432/tcp")

	dsn = func(db string) string {
		return fmt.Sprintf("postgres://user:pass@%s:%s/%s?sslmode=disable", host, port.Port(), db)
	}

	// Контейнер может принять TCP раньше, чем postgres готов к запросам.
	require.Eventually(t, func() bool {
		pool, err := pgxpool.New(ctx, dsn("db"))
		if err != nil {
			return false
		}
		defer pool.Close()
		return pool.Ping(ctx) == nil
	}, 30*time.Second, 500*time.Millisecond)

	return dsn, func() { _ = c.Terminate(context.Background()) }
}

// freshStorage создаёт отдельную базу, применяет миграцию и открывает Storage.
func freshStorage(t *testing.T, dsn func(string) string, name string) *Storage {
	t.Helper()
	ctx := context.Background()

	admin, err := pgxpool.New(ctx, dsn("db"))
	require.NoError(t, err)
	defer admin.Close()

	_, err = admin.Exec(ctx, `CREATE DATABASE `+name)
	require.NoError(t, err)

	pool, err := pgxpool.New(ctx, dsn(name))
	require.NoError(t, err)
	defer pool.Close()

	_, err = pool.Exec(ctx, readMigration(t, "1_init.up.sql"))
	require.NoError(t, err)

	st, err := New(ctx, dsn(name))
	require.NoError(t, err)
	t.Cleanup(st.Close)

	return st
}

func TestIntegration_Contract(t *testing.T) {
	dsn, cleanup := startPostgres(t)
	defer cleanup()

	n := 0
	storagetest.Run(t, func(t *testing.T) storage.Storage {
		n++
		return freshStorage(t, dsn, fmt.Sprintf("contract_%d", n))
	})
}

// Ошибка при вставке связей откатывает и основную запись фильма.
func TestIntegration_UpdateFilm_RollbackOnBrokenGenre(t *testing.T) {
	dsn, cleanup := startPostgres(t)
	defer cleanup()

	st := freshStorage(t, dsn, "rollback")
	ctx := context.Background()

	in := storagetest.NewFilm("film")
	in.Genres = nil
	created, err := st.CreateFilm(ctx, in)
	require.NoError(t, err)

	upd := created.Clone()
	upd.Name = "renamed"
	upd.Genres = []models.Genre{{ID: 1}, {ID: 999}}

	_, err = st.UpdateFilm(ctx, upd)
	require.ErrorIs(t, err, storage.ErrGenreNotFound)

	got, err := st.FilmByID(ctx, created.ID())
	require.NoError(t, err)
	require.Equal(t, "film", got.Name)
	require.Empty(t, got.Genres)
}

func TestIntegration_ContextDeadline(t *testing.T) {
	dsn, cleanup := startPostgres(t)
	defer cleanup()

	st := freshStorage(t, dsn, "deadline")

	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	time.Sleep(time.Millisecond)

	_, err := st.Films(ctx)
	require.Error(t, err)
	require.ErrorIs(t, err, storage.ErrStorageFailure)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestWrapErr(t *testing.T) {
	cases := []struct {
		name string
		in   error
		want error
	}{
		{"unique", &pgconn.PgError{Code: pgerrcode.UniqueViolation}, storage.ErrAlreadyExists},
		{"fk rating", &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation, ConstraintName: "films_rating_fk"}, storage.ErrRatingNotFound},
		{"fk genre", &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation, ConstraintName: "film_genres_genre_fk"}, storage.ErrGenreNotFound},
		{"fk like person", &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation, ConstraintName: "likes_person_fk"}, storage.ErrPersonNotFound},
		{"fk unknown", &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation, ConstraintName: "other"}, storage.ErrNotFound},
		{"check", &pgconn.PgError{Code: pgerrcode.CheckViolation, ConstraintName: "friendships_no_self"}, storage.ErrInvalidArgument},
		{"passthrough", storage.ErrFilmNotFound, storage.ErrFilmNotFound},
		{"driver", errors.New("conn reset"), storage.ErrStorageFailure},
		{"canceled", fmt.Errorf("read: %w", context.Canceled), context.Canceled},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := wrapErr("op", c.in)
			require.ErrorIs(t, err, c.want)
			require.Contains(t, err.Error(), "op: ")

			var pgErr *pgconn.PgError
			require.False(t, errors.As(err, &pgErr), "driver error type must not leak")
		})
	}
}

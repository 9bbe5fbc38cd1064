// service содержит бизнес-логику filmorate:
// - FilmService: фильмы, лайки, рейтинг популярности;
// - PersonService: пользователи и дружба;
// - DictionaryService: справочники жанров и рейтингов MPA (с опциональным кэшем).
//
// Сервисы проверяют ссылки между сущностями, которые хранилище не может
// проверить само, и приводят ошибки любого бэкенда к единому набору.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/pribylovaa/go-filmorate/internal/models"
	"github.com/pribylovaa/go-filmorate/internal/storage"
	"github.com/pribylovaa/go-filmorate/internal/validation"
)

var (
	// ErrNotFound — сущность отсутствует.
	ErrNotFound = errors.New("not found")
	// ErrFilmNotFound — фильм не найден.
	ErrFilmNotFound = fmt.Errorf("film %w", ErrNotFound)
	// ErrPersonNotFound — пользователь не найден.
	ErrPersonNotFound = fmt.Errorf("person %w", ErrNotFound)
	// ErrGenreNotFound — жанр не найден.
	ErrGenreNotFound = fmt.Errorf("genre %w", ErrNotFound)
	// ErrRatingNotFound — рейтинг MPA не найден.
	ErrRatingNotFound = fmt.Errorf("rating %w", ErrNotFound)
	// ErrInvalidArgument — неверные входные параметры.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrIdentityConflict — повторное назначение id уже идентифицированной сущности.
	ErrIdentityConflict = errors.New("identity conflict")
	// ErrAlreadyExists — конфликт уникальности (логин).
	ErrAlreadyExists = errors.New("already exists")
	// ErrStorageFailure — хранилище не смогло выполнить операцию.
	ErrStorageFailure = errors.New("storage failure")
)

// invalid оборачивает ошибку валидации так, чтобы сохранить и текст полей, и ErrInvalidArgument.
func invalid(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrInvalidArgument, err)
}

// translate приводит ошибку хранилища к ошибке сервиса и логирует её
// с уровнем по виду: ошибки вызывающего — Warn, отказ хранилища — Error.
// Ошибки контекста сохраняются в цепочке для маппинга на транспорте.
func translate(lg *slog.Logger, op string, err error) error {
	var target error

	switch {
	case errors.Is(err, storage.ErrFilmNotFound):
		target = ErrFilmNotFound
	case errors.Is(err, storage.ErrPersonNotFound):
		target = ErrPersonNotFound
	case errors.Is(err, storage.ErrGenreNotFound):
		target = ErrGenreNotFound
	case errors.Is(err, storage.ErrRatingNotFound):
		target = ErrRatingNotFound
	case errors.Is(err, storage.ErrNotFound):
		target = ErrNotFound
	case errors.Is(err, models.ErrIdentityConflict):
		target = ErrIdentityConflict
	case errors.Is(err, storage.ErrInvalidArgument), errors.Is(err, models.ErrInvalidID):
		target = ErrInvalidArgument
	case errors.Is(err, storage.ErrAlreadyExists):
		target = ErrAlreadyExists
	}

	if target != nil {
		lg.Warn("request rejected", "err", err)

		return fmt.Errorf("%s: %w", op, target)
	}

	lg.Error("storage error", "err", err)

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%s: %w: %w", op, ErrStorageFailure, context.DeadlineExceeded)
	case errors.Is(err, context.Canceled):
		return fmt.Errorf("%s: %w: %w", op, ErrStorageFailure, context.Canceled)
	}

	return fmt.Errorf("%s: %w", op, ErrStorageFailure)
}

// checkInput валидирует входную структуру тегами validator.
func checkInput(lg *slog.Logger, op string, in any) error {
	if err := validation.Struct(in); err != nil {
		lg.Warn("validation failed", "err", err)

		return invalid(op, err)
	}

	return nil
}

// storage содержит контракты слоя хранилищ filmorate.
//
// films.go - фильмы, лайки и рейтинг популярности.
// people.go - пользователи и дружба между ними.
// dictionary.go - справочники жанров и рейтингов MPA (только чтение).
//
// Реализации: storage/memory (в памяти процесса) и storage/postgres.
// Обе обязаны соблюдать одинаковую семантику идентификаторов и ошибок.
package storage

import (
	"errors"
	"fmt"
)

//go:generate mockgen -source=films.go -destination=../../mocks/films_storage.go -package=mocks
//go:generate mockgen -source=people.go -destination=../../mocks/people_storage.go -package=mocks
//go:generate mockgen -source=dictionary.go -destination=../../mocks/dictionary_storage.go -package=mocks

var (
	// ErrNotFound — запись не найдена.
	ErrNotFound = errors.New("not found")
	// ErrFilmNotFound — фильм не найден.
	ErrFilmNotFound = fmt.Errorf("film %w", ErrNotFound)
	// ErrPersonNotFound — пользователь не найден.
	ErrPersonNotFound = fmt.Errorf("person %w", ErrNotFound)
	// ErrGenreNotFound — жанр не найден.
	ErrGenreNotFound = fmt.Errorf("genre %w", ErrNotFound)
	// ErrRatingNotFound — рейтинг MPA не найден.
	ErrRatingNotFound = fmt.Errorf("rating %w", ErrNotFound)
	// ErrInvalidArgument — некорректный вызов (id при создании, пустой id при обновлении, петля в дружбе).
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrAlreadyExists — нарушение уникальности (логин пользователя).
	ErrAlreadyExists = errors.New("already exists")
	// ErrStorageFailure — хранилище не смогло выполнить операцию.
	ErrStorageFailure = errors.New("storage failure")
)

// Storage — хранилище целиком: все контракты плюс освобождение ресурсов.
type Storage interface {
	FilmStorage
	PersonStorage
	DictionaryStorage
	Close()
}

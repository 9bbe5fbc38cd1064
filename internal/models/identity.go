// models содержит доменные сущности filmorate: фильмы, пользователи и справочники.
// Эти типы используются слоями бизнес-логики, хранилища и транспорта.
package models

import (
	"errors"
	"sync/atomic"
)

var (
	// ErrIdentityConflict — попытка повторно назначить идентификатор сущности.
	ErrIdentityConflict = errors.New("identity already assigned")
	// ErrInvalidID — идентификатор должен быть положительным.
	ErrInvalidID = errors.New("invalid id")
)

// Identity — идентификатор сущности, назначаемый ровно один раз.
// Нулевое значение означает "ещё не назначен".
type Identity struct {
	id int64
}

// ID возвращает идентификатор (0, если не назначен).
func (i Identity) ID() int64 {
	return i.id
}

// HasID сообщает, назначен ли идентификатор.
func (i Identity) HasID() bool {
	return i.id != 0
}

// SetID назначает идентификатор.
// Ошибки: ErrInvalidID для id <= 0, ErrIdentityConflict если id уже назначен.
func (i *Identity) SetID(id int64) error {
	if id <= 0 {
		return ErrInvalidID
	}

	if i.id != 0 {
		return ErrIdentityConflict
	}

	i.id = id
	return nil
}

// IdentityOf собирает Identity с уже известным id (для сканирования из БД и тестов).
func IdentityOf(id int64) Identity {
	return Identity{id: id}
}

// Sequence выдаёт монотонно растущие положительные идентификаторы.
// Каждое хранилище владеет своей последовательностью.
type Sequence struct {
	last atomic.Int64
}

// Next возвращает следующий неиспользованный идентификатор.
func (s *Sequence) Next() int64 {
	return s.last.Add(1)
}

// Last возвращает последний выданный идентификатор.
func (s *Sequence) Last() int64 {
	return s.last.Load()
}

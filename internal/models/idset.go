package models

import "slices"

// IDSet — множество идентификаторов (лайки фильма, друзья пользователя).
// nil-множество валидно и считается пустым для чтения.
type IDSet map[int64]struct{}

// NewIDSet собирает множество из перечисленных id.
func NewIDSet(ids ...int64) IDSet {
	s := make(IDSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}

	return s
}

// Add добавляет id и сообщает, изменилось ли множество.
func (s IDSet) Add(id int64) bool {
	if _, ok := s[id]; ok {
		return false
	}

	s[id] = struct{}{}
	return true
}

// Remove удаляет id и сообщает, изменилось ли множество.
func (s IDSet) Remove(id int64) bool {
	if _, ok := s[id]; !ok {
		return false
	}

	delete(s, id)
	return true
}

// Has проверяет принадлежность.
func (s IDSet) Has(id int64) bool {
	_, ok := s[id]
	return ok
}

// Len — мощность множества.
func (s IDSet) Len() int {
	return len(s)
}

// Sorted возвращает элементы по возрастанию.
func (s IDSet) Sorted() []int64 {
	out := make([]int64, 0, len(s))
	for id := range s {
		out = append(out, id)
	}

	slices.Sort(out)
	return out
}

// Clone возвращает независимую копию (никогда не nil).
func (s IDSet) Clone() IDSet {
	out := make(IDSet, len(s))
	for id := range s {
		out[id] = struct{}{}
	}

	return out
}

// Intersect возвращает пересечение двух множеств.
func (s IDSet) Intersect(other IDSet) IDSet {
	small, large := s, other
	if len(large) < len(small) {
		small, large = large, small
	}

	out := make(IDSet)
	for id := range small {
		if large.Has(id) {
			out[id] = struct{}{}
		}
	}

	return out
}

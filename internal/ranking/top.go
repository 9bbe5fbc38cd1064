// ranking вычисляет рейтинг популярности фильмов по числу лайков.
package ranking

import (
	"cmp"
	"errors"
	"slices"

	"github.com/pribylovaa/go-filmorate/internal/models"
)

// ErrInvalidCount — размер выборки должен быть положительным.
var ErrInvalidCount = errors.New("count must be positive")

// Compare задаёт порядок рейтинга: лайки по убыванию, затем id по возрастанию.
func Compare(a, b *models.Film) int {
	if c := cmp.Compare(b.LikeCount(), a.LikeCount()); c != 0 {
		return c
	}

	return cmp.Compare(a.ID(), b.ID())
}

// Top возвращает не более count самых популярных фильмов.
// Входной срез не изменяется.
func Top(films []*models.Film, count int) ([]*models.Film, error) {
	if count <= 0 {
		return nil, ErrInvalidCount
	}

	sorted := slices.Clone(films)
	slices.SortStableFunc(sorted, Compare)

	if len(sorted) > count {
		sorted = sorted[:count]
	}

	return sorted, nil
}

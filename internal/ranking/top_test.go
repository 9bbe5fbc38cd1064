package ranking

import (
	"testing"

	"github.com/pribylovaa/go-filmorate/internal/models"
	"github.com/stretchr/testify/require"
)

func film(id int64, likes ...int64) *models.Film {
	return &models.Film{Identity: models.IdentityOf(id), Name: "f", Likes: models.NewIDSet(likes...)}
}

func ids(films []*models.Film) []int64 {
	out := make([]int64, 0, len(films))
	for _, f := range films {
		out = append(out, f.ID())
	}

	return out
}

// F1 (0 лайков), F2 (1), F3 (2) -> top(2) = [F3, F2].
func TestTop_Scenario(t *testing.T) {
	films := []*models.Film{film(1), film(2, 10), film(3, 10, 11)}

	got, err := Top(films, 2)
	require.NoError(t, err)
	require.Equal(t, []int64{3, 2}, ids(got))
}

func TestTop_TiesByAscendingID(t *testing.T) {
	films := []*models.Film{film(5, 1), film(2), film(4, 1), film(1), film(3, 1, 2)}

	got, err := Top(films, 10)
	require.NoError(t, err)
	require.Equal(t, []int64{3, 4, 5, 1, 2}, ids(got))
}

func TestTop_FewerThanCount(t *testing.T) {
	got, err := Top([]*models.Film{film(1)}, 10)
	require.NoError(t, err)
	require.Len(t, got, 1)

	got, err = Top(nil, 10)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestTop_InvalidCount(t *testing.T) {
	for _, c := range []int{0, -1, -10} {
		_, err := Top([]*models.Film{film(1)}, c)
		require.ErrorIs(t, err, ErrInvalidCount)
	}
}

func TestTop_DoesNotMutateInput(t *testing.T) {
	films := []*models.Film{film(1), film(2, 1)}

	_, err := Top(films, 1)
	require.NoError(t, err)
	require.Equal(t, []int64{1, 2}, ids(films))
}

// Повторный лайк того же пользователя не увеличивает счётчик.
func TestTop_CountsDistinctLikers(t *testing.T) {
	a := film(1, 7)
	a.Likes.Add(7)
	b := film(2, 7, 8)

	got, err := Top([]*models.Film{a, b}, 2)
	require.NoError(t, err)
	require.Equal(t, []int64{2, 1}, ids(got))
}

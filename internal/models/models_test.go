package models

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// Идентификатор назначается ровно один раз; повторное назначение (любым значением) запрещено.
func TestIdentity_SetOnce(t *testing.T) {
	var id Identity
	require.False(t, id.HasID())

	require.NoError(t, id.SetID(7))
	require.True(t, id.HasID())
	require.EqualValues(t, 7, id.ID())

	require.ErrorIs(t, id.SetID(8), ErrIdentityConflict)
	require.ErrorIs(t, id.SetID(7), ErrIdentityConflict)
	require.EqualValues(t, 7, id.ID())
}

func TestIdentity_RejectsNonPositive(t *testing.T) {
	var id Identity
	require.ErrorIs(t, id.SetID(0), ErrInvalidID)
	require.ErrorIs(t, id.SetID(-1), ErrInvalidID)
	require.False(t, id.HasID())
}

// Embedded Identity доступен через сущность.
func TestIdentity_EmbeddedInEntities(t *testing.T) {
	f := &Film{Name: "f"}
	require.NoError(t, f.SetID(1))
	require.ErrorIs(t, f.SetID(2), ErrIdentityConflict)

	p := &Person{Login: "p"}
	require.NoError(t, p.SetID(3))
	require.EqualValues(t, 3, p.ID())
}

func TestSequence_MonotonicAndConcurrent(t *testing.T) {
	var seq Sequence

	const n = 100
	ids := make(chan int64, n)

	var wg sync.WaitGroup
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids <- seq.Next()
		}()
	}
	wg.Wait()
	close(ids)

	seen := NewIDSet()
	for id := range ids {
		require.Greater(t, id, int64(0))
		require.True(t, seen.Add(id), "duplicate id %d", id)
	}
	require.Equal(t, n, seen.Len())
	require.EqualValues(t, n, seq.Last())
}

// Независимые последовательности не влияют друг на друга.
func TestSequence_Independent(t *testing.T) {
	var a, b Sequence
	require.EqualValues(t, 1, a.Next())
	require.EqualValues(t, 2, a.Next())
	require.EqualValues(t, 1, b.Next())
}

func TestIDSet_Operations(t *testing.T) {
	s := NewIDSet(3, 1)
	require.True(t, s.Add(2))
	require.False(t, s.Add(2))
	require.True(t, s.Has(1))
	require.Equal(t, []int64{1, 2, 3}, s.Sorted())

	require.True(t, s.Remove(1))
	require.False(t, s.Remove(1))
	require.Equal(t, 2, s.Len())

	inter := s.Intersect(NewIDSet(3, 4, 5))
	require.Equal(t, []int64{3}, inter.Sorted())
}

func TestIDSet_NilIsEmpty(t *testing.T) {
	var s IDSet
	require.Equal(t, 0, s.Len())
	require.False(t, s.Has(1))
	require.Empty(t, s.Sorted())
	require.NotNil(t, s.Clone())
	require.Empty(t, s.Intersect(NewIDSet(1)))
}

func TestFilm_CloneIsDeep(t *testing.T) {
	f := &Film{
		Name:   "f",
		Rating: &Rating{ID: 1, Name: "G"},
		Genres: []Genre{{ID: 1, Name: "Комедия"}},
		Likes:  NewIDSet(1),
	}

	c := f.Clone()
	c.Rating.Name = "PG"
	c.Genres[0].Name = "Драма"
	c.Likes.Add(2)

	require.Equal(t, "G", f.Rating.Name)
	require.Equal(t, "Комедия", f.Genres[0].Name)
	require.Equal(t, 1, f.LikeCount())
	require.Equal(t, 2, c.LikeCount())
}

func TestNormalizeGenres(t *testing.T) {
	got := NormalizeGenres([]Genre{{ID: 3}, {ID: 1}, {ID: 3}, {ID: 2}, {ID: 1}})
	require.Equal(t, []Genre{{ID: 1}, {ID: 2}, {ID: 3}}, got)
	require.Nil(t, NormalizeGenres(nil))
}

func TestPerson_DisplayName(t *testing.T) {
	require.Equal(t, "login", (&Person{Login: "login", Name: "  "}).DisplayName())
	require.Equal(t, "Name", (&Person{Login: "login", Name: "Name"}).DisplayName())
}

package models

import (
	"cmp"
	"slices"
	"time"
)

// Genre — элемент справочника жанров.
type Genre struct {
	ID   int64
	Name string
}

// Rating — возрастной рейтинг MPA (справочник).
type Rating struct {
	ID   int64
	Name string
}

// Film — доменная модель фильма.
// Duration — продолжительность в минутах.
// Likes — множество id пользователей, поставивших лайк.
type Film struct {
	Identity
	Name        string
	Description string
	ReleaseDate time.Time
	Duration    int32
	Rating      *Rating
	Genres      []Genre
	Likes       IDSet
}

// LikeCount — число различных пользователей, лайкнувших фильм.
func (f *Film) LikeCount() int {
	return f.Likes.Len()
}

// GenreIDs возвращает id жанров в порядке хранения.
func (f *Film) GenreIDs() []int64 {
	ids := make([]int64, 0, len(f.Genres))
	for _, g := range f.Genres {
		ids = append(ids, g.ID)
	}

	return ids
}

// Clone возвращает глубокую копию фильма.
func (f *Film) Clone() *Film {
	out := *f
	if f.Rating != nil {
		r := *f.Rating
		out.Rating = &r
	}
	out.Genres = slices.Clone(f.Genres)
	out.Likes = f.Likes.Clone()

	return &out
}

// NormalizeGenres убирает дубли жанров и сортирует их по id.
func NormalizeGenres(genres []Genre) []Genre {
	if len(genres) == 0 {
		return nil
	}

	out := slices.Clone(genres)
	slices.SortFunc(out, func(a, b Genre) int { return cmp.Compare(a.ID, b.ID) })

	return slices.CompactFunc(out, func(a, b Genre) bool { return a.ID == b.ID })
}

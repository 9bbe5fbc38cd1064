package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/pribylovaa/go-filmorate/internal/models"
	"github.com/pribylovaa/go-filmorate/internal/service"
)

const dateLayout = time.DateOnly

// Date — дата в формате YYYY-MM-DD; null и "" дают нулевую дату.
type Date struct {
	time.Time
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.Format(dateLayout))
}

func (d *Date) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		d.Time = time.Time{}
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}

	if s == "" {
		d.Time = time.Time{}
		return nil
	}

	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return fmt.Errorf("date must be YYYY-MM-DD: %w", err)
	}
	d.Time = t

	return nil
}

// Ref — ссылка на элемент справочника; name в запросе игнорируется.
type Ref struct {
	ID   int64  `json:"id"`
	Name string `json:"name,omitempty"`
}

// Film — представление фильма в API (запрос и ответ).
type Film struct {
	ID          int64   `json:"id,omitempty"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	ReleaseDate Date    `json:"releaseDate"`
	Duration    int32   `json:"duration"`
	MPA         *Ref    `json:"mpa"`
	Genres      []Ref   `json:"genres"`
	Likes       []int64 `json:"likes"`
}

// ToInput переводит тело запроса во вход сервиса. Лайки из тела не применяются.
func (f Film) ToInput() service.FilmInput {
	in := service.FilmInput{
		ID:          f.ID,
		Name:        f.Name,
		Description: f.Description,
		ReleaseDate: f.ReleaseDate.Time,
		Duration:    f.Duration,
	}
	if f.MPA != nil {
		in.RatingID = f.MPA.ID
	}
	for _, g := range f.Genres {
		in.GenreIDs = append(in.GenreIDs, g.ID)
	}

	return in
}

func FilmFromModel(m *models.Film) Film {
	out := Film{
		ID:          m.ID(),
		Name:        m.Name,
		Description: m.Description,
		ReleaseDate: Date{m.ReleaseDate},
		Duration:    m.Duration,
		Genres:      make([]Ref, 0, len(m.Genres)),
		Likes:       m.Likes.Sorted(),
	}
	if m.Rating != nil {
		out.MPA = &Ref{ID: m.Rating.ID, Name: m.Rating.Name}
	}
	for _, g := range m.Genres {
		out.Genres = append(out.Genres, Ref{ID: g.ID, Name: g.Name})
	}

	return out
}

func FilmsFromModels(ms []*models.Film) []Film {
	out := make([]Film, 0, len(ms))
	for _, m := range ms {
		out = append(out, FilmFromModel(m))
	}
	return out
}

// User — представление пользователя в API.
type User struct {
	ID       int64   `json:"id,omitempty"`
	Email    string  `json:"email"`
	Login    string  `json:"login"`
	Name     string  `json:"name"`
	Birthday Date    `json:"birthday"`
	Friends  []int64 `json:"friends"`
}

// ToInput переводит тело запроса во вход сервиса. Друзья из тела не применяются.
func (u User) ToInput() service.PersonInput {
	return service.PersonInput{
		ID:       u.ID,
		Login:    u.Login,
		Name:     u.Name,
		Email:    u.Email,
		Birthday: u.Birthday.Time,
	}
}

func UserFromModel(m *models.Person) User {
	return User{
		ID:       m.ID(),
		Email:    m.Email,
		Login:    m.Login,
		Name:     m.DisplayName(),
		Birthday: Date{m.Birthday},
		Friends:  m.Friends.Sorted(),
	}
}

func UsersFromModels(ms []*models.Person) []User {
	out := make([]User, 0, len(ms))
	for _, m := range ms {
		out = append(out, UserFromModel(m))
	}
	return out
}

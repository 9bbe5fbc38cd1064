// memory предоставляет реализацию storage.Storage в памяти процесса.
// Данные не переживают перезапуск; удобно для локального запуска и тестов.
package memory

import (
	"context"
	"sync"

	"github.com/pribylovaa/go-filmorate/internal/friendship"
	"github.com/pribylovaa/go-filmorate/internal/models"
	"github.com/pribylovaa/go-filmorate/internal/storage"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const tracerID = "filmorate-storage-memory"

// Storage — хранилище фильмов, пользователей и справочников в map'ах под одним RWMutex.
// Возвращаемые сущности — копии; внешние изменения не затрагивают состояние.
type Storage struct {
	mu sync.RWMutex

	filmSeq   models.Sequence
	personSeq models.Sequence

	films   map[int64]*models.Film
	people  map[int64]*models.Person
	logins  map[string]int64
	friends *friendship.Graph

	genres  map[int64]models.Genre
	ratings map[int64]models.Rating
}

// DefaultGenres — начальное наполнение справочника жанров.
func DefaultGenres() []models.Genre {
	return []models.Genre{
		{ID: 1, Name: "Комедия"},
		{ID: 2, Name: "Драма"},
		{ID: 3, Name: "Мультфильм"},
		{ID: 4, Name: "Триллер"},
		{ID: 5, Name: "Документальный"},
		{ID: 6, Name: "Боевик"},
	}
}

// DefaultRatings — начальное наполнение справочника рейтингов MPA.
func DefaultRatings() []models.Rating {
	return []models.Rating{
		{ID: 1, Name: "G"},
		{ID: 2, Name: "PG"},
		{ID: 3, Name: "PG-13"},
		{ID: 4, Name: "R"},
		{ID: 5, Name: "NC-17"},
	}
}

// New создаёт пустое хранилище со справочниками по умолчанию.
func New() *Storage {
	return NewWithDictionary(DefaultGenres(), DefaultRatings())
}

// NewWithDictionary создаёт пустое хранилище с заданными справочниками.
func NewWithDictionary(genres []models.Genre, ratings []models.Rating) *Storage {
	s := &Storage{
		films:   make(map[int64]*models.Film),
		people:  make(map[int64]*models.Person),
		logins:  make(map[string]int64),
		friends: friendship.New(),
		genres:  make(map[int64]models.Genre, len(genres)),
		ratings: make(map[int64]models.Rating, len(ratings)),
	}

	for _, g := range genres {
		s.genres[g.ID] = g
	}

	for _, r := range ratings {
		s.ratings[r.ID] = r
	}

	return s
}

// Close — no-op, присутствует для соответствия storage.Storage.
func (s *Storage) Close() {}

func startSpan(ctx context.Context, name string) trace.Span {
	_, span := otel.Tracer(tracerID).Start(ctx, "Storage/"+name)
	return span
}

// Проверка выполнения контракта верхнего уровня.
var _ storage.Storage = (*Storage)(nil)

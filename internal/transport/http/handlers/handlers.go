package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/pribylovaa/go-filmorate/internal/service"
)

// Handlers агрегирует зависимости хендлеров (сервисы).
type Handlers struct {
	Films      *service.FilmService
	People     *service.PersonService
	Dictionary *service.DictionaryService
	// PopularDefault — count для /films/popular без параметра.
	PopularDefault int
}

func New(films *service.FilmService, people *service.PersonService, dict *service.DictionaryService, popularDefault int) *Handlers {
	return &Handlers{
		Films:          films,
		People:         people,
		Dictionary:     dict,
		PopularDefault: popularDefault,
	}
}

// writeJSON — единый ответ JSON с нужным Content-Type.
// Ошибки выводим через apierrors.WriteError.
func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

// decodeStrict — строгий JSON-декодер: запрещаем неизвестные поля.
func decodeStrict(r *http.Request, value any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(value); err != nil {
		return badRequest("malformed body: %v", err)
	}
	return nil
}

// badRequest — локальная ошибка разбора запроса -> 400.
func badRequest(format string, args ...any) error {
	return fmt.Errorf("%w: %s", service.ErrInvalidArgument, fmt.Sprintf(format, args...))
}

// pathID разбирает положительный целый id из параметра пути.
func pathID(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, badRequest("%s must be a positive integer", name)
	}

	return id, nil
}

package handlers

import (
	"net/http"
	"strconv"

	apierrors "github.com/pribylovaa/go-filmorate/internal/transport/http/errors"
)

// CreateFilm — POST /films, ответ 201 с созданным фильмом.
func (h *Handlers) CreateFilm(w http.ResponseWriter, r *http.Request) {
	var in Film
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	film, err := h.Films.Create(r.Context(), in.ToInput())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, FilmFromModel(film))
}

// UpdateFilm — PUT /films, id берётся из тела запроса.
func (h *Handlers) UpdateFilm(w http.ResponseWriter, r *http.Request) {
	var in Film
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	film, err := h.Films.Update(r.Context(), in.ToInput())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, FilmFromModel(film))
}

// ListFilms — GET /films, все фильмы по возрастанию id.
func (h *Handlers) ListFilms(w http.ResponseWriter, r *http.Request) {
	films, err := h.Films.Films(r.Context())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, FilmsFromModels(films))
}

// GetFilm — GET /films/{id}.
func (h *Handlers) GetFilm(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	film, err := h.Films.FilmByID(r.Context(), id)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, FilmFromModel(film))
}

// SetLike — PUT /films/{id}/like/{userId}; повторный лайк ничего не меняет.
func (h *Handlers) SetLike(w http.ResponseWriter, r *http.Request) {
	filmID, personID, err := likeParams(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	film, err := h.Films.SetLike(r.Context(), filmID, personID)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, FilmFromModel(film))
}

// RemoveLike — DELETE /films/{id}/like/{userId}.
func (h *Handlers) RemoveLike(w http.ResponseWriter, r *http.Request) {
	filmID, personID, err := likeParams(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	film, err := h.Films.RemoveLike(r.Context(), filmID, personID)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, FilmFromModel(film))
}

// PopularFilms — GET /films/popular?count=N; без count берётся значение по умолчанию.
func (h *Handlers) PopularFilms(w http.ResponseWriter, r *http.Request) {
	count := h.PopularDefault

	if raw := r.URL.Query().Get("count"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			apierrors.WriteError(w, r, badRequest("count must be an integer"))
			return
		}
		count = n
	}

	films, err := h.Films.TopPopular(r.Context(), count)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, FilmsFromModels(films))
}

func likeParams(r *http.Request) (int64, int64, error) {
	filmID, err := pathID(r, "id")
	if err != nil {
		return 0, 0, err
	}

	personID, err := pathID(r, "userId")
	if err != nil {
		return 0, 0, err
	}

	return filmID, personID, nil
}

package handlers

import (
	"net/http"

	apierrors "github.com/pribylovaa/go-filmorate/internal/transport/http/errors"
)

// ListGenres — GET /genres.
func (h *Handlers) ListGenres(w http.ResponseWriter, r *http.Request) {
	genres, err := h.Dictionary.Genres(r.Context())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	out := make([]Ref, 0, len(genres))
	for _, g := range genres {
		out = append(out, Ref{ID: g.ID, Name: g.Name})
	}

	writeJSON(w, http.StatusOK, out)
}

// GetGenre — GET /genres/{id}.
func (h *Handlers) GetGenre(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	g, err := h.Dictionary.GenreByID(r.Context(), id)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, Ref{ID: g.ID, Name: g.Name})
}

// ListRatings — GET /mpa.
func (h *Handlers) ListRatings(w http.ResponseWriter, r *http.Request) {
	ratings, err := h.Dictionary.Ratings(r.Context())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	out := make([]Ref, 0, len(ratings))
	for _, rt := range ratings {
		out = append(out, Ref{ID: rt.ID, Name: rt.Name})
	}

	writeJSON(w, http.StatusOK, out)
}

// GetRating — GET /mpa/{id}.
func (h *Handlers) GetRating(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	rt, err := h.Dictionary.RatingByID(r.Context(), id)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, Ref{ID: rt.ID, Name: rt.Name})
}

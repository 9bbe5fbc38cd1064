package errors

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pribylovaa/go-filmorate/internal/service"
	"github.com/pribylovaa/go-filmorate/internal/validation"
	"github.com/stretchr/testify/require"
)

func TestToHTTP_BaseMapping(t *testing.T) {
	tcs := []struct {
		name       string
		in         error
		wantStatus int
		wantCode   string
	}{
		{"invalid_argument", fmt.Errorf("op: %w", service.ErrInvalidArgument), http.StatusBadRequest, "invalid_argument"},
		{"film_not_found", fmt.Errorf("op: %w", service.ErrFilmNotFound), http.StatusNotFound, "not_found"},
		{"person_not_found", service.ErrPersonNotFound, http.StatusNotFound, "not_found"},
		{"genre_not_found", service.ErrGenreNotFound, http.StatusNotFound, "not_found"},
		{"rating_not_found", service.ErrRatingNotFound, http.StatusNotFound, "not_found"},
		{"already_exists", service.ErrAlreadyExists, http.StatusConflict, "already_exists"},
		{"identity_conflict", service.ErrIdentityConflict, http.StatusConflict, "identity_conflict"},
		{"canceled", fmt.Errorf("op: %w: %w", service.ErrStorageFailure, context.Canceled), StatusClientClosedRequest, "canceled"},
		{"deadline", fmt.Errorf("op: %w: %w", service.ErrStorageFailure, context.DeadlineExceeded), http.StatusGatewayTimeout, "deadline_exceeded"},
		{"storage_failure", service.ErrStorageFailure, http.StatusInternalServerError, "internal"},
		{"unknown", fmt.Errorf("boom"), http.StatusInternalServerError, "internal"},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			gotStatus, resp := ToHTTP(tc.in)
			require.Equal(t, tc.wantStatus, gotStatus)
			require.Equal(t, tc.wantCode, resp.Error.Code)
			require.NotEmpty(t, resp.Error.Message)
		})
	}
}

func TestToHTTP_NilError_Returns500Internal(t *testing.T) {
	gotStatus, resp := ToHTTP(nil)
	require.Equal(t, http.StatusInternalServerError, gotStatus)
	require.Equal(t, "internal", resp.Error.Code)
	require.Equal(t, "internal error", resp.Error.Message)
}

// Ошибки валидации полей попадают в ответ списком.
func TestToHTTP_ValidationFields(t *testing.T) {
	verr := &validation.Error{Fields: []validation.FieldError{
		{Field: "Login", Tag: "login", Message: "Login must not contain spaces and must be at most 20 characters"},
	}}
	err := fmt.Errorf("op: %w: %w", service.ErrInvalidArgument, verr)

	gotStatus, resp := ToHTTP(err)
	require.Equal(t, http.StatusBadRequest, gotStatus)
	require.Equal(t, "validation failed", resp.Error.Message)
	require.Equal(t, []FieldError{{Field: "Login", Message: verr.Fields[0].Message}}, resp.Error.Fields)
}

func TestWriteError_AddsRequestID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/films/1", nil)
	req.Header.Set("X-Request-Id", "rid-1")
	rr := httptest.NewRecorder()

	WriteError(rr, req, service.ErrFilmNotFound)

	require.Equal(t, http.StatusNotFound, rr.Code)
	require.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Equal(t, "rid-1", resp.Error.RequestID)
	require.Equal(t, "film not found", resp.Error.Message)
}

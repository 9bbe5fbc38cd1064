// errors стандартизирует ответы об ошибках HTTP-слоя filmorate.
// На вход принимает ошибку сервисного слоя, на выход даёт:
//   - HTTP-статус по виду ошибки (errors.Is по сентинелам service);
//   - краткое безопасное message без деталей хранилища;
//   - список ошибок полей для невалидного тела запроса.
package errors

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/pribylovaa/go-filmorate/internal/service"
	"github.com/pribylovaa/go-filmorate/internal/validation"
)

// Нестандартный код часто используемый для "клиент закрыл соединение".
const StatusClientClosedRequest = 499

// FieldError — ошибка одного поля тела запроса.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// APIError — единый формат ошибки для клиента.
// Code — короткий стабильный код; Message — безопасное описание;
// RequestID — из X-Request-Id, если есть.
type APIError struct {
	Code      string       `json:"code"`
	Message   string       `json:"message"`
	Fields    []FieldError `json:"fields,omitempty"`
	RequestID string       `json:"request_id,omitempty"`
}

// ErrorResponse — корневой объект в ответе.
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// ToHTTP конвертирует ошибку сервиса в HTTP-статус и тело ответа.
//
// Поведение:
//   - err == nil — программная ошибка вызова: 500/internal;
//   - NotFound — 404, InvalidArgument — 400, AlreadyExists и IdentityConflict — 409;
//   - контекст отменён клиентом — 499, истёк дедлайн — 504;
//   - всё прочее — 500/internal.
func ToHTTP(err error) (int, ErrorResponse) {
	if err == nil {
		return internal()
	}

	var (
		status int
		code   string
		msg    string
	)

	switch {
	case stderrors.Is(err, service.ErrInvalidArgument):
		status, code, msg = http.StatusBadRequest, "invalid_argument", "invalid argument"
	case stderrors.Is(err, service.ErrFilmNotFound):
		status, code, msg = http.StatusNotFound, "not_found", "film not found"
	case stderrors.Is(err, service.ErrPersonNotFound):
		status, code, msg = http.StatusNotFound, "not_found", "user not found"
	case stderrors.Is(err, service.ErrGenreNotFound):
		status, code, msg = http.StatusNotFound, "not_found", "genre not found"
	case stderrors.Is(err, service.ErrRatingNotFound):
		status, code, msg = http.StatusNotFound, "not_found", "mpa rating not found"
	case stderrors.Is(err, service.ErrNotFound):
		status, code, msg = http.StatusNotFound, "not_found", "not found"
	case stderrors.Is(err, service.ErrAlreadyExists):
		status, code, msg = http.StatusConflict, "already_exists", "already exists"
	case stderrors.Is(err, service.ErrIdentityConflict):
		status, code, msg = http.StatusConflict, "identity_conflict", "identity conflict"
	case stderrors.Is(err, context.Canceled):
		status, code, msg = StatusClientClosedRequest, "canceled", "canceled"
	case stderrors.Is(err, context.DeadlineExceeded):
		status, code, msg = http.StatusGatewayTimeout, "deadline_exceeded", "deadline exceeded"
	default:
		return internal()
	}

	resp := ErrorResponse{Error: APIError{Code: code, Message: msg}}

	var verr *validation.Error
	if stderrors.As(err, &verr) {
		resp.Error.Message = "validation failed"
		for _, f := range verr.Fields {
			resp.Error.Fields = append(resp.Error.Fields, FieldError{Field: f.Field, Message: f.Message})
		}
	}

	return status, resp
}

func internal() (int, ErrorResponse) {
	return http.StatusInternalServerError, ErrorResponse{
		Error: APIError{
			Code:    "internal",
			Message: "internal error",
		},
	}
}

// WriteError — хелпер для HTTP-хендлеров.
// Пишет статус и тело, добавляет request_id из заголовка, если он есть.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status, resp := ToHTTP(err)

	if rid := r.Header.Get("X-Request-Id"); rid != "" {
		resp.Error.RequestID = rid
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

// Package validation проверяет входные структуры сервисного слоя
// с помощью go-playground/validator v10.
//
// Валидатор — потокобезопасный синглтон с пользовательскими тегами:
//   - login      — логин без пробелов: буквы, цифры, '_', '.', '-', до 20 символов,
//     оканчивается буквой или цифрой;
//   - notblank   — строка содержит хотя бы один непробельный символ;
//   - notfuture  — дата не позже текущего момента;
//   - cinemaepoch — дата не раньше первого киносеанса (28.12.1895).
package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
)

// CinemaEpoch — дата первого публичного киносеанса.
var CinemaEpoch = time.Date(1895, time.December, 28, 0, 0, 0, 0, time.UTC)

var loginRe = regexp.MustCompile(`^[\w.-]{0,19}[0-9a-zA-Z]$`)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// FieldError — ошибка валидации одного поля.
type FieldError struct {
	Field   string
	Tag     string
	Message string
}

// Error — набор ошибок валидации структуры.
type Error struct {
	Fields []FieldError
}

func (e *Error) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}

	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Message)
	}

	return strings.Join(msgs, "; ")
}

// Get возвращает синглтон валидатора с зарегистрированными тегами.
func Get() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		mustRegister(validate, "login", func(fl validator.FieldLevel) bool {
			return loginRe.MatchString(fl.Field().String())
		})
		mustRegister(validate, "notblank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})
		mustRegister(validate, "notfuture", func(fl validator.FieldLevel) bool {
			t, ok := fl.Field().Interface().(time.Time)
			return ok && !t.After(time.Now())
		})
		mustRegister(validate, "cinemaepoch", func(fl validator.FieldLevel) bool {
			t, ok := fl.Field().Interface().(time.Time)
			return ok && !t.Before(CinemaEpoch)
		})
	})

	return validate
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("validation: register %q: %v", tag, err))
	}
}

// Struct валидирует структуру. Возвращает nil или *Error.
func Struct(s any) error {
	err := Get().Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return &Error{Fields: []FieldError{{Field: "unknown", Tag: "unknown", Message: err.Error()}}}
	}

	out := &Error{Fields: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, FieldError{
			Field:   fe.Field(),
			Tag:     fe.Tag(),
			Message: translate(fe),
		})
	}

	return out
}

var messages = map[string]string{
	"required":    "%s is required",
	"notblank":    "%s must not be blank",
	"email":       "%s must be a valid email address",
	"login":       "%s must not contain spaces and must be at most 20 characters",
	"notfuture":   "%s must not be in the future",
	"cinemaepoch": "%s must not be earlier than 1895-12-28",
}

var messagesWithParam = map[string]string{
	"gt":  "%s must be greater than %s",
	"gte": "%s must be greater than or equal to %s",
	"max": "%s must be at most %s characters",
}

func translate(fe validator.FieldError) string {
	if tpl, ok := messages[fe.Tag()]; ok {
		return fmt.Sprintf(tpl, fe.Field())
	}

	if tpl, ok := messagesWithParam[fe.Tag()]; ok {
		return fmt.Sprintf(tpl, fe.Field(), fe.Param())
	}

	return fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag())
}

// http собирает REST-интерфейс filmorate на chi.
package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/trace"

	"github.com/pribylovaa/go-filmorate/internal/transport/http/handlers"
	"github.com/pribylovaa/go-filmorate/internal/transport/http/middleware"
)

// Options — параметры сборки HTTP-роутера.
type Options struct {
	Logger   *slog.Logger
	Timeout  time.Duration
	BasePath string // например, "/api"; если пустой — роуты регистрируются на корне.

	// TracerProvider для серверных спанов; nil — глобальный провайдер otel.
	TracerProvider trace.TracerProvider
}

// NewRouter собирает http.Handler с chi и подключёнными middleware/роутами.
func NewRouter(h *handlers.Handlers, opts Options) http.Handler {
	root := chi.NewRouter()

	// Middleware (внешний -> внутренний).
	// Tracing и Metrics читают шаблон маршрута chi после обработки запроса.
	root.Use(
		middleware.RequestID(),          // формируем/прокидываем X-Request-Id (до логирования!)
		middleware.Logging(opts.Logger), // кладём request-scoped логгер в контекст и логируем
		middleware.Recover(),            // паника становится 500 и попадает в лог запроса
		middleware.Tracing(opts.TracerProvider),
		middleware.Metrics(),
		middleware.Timeout(opts.Timeout),
	)

	if opts.BasePath != "" {
		sub := chi.NewRouter()
		registerRoutes(sub, h)
		root.Mount(opts.BasePath, sub)
		return root
	}

	registerRoutes(root, h)
	return root
}

// registerRoutes — единая точка регистрации всех REST-эндпойнтов.
func registerRoutes(r chi.Router, h *handlers.Handlers) {
	// films
	r.Post("/films", h.CreateFilm)
	r.Put("/films", h.UpdateFilm)
	r.Get("/films", h.ListFilms)
	r.Get("/films/popular", h.PopularFilms)
	r.Get("/films/{id}", h.GetFilm)
	r.Put("/films/{id}/like/{userId}", h.SetLike)
	r.Delete("/films/{id}/like/{userId}", h.RemoveLike)

	// users
	r.Post("/users", h.CreateUser)
	r.Put("/users", h.UpdateUser)
	r.Get("/users", h.ListUsers)
	r.Get("/users/{id}", h.GetUser)
	r.Put("/users/{id}/friends/{friendId}", h.AddFriend)
	r.Delete("/users/{id}/friends/{friendId}", h.DeleteFriend)
	r.Get("/users/{id}/friends", h.ListFriends)
	r.Get("/users/{id}/friends/common/{otherId}", h.CommonFriends)

	// dictionary
	r.Get("/genres", h.ListGenres)
	r.Get("/genres/{id}", h.GetGenre)
	r.Get("/mpa", h.ListRatings)
	r.Get("/mpa/{id}", h.GetRating)
}

package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/GregMSThompson/ledger-backend/internal/handlers"
	"github.com/GregMSThompson/ledger-backend/internal/middleware"
)

func NewRouter(deps *handlers.Deps, allowedOrigins []string) chi.Router {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(middleware.NewLoggerMiddleware(deps.Log).LoggerMiddleware)
	r.Use(chimiddleware.Recoverer)
	if len(allowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   allowedOrigins,
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
			AllowedHeaders:   []string{"Authorization", "Content-Type"},
			AllowCredentials: false,
			MaxAge:           300,
		}))
	}

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	mw := middleware.NewMiddleware(deps.Firebase, deps.ResponseHandler)
	ush := handlers.NewUserHandlers(deps)
	bkh := handlers.NewBookHandlers(deps)
	tgh := handlers.NewTagHandlers(deps)

	r.Group(func(r chi.Router) {
		r.Use(mw.FirebaseAuth)
		r.Mount("/users", ush.UserRoutes())
		r.Mount("/books", bkh.BookRoutes())
		r.Mount("/tags", tgh.TagRoutes())
	})
	return r
}

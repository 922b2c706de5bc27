package attempt

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/studyai-app/studyai-lambda/internal/auth"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(auth.AuthMiddleware)

	r.Post("/", h.SaveAttempt)
	r.Get("/", h.ListAttempts)
	return r
}

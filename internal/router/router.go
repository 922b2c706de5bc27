package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/studyai-app/studyai-lambda/internal/assistant"
	"github.com/studyai-app/studyai-lambda/internal/attempt"
	"github.com/studyai-app/studyai-lambda/internal/config"
	"github.com/studyai-app/studyai-lambda/internal/genquiz"
	"github.com/studyai-app/studyai-lambda/internal/middlewares"
)

type RouterConfig struct {
	GenQuizHandler   *genquiz.Handler
	AttemptHandler   *attempt.Handler
	AssistantHandler *assistant.Handler
}

func New(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		config.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Mount("/generate-quiz", genquiz.Routes(cfg.GenQuizHandler))
	r.Mount("/assistant", assistant.Routes(cfg.AssistantHandler))
	r.Mount("/attempts", attempt.Routes(cfg.AttemptHandler))

	return r
}

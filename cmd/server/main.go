package main

import (
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/studyai-app/studyai-lambda/internal/container"
	"github.com/studyai-app/studyai-lambda/internal/router"
)

func main() {
	// .env is optional; production config comes from real env vars.
	_ = godotenv.Load()

	c := container.New()
	r := router.New(router.RouterConfig{
		GenQuizHandler:   c.GenQuizContainer.Handler,
		AttemptHandler:   c.AttemptContainer.Handler,
		AssistantHandler: c.AssistantContainer.Handler,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	logrus.Infof("Listening on :%s", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		logrus.WithError(err).Fatal("Server stopped")
	}
}

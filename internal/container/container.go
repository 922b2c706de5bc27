package container

import (
	"context"
	"log"
	"os"

	"github.com/studyai-app/studyai-lambda/internal/assistant"
	"github.com/studyai-app/studyai-lambda/internal/attempt"
	"github.com/studyai-app/studyai-lambda/internal/auth"
	"github.com/studyai-app/studyai-lambda/internal/config"
	"github.com/studyai-app/studyai-lambda/internal/genquiz"
)

type Container struct {
	GenQuizContainer   *genquiz.GenQuizContainer
	AttemptContainer   *attempt.AttemptContainer
	AssistantContainer *assistant.AssistantContainer
}

func New() *Container {
	config.Init()
	auth.Init()

	dsn := os.Getenv("DATABASE_DSN")
	if err := config.Connect(context.Background(), dsn); err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}
	if err := config.DB.AutoMigrate(&attempt.QuizAttempt{}); err != nil {
		log.Fatalf("failed to migrate attempt schema: %v", err)
	}

	return &Container{
		GenQuizContainer:   genquiz.NewGenQuizContainer(),
		AttemptContainer:   attempt.NewAttemptContainer(config.DB),
		AssistantContainer: assistant.NewAssistantContainer(),
	}
}

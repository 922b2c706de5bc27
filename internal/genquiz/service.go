package genquiz

import (
	"context"

	"github.com/studyai-app/studyai-lambda/internal/config"
)

type Service interface {
	GenerateQuiz(ctx context.Context, settings QuizSettings) (*Quiz, error)
}

type service struct {
	provider Provider
}

func NewService(provider Provider) Service {
	return &service{provider: provider}
}

func (s *service) GenerateQuiz(ctx context.Context, settings QuizSettings) (*Quiz, error) {
	log := config.WithContext(ctx)

	prompt := BuildUserPrompt(settings)

	raw, err := s.provider.Complete(ctx, systemPrompt, prompt)
	if err != nil {
		return nil, err
	}

	quiz, err := ParseQuiz(raw)
	if err != nil {
		// Format drift from the model is diagnosed from this log line.
		log.WithError(err).Errorf("Failed to parse generated quiz. Raw content:\n%s", raw)
		return nil, err
	}

	log.Infof("Generated quiz %q with %d questions", quiz.Title, len(quiz.Questions))
	return quiz, nil
}

package attempt

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/studyai-app/studyai-lambda/internal/config"
	"github.com/studyai-app/studyai-lambda/internal/genquiz"
)

var ErrInvalidAttempt = errors.New("invalid attempt payload")

type Service interface {
	SaveAttempt(ctx context.Context, userID uuid.UUID, dto SaveAttemptDTO) (*QuizAttempt, error)
	ListByUser(ctx context.Context, userID string) ([]*QuizAttempt, error)
	RecordCompletion(ctx context.Context, userID uuid.UUID, settings genquiz.QuizSettings, session *Session) *QuizAttempt
}

type attemptService struct {
	repo AttemptRepository
}

func NewService(repo AttemptRepository) Service {
	return &attemptService{repo: repo}
}

func (s *attemptService) SaveAttempt(ctx context.Context, userID uuid.UUID, dto SaveAttemptDTO) (*QuizAttempt, error) {
	log := config.WithContext(ctx)

	if dto.Title == "" || dto.Subject == "" || dto.DifficultyLevel == "" {
		return nil, ErrInvalidAttempt
	}
	if len(dto.Questions) == 0 || dto.Score < 0 || dto.Score > 100 {
		return nil, ErrInvalidAttempt
	}

	completedAt := time.Now()
	if dto.CompletedAt != nil {
		completedAt = *dto.CompletedAt
	}

	a := &QuizAttempt{
		ID:              uuid.New(),
		UserID:          userID,
		Title:           dto.Title,
		Subject:         dto.Subject,
		DifficultyLevel: dto.DifficultyLevel,
		Questions:       datatypes.JSON(dto.Questions),
		Score:           dto.Score,
		CompletedAt:     completedAt,
	}

	if err := s.repo.Create(a); err != nil {
		log.WithError(err).Error("Failed to save quiz attempt")
		return nil, err
	}

	log.Infof("Saved quiz attempt %s for user %s", a.ID, userID)
	return a, nil
}

func (s *attemptService) ListByUser(ctx context.Context, userID string) ([]*QuizAttempt, error) {
	log := config.WithContext(ctx)

	attempts, err := s.repo.ListByUser(userID)
	if err != nil {
		log.WithError(err).Error("Failed to list quiz attempts")
		return nil, err
	}
	return attempts, nil
}

// RecordCompletion persists a finished session on behalf of a signed-in
// user. The write is best-effort: any failure is logged and swallowed so it
// never keeps the user from seeing their results. Returns the stored record,
// or nil when nothing was written.
func (s *attemptService) RecordCompletion(ctx context.Context, userID uuid.UUID, settings genquiz.QuizSettings, session *Session) *QuizAttempt {
	log := config.WithContext(ctx)

	if session == nil || session.State() != StateCompleted {
		log.Warn("Skipping attempt persistence: session not completed")
		return nil
	}
	if userID == uuid.Nil {
		// Anonymous session, nothing to persist.
		return nil
	}

	questions, err := json.Marshal(session.Quiz().Questions)
	if err != nil {
		log.WithError(err).Warn("Failed to encode attempt questions")
		return nil
	}

	a := &QuizAttempt{
		ID:              uuid.New(),
		UserID:          userID,
		Title:           session.Quiz().Title,
		Subject:         settings.Subject,
		DifficultyLevel: settings.Difficulty,
		Questions:       datatypes.JSON(questions),
		Score:           session.Score(),
		CompletedAt:     session.CompletedAt(),
	}

	if err := s.repo.Create(a); err != nil {
		log.WithError(err).Warn("Failed to persist completed quiz attempt")
		return nil
	}

	return a
}

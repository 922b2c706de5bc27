package attempt_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/studyai-app/studyai-lambda/internal/attempt"
	"github.com/studyai-app/studyai-lambda/internal/genquiz"
)

type fakeRepo struct {
	created []*attempt.QuizAttempt
	err     error
}

func (f *fakeRepo) Create(a *attempt.QuizAttempt) error {
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, a)
	return nil
}

func (f *fakeRepo) ListByUser(userID string) ([]*attempt.QuizAttempt, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.created, nil
}

func completedSession(t *testing.T) *attempt.Session {
	t.Helper()

	s := attempt.NewSession()
	if err := s.Start(makeQuiz(0, 1, 2, 3, 0)); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 5; i++ {
		if err := s.SelectAnswer(i, 0); err != nil {
			t.Fatal(err)
		}
		if err := s.Advance(); err != nil {
			t.Fatal(err)
		}
	}
	return s
}

func TestRecordCompletion(t *testing.T) {
	settings := genquiz.QuizSettings{Subject: "physics", Difficulty: "beginner"}

	t.Run("PersistsCompletedSession", func(t *testing.T) {
		repo := &fakeRepo{}
		svc := attempt.NewService(repo)
		userID := uuid.New()

		a := svc.RecordCompletion(context.Background(), userID, settings, completedSession(t))
		if a == nil {
			t.Fatal("expected a stored attempt")
		}
		if len(repo.created) != 1 {
			t.Fatalf("expected one record, got %d", len(repo.created))
		}

		got := repo.created[0]
		if got.UserID != userID {
			t.Errorf("wrong user id: %s", got.UserID)
		}
		if got.Title != "Test Quiz" || got.Subject != "physics" || got.DifficultyLevel != "beginner" {
			t.Errorf("metadata mismatch: %+v", got)
		}
		if got.Score != 40 {
			t.Errorf("expected score 40, got %d", got.Score)
		}
		if got.CompletedAt.IsZero() {
			t.Error("completedAt not carried over")
		}

		var questions []genquiz.Question
		if err := json.Unmarshal(got.Questions, &questions); err != nil {
			t.Fatalf("questions payload is not JSON: %v", err)
		}
		if len(questions) != 5 {
			t.Errorf("expected 5 questions in payload, got %d", len(questions))
		}
	})

	t.Run("SkipsAnonymousUser", func(t *testing.T) {
		repo := &fakeRepo{}
		svc := attempt.NewService(repo)

		if a := svc.RecordCompletion(context.Background(), uuid.Nil, settings, completedSession(t)); a != nil {
			t.Error("anonymous completion should not persist")
		}
		if len(repo.created) != 0 {
			t.Error("unexpected write for anonymous user")
		}
	})

	t.Run("SkipsUnfinishedSession", func(t *testing.T) {
		repo := &fakeRepo{}
		svc := attempt.NewService(repo)

		s := attempt.NewSession()
		if err := s.Start(makeQuiz(0, 1, 2, 3, 0)); err != nil {
			t.Fatal(err)
		}

		if a := svc.RecordCompletion(context.Background(), uuid.New(), settings, s); a != nil {
			t.Error("in-progress session should not persist")
		}
	})

	t.Run("SwallowsStorageFailure", func(t *testing.T) {
		repo := &fakeRepo{err: errors.New("connection refused")}
		svc := attempt.NewService(repo)

		// Must not panic or surface the error; the user still sees results.
		if a := svc.RecordCompletion(context.Background(), uuid.New(), settings, completedSession(t)); a != nil {
			t.Error("failed write should report nothing stored")
		}
	})
}

func TestSaveAttemptValidation(t *testing.T) {
	repo := &fakeRepo{}
	svc := attempt.NewService(repo)
	userID := uuid.New()
	now := time.Now()

	valid := attempt.SaveAttemptDTO{
		Title:           "Algebra Basics",
		Subject:         "mathematics",
		DifficultyLevel: "beginner",
		Questions:       json.RawMessage(`[{"id":1}]`),
		Score:           80,
		CompletedAt:     &now,
	}

	t.Run("Valid", func(t *testing.T) {
		a, err := svc.SaveAttempt(context.Background(), userID, valid)
		if err != nil {
			t.Fatalf("SaveAttempt failed: %v", err)
		}
		if a.ID == uuid.Nil {
			t.Error("attempt id not assigned")
		}
	})

	t.Run("Invalid", func(t *testing.T) {
		cases := map[string]func(dto *attempt.SaveAttemptDTO){
			"MissingTitle":    func(dto *attempt.SaveAttemptDTO) { dto.Title = "" },
			"MissingSubject":  func(dto *attempt.SaveAttemptDTO) { dto.Subject = "" },
			"NoQuestions":     func(dto *attempt.SaveAttemptDTO) { dto.Questions = nil },
			"ScoreOverRange":  func(dto *attempt.SaveAttemptDTO) { dto.Score = 101 },
			"ScoreUnderRange": func(dto *attempt.SaveAttemptDTO) { dto.Score = -1 },
		}

		for name, mutate := range cases {
			t.Run(name, func(t *testing.T) {
				dto := valid
				mutate(&dto)
				if _, err := svc.SaveAttempt(context.Background(), userID, dto); !errors.Is(err, attempt.ErrInvalidAttempt) {
					t.Errorf("expected ErrInvalidAttempt, got %v", err)
				}
			})
		}
	})
}

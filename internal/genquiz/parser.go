package genquiz

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ParseQuiz turns raw model output into a validated Quiz. It is the only
// correctness gate between the generative model and quiz-taking, so any
// structural violation is rejected here. Fields the model adds beyond the
// schema are ignored.
func ParseQuiz(raw string) (*Quiz, error) {
	clean := strings.TrimSpace(raw)
	clean = strings.TrimPrefix(clean, "```json")
	clean = strings.TrimSuffix(clean, "```")
	clean = strings.Trim(clean, "`")
	clean = strings.TrimSpace(clean)

	var quiz Quiz
	if err := json.Unmarshal([]byte(clean), &quiz); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	if err := validateQuiz(&quiz); err != nil {
		return nil, err
	}
	return &quiz, nil
}

func validateQuiz(q *Quiz) error {
	if len(q.Questions) == 0 {
		return fmt.Errorf("%w: quiz has no questions", ErrValidation)
	}
	if len(q.Questions) != QuestionsPerQuiz {
		return fmt.Errorf("%w: expected %d questions, got %d",
			ErrValidation, QuestionsPerQuiz, len(q.Questions))
	}

	seen := make(map[int]bool, len(q.Questions))
	for i, question := range q.Questions {
		if len(question.Options) != OptionsPerQuestion {
			return fmt.Errorf("%w: question %d has %d options",
				ErrValidation, i+1, len(question.Options))
		}
		if question.CorrectAnswer < 0 || question.CorrectAnswer >= len(question.Options) {
			return fmt.Errorf("%w: question %d has correctAnswer %d out of range",
				ErrValidation, i+1, question.CorrectAnswer)
		}
		if seen[question.ID] {
			return fmt.Errorf("%w: duplicate question id %d", ErrValidation, question.ID)
		}
		seen[question.ID] = true
	}

	return nil
}

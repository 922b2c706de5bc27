package attempt

import (
	"encoding/json"
	"time"
)

type SaveAttemptDTO struct {
	Title           string          `json:"title"`
	Subject         string          `json:"subject"`
	DifficultyLevel string          `json:"difficulty_level"`
	Questions       json.RawMessage `json:"questions"`
	Score           int             `json:"score"`
	CompletedAt     *time.Time      `json:"completed_at"`
}

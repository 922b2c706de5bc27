package attempt

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// QuizAttempt is the append-only record written when a signed-in user
// finishes a quiz. It is never updated after creation.
type QuizAttempt struct {
	ID              uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID          uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Title           string         `gorm:"type:text;not null" json:"title"`
	Subject         string         `gorm:"type:text;not null" json:"subject"`
	DifficultyLevel string         `gorm:"type:text;not null" json:"difficulty_level"`
	Questions       datatypes.JSON `gorm:"type:jsonb;not null" json:"questions"`
	Score           int            `gorm:"not null;default:0" json:"score"`
	CompletedAt     time.Time      `gorm:"not null" json:"completed_at"`
	CreatedAt       time.Time      `gorm:"autoCreateTime" json:"created_at"`
}

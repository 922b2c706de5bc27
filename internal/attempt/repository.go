package attempt

import "gorm.io/gorm"

type AttemptRepository interface {
	Create(a *QuizAttempt) error
	ListByUser(userID string) ([]*QuizAttempt, error)
}

type attemptRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) AttemptRepository {
	return &attemptRepository{db: db}
}

func (r *attemptRepository) Create(a *QuizAttempt) error {
	return r.db.Create(a).Error
}

func (r *attemptRepository) ListByUser(userID string) ([]*QuizAttempt, error) {
	var attempts []*QuizAttempt
	if err := r.db.
		Where("user_id = ?", userID).
		Order("completed_at DESC").
		Find(&attempts).Error; err != nil {
		return nil, err
	}
	return attempts, nil
}

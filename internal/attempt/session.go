package attempt

import (
	"errors"
	"math"
	"time"

	"github.com/studyai-app/studyai-lambda/internal/genquiz"
)

type SessionState string

const (
	StateConfiguring SessionState = "CONFIGURING"
	StateInProgress  SessionState = "IN_PROGRESS"
	StateCompleted   SessionState = "COMPLETED"
)

var (
	ErrNoQuiz             = errors.New("no quiz in progress")
	ErrQuizInProgress     = errors.New("a quiz is already in progress")
	ErrSessionCompleted   = errors.New("session is completed")
	ErrInvalidQuestion    = errors.New("question index out of range")
	ErrInvalidChoice      = errors.New("choice index out of range")
	ErrUnansweredQuestion = errors.New("current question has no recorded answer")
)

// Session drives a single quiz-taking attempt. Answers are kept in a sparse
// map keyed by question index, so "unanswered" is an explicit absence rather
// than a sentinel value. Once completed the session is immutable until Reset.
type Session struct {
	state       SessionState
	quiz        *genquiz.Quiz
	current     int
	answers     map[int]int
	score       int
	completedAt time.Time
}

func NewSession() *Session {
	return &Session{
		state:   StateConfiguring,
		answers: make(map[int]int),
	}
}

func (s *Session) Start(quiz *genquiz.Quiz) error {
	if s.state != StateConfiguring {
		return ErrQuizInProgress
	}
	if quiz == nil || len(quiz.Questions) == 0 {
		return ErrNoQuiz
	}

	s.quiz = quiz
	s.current = 0
	s.answers = make(map[int]int)
	s.state = StateInProgress
	return nil
}

// SelectAnswer records the chosen option for a question. Selecting again on
// the same index overwrites the previous choice.
func (s *Session) SelectAnswer(index, choice int) error {
	switch s.state {
	case StateConfiguring:
		return ErrNoQuiz
	case StateCompleted:
		return ErrSessionCompleted
	}

	if index < 0 || index >= len(s.quiz.Questions) {
		return ErrInvalidQuestion
	}
	if choice < 0 || choice >= len(s.quiz.Questions[index].Options) {
		return ErrInvalidChoice
	}

	s.answers[index] = choice
	return nil
}

// Advance moves to the next question, or completes the session when called
// on the last one. The current question must have a recorded answer: the web
// client disables Next until an option is picked, and the state machine
// enforces the same rule as a hard precondition.
func (s *Session) Advance() error {
	switch s.state {
	case StateConfiguring:
		return ErrNoQuiz
	case StateCompleted:
		return ErrSessionCompleted
	}

	if _, ok := s.answers[s.current]; !ok {
		return ErrUnansweredQuestion
	}

	if s.current < len(s.quiz.Questions)-1 {
		s.current++
		return nil
	}

	s.score = ScoreQuiz(s.quiz, s.answers)
	s.completedAt = time.Now()
	s.state = StateCompleted
	return nil
}

// Reset discards the quiz and all recorded answers.
func (s *Session) Reset() {
	s.state = StateConfiguring
	s.quiz = nil
	s.current = 0
	s.answers = make(map[int]int)
	s.score = 0
	s.completedAt = time.Time{}
}

func (s *Session) State() SessionState { return s.state }

func (s *Session) Quiz() *genquiz.Quiz { return s.quiz }

func (s *Session) CurrentIndex() int { return s.current }

func (s *Session) CurrentQuestion() (*genquiz.Question, error) {
	if s.state != StateInProgress {
		return nil, ErrNoQuiz
	}
	return &s.quiz.Questions[s.current], nil
}

// Answer reports the recorded choice for a question index, if any.
func (s *Session) Answer(index int) (int, bool) {
	choice, ok := s.answers[index]
	return choice, ok
}

func (s *Session) Score() int { return s.score }

func (s *Session) CompletedAt() time.Time { return s.completedAt }

// ScoreQuiz computes the integer percentage of correctly answered questions,
// rounded half-up. Questions without a recorded answer never count as
// correct.
func ScoreQuiz(quiz *genquiz.Quiz, answers map[int]int) int {
	total := len(quiz.Questions)
	if total == 0 {
		return 0
	}

	correct := 0
	for i, q := range quiz.Questions {
		if choice, ok := answers[i]; ok && choice == q.CorrectAnswer {
			correct++
		}
	}

	return int(math.Round(100 * float64(correct) / float64(total)))
}

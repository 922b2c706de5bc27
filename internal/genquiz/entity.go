package genquiz

// QuizSettings are the user-chosen parameters that seed generation.
// Subject and difficulty are required; the prompt builder fills in
// defaults for the optional fields.
type QuizSettings struct {
	Subject       string `json:"subject"`
	Difficulty    string `json:"difficulty"`
	StudentLevel  string `json:"studentLevel,omitempty"`
	LearningStyle string `json:"learningStyle,omitempty"`
}

type Question struct {
	ID            int      `json:"id"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"` // 0-based index into Options
	Explanation   string   `json:"explanation"`
	Difficulty    string   `json:"difficulty"`
	Topic         string   `json:"topic"`
}

type Quiz struct {
	Title     string     `json:"title"`
	Questions []Question `json:"questions"`
}

const (
	QuestionsPerQuiz   = 5
	OptionsPerQuestion = 4
)

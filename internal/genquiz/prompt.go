package genquiz

import "fmt"

const systemPrompt = "You are an expert educational content creator. " +
	"Generate engaging, accurate quiz questions that promote learning. " +
	"Always return valid JSON only."

const userPromptTemplate = `Create an engaging and educational quiz for a student with these parameters:
- Subject: %s
- Difficulty: %s
- Student Level: %s
- Learning Style: %s

Generate a JSON quiz with exactly 5 questions. Each question should:
1. Be challenging but appropriate for the difficulty level
2. Include educational explanations for answers
3. Use engaging language to encourage learning
4. Be relevant to real-world applications when possible

Return ONLY valid JSON in this exact format:
{
  "title": "Quiz title",
  "questions": [
    {
      "id": 1,
      "question": "Question text",
      "options": ["Option A", "Option B", "Option C", "Option D"],
      "correctAnswer": 0,
      "explanation": "Detailed explanation of why this answer is correct and educational context",
      "difficulty": "%s",
      "topic": "Specific topic this question covers"
    }
  ]
}`

// BuildUserPrompt is a pure function of the settings. The embedded format
// block is the only defense against downstream parse failures, so it must
// spell out the full quiz shape.
func BuildUserPrompt(settings QuizSettings) string {
	level := settings.StudentLevel
	if level == "" {
		level = "intermediate"
	}
	style := settings.LearningStyle
	if style == "" {
		style = "visual"
	}

	return fmt.Sprintf(userPromptTemplate,
		settings.Subject, settings.Difficulty, level, style, settings.Difficulty)
}

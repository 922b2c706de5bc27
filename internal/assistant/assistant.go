package assistant

import "strings"

// The assistant is a static lookup, not a model call: an ordered list of
// keyword rules where the first match wins.
type rule struct {
	keywords []string
	reply    string
}

var rules = []rule{
	{
		keywords: []string{"study plan", "schedule"},
		reply: "I'd be happy to help you create a study plan! A good study schedule should include: " +
			"1) Regular study blocks (2-3 hours max), 2) Breaks every 45-60 minutes, " +
			"3) Review sessions for retention, 4) Time for different subjects. " +
			"What subjects are you focusing on?",
	},
	{
		keywords: []string{"math", "mathematics"},
		reply: "Mathematics can be challenging but rewarding! Try these strategies: " +
			"1) Practice problems daily, 2) Understand concepts before memorizing formulas, " +
			"3) Work through examples step-by-step, 4) Use visual aids for complex topics. " +
			"What specific math topic are you struggling with?",
	},
	{
		keywords: []string{"motivation", "focus"},
		reply: "Staying motivated is key to academic success! Try these tips: " +
			"1) Set small, achievable goals, 2) Reward yourself for completing tasks, " +
			"3) Study in a distraction-free environment, 4) Find a study buddy or group, " +
			"5) Remember your long-term goals. You've got this!",
	},
	{
		keywords: []string{"time management"},
		reply: "Effective time management is crucial for students! Here are proven techniques: " +
			"1) Use the Pomodoro Technique (25 min study, 5 min break), " +
			"2) Prioritize tasks using the Eisenhower Matrix, 3) Plan your week in advance, " +
			"4) Avoid multitasking, 5) Set realistic deadlines. " +
			"Would you like specific help with any of these?",
	},
	{
		keywords: []string{"exam", "test"},
		reply: "Preparing for exams can be stressful, but here's a proven approach: " +
			"1) Start studying 2-3 weeks early, 2) Create a study timeline, " +
			"3) Use active recall and spaced repetition, 4) Practice with past papers, " +
			"5) Get enough sleep before the exam. What subject is your exam in?",
	},
}

const fallbackReply = "That's a great question! I can help with general study strategies, " +
	"time management, and motivation tips, and you can generate a personalized quiz to test " +
	"yourself on any subject. What would you like to explore?"

// Reply returns the first matching canned response for a message.
func Reply(message string) string {
	lower := strings.ToLower(message)

	for _, rl := range rules {
		for _, kw := range rl.keywords {
			if strings.Contains(lower, kw) {
				return rl.reply
			}
		}
	}

	return fallbackReply
}

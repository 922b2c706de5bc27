package assistant_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/studyai-app/studyai-lambda/internal/assistant"
)

func TestReply(t *testing.T) {
	cases := []struct {
		name    string
		message string
		want    string
	}{
		{"StudyPlan", "Can you help me build a study plan?", "study schedule"},
		{"Schedule", "How do I organize my SCHEDULE?", "study schedule"},
		{"Math", "I'm stuck on a mathematics problem", "Practice problems daily"},
		{"Motivation", "I lost all motivation this week", "achievable goals"},
		{"TimeManagement", "any tips on time management?", "Pomodoro"},
		{"Exam", "my exam is next friday", "2-3 weeks early"},
		{"Fallback", "what's the weather like?", "study strategies"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := assistant.Reply(tc.message)
			if !strings.Contains(got, tc.want) {
				t.Errorf("Reply(%q) = %q, want it to mention %q", tc.message, got, tc.want)
			}
		})
	}
}

func TestReplyFirstMatchWins(t *testing.T) {
	// "study plan" precedes "exam" in the rule order.
	got := assistant.Reply("I need a study plan for my exam")
	if !strings.Contains(got, "study schedule") {
		t.Errorf("expected the study-plan rule to win, got %q", got)
	}
}

func TestChatHandler(t *testing.T) {
	h := assistant.NewHandler()

	t.Run("Success", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"message":"help me focus"}`))
		rec := httptest.NewRecorder()
		h.Chat(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "reply") {
			t.Errorf("missing reply field: %s", rec.Body.String())
		}
	})

	t.Run("EmptyMessage", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"message":""}`))
		rec := httptest.NewRecorder()
		h.Chat(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", rec.Code)
		}
	})
}

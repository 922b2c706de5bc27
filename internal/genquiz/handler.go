package genquiz

import (
	"encoding/json"
	"net/http"

	"github.com/studyai-app/studyai-lambda/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) GenerateQuiz(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var settings QuizSettings
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if settings.Subject == "" || !Difficulty(settings.Difficulty).IsValid() {
		http.Error(w, "subject and a valid difficulty are required", http.StatusBadRequest)
		return
	}

	quiz, err := h.service.GenerateQuiz(r.Context(), settings)
	if err != nil {
		// One generic message regardless of the internal error kind; the
		// root cause stays in the server-side log.
		log.WithError(err).Error("Failed to generate quiz")
		config.JSON(w, http.StatusInternalServerError, map[string]string{
			"error": "failed to generate quiz",
		})
		return
	}

	config.JSON(w, http.StatusOK, quiz)
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"notetaker/apperror"
	"notetaker/services"
)

type QuizHandler struct {
	quizService *services.QuizService
}

func NewQuizHandler(quizService *services.QuizService) *QuizHandler {
	return &QuizHandler{
		quizService: quizService,
	}
}

// GenerateQuiz accepts multipart form input with an optional "file" and an
// optional "text" field and returns the generated, persisted quiz record.
func (h *QuizHandler) GenerateQuiz(c *gin.Context) {
	input := services.GenerateQuizInput{
		Text: c.PostForm("text"),
	}

	if fileHeader, err := c.FormFile("file"); err == nil {
		file, err := fileHeader.Open()
		if err != nil {
			respondError(c, apperror.Internal("Failed to generate quiz", err))
			return
		}
		defer file.Close()

		input.File = file
		input.Filename = fileHeader.Filename
		input.ContentType = fileHeader.Header.Get("Content-Type")
	}

	quiz, err := h.quizService.GenerateQuiz(c.Request.Context(), &input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, quiz)
}

func (h *QuizHandler) GetQuizzes(c *gin.Context) {
	quizzes, err := h.quizService.ListQuizzes(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, quizzes)
}

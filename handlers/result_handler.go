package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"notetaker/services"
)

type ResultHandler struct {
	resultService *services.ResultService
}

func NewResultHandler(resultService *services.ResultService) *ResultHandler {
	return &ResultHandler{
		resultService: resultService,
	}
}

// SaveResult appends a submitted score record. The quiz id in the path is
// routing only; the persisted id comes from the body and is not checked
// against stored quizzes.
func (h *ResultHandler) SaveResult(c *gin.Context) {
	var req services.SaveResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.resultService.SaveResult(c.Request.Context(), &req); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Result saved"})
}

func (h *ResultHandler) GetResults(c *gin.Context) {
	results, err := h.resultService.ListResults(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, results)
}

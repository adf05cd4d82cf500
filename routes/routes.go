package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"notetaker/handlers"
)

func SetupRoutes(
	router *gin.Engine,
	authHandler *handlers.AuthHandler,
	quizHandler *handlers.QuizHandler,
	resultHandler *handlers.ResultHandler,
) {
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Welcome to Notetaker AI API"})
	})

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	auth := router.Group("/auth")
	{
		auth.POST("/login", authHandler.Login)
	}

	quizzes := router.Group("/quizzes")
	{
		quizzes.POST("/generate", quizHandler.GenerateQuiz)
		quizzes.GET("/", quizHandler.GetQuizzes)
	}

	results := router.Group("/results")
	{
		results.POST("/:quizId/results", resultHandler.SaveResult)
		results.GET("/", resultHandler.GetResults)
	}
}

package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"

	"notetaker/config"
	"notetaker/gcs"
	"notetaker/gemini"
	"notetaker/handlers"
	"notetaker/identity"
	"notetaker/middleware"
	"notetaker/routes"
	"notetaker/services"
	"notetaker/store"
)

func main() {
	ctx := context.Background()

	// Load configuration
	cfg := config.Load()

	// Initialize Firebase and its clients
	app, err := config.InitFirebase(ctx, cfg)
	if err != nil {
		log.Fatal("Failed to initialize Firebase:", err)
	}

	firestoreClient, err := config.InitFirestore(ctx, app)
	if err != nil {
		log.Fatal("Failed to connect to Firestore:", err)
	}
	defer firestoreClient.Close()

	authClient, err := config.InitAuth(ctx, app)
	if err != nil {
		log.Fatal("Failed to initialize Firebase Auth:", err)
	}

	storageClient, err := config.InitStorage(ctx)
	if err != nil {
		log.Fatal("Failed to initialize Cloud Storage:", err)
	}
	defer storageClient.Close()

	geminiClient, err := gemini.NewClient(ctx, cfg.ProjectID, cfg.Location, cfg.GeminiModel)
	if err != nil {
		log.Fatal("Failed to initialize Vertex AI:", err)
	}
	defer geminiClient.Close()

	// Initialize stores and external-service adapters
	users := store.NewUsers(firestoreClient)
	quizzes := store.NewQuizzes(firestoreClient)
	results := store.NewResults(firestoreClient)
	verifier := identity.NewVerifier(authClient)
	uploader := gcs.NewUploader(storageClient, cfg.StorageBucket)

	// Initialize services
	authService := services.NewAuthService(verifier, users)
	quizService := services.NewQuizService(quizzes, uploader, geminiClient)
	resultService := services.NewResultService(results)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	quizHandler := handlers.NewQuizHandler(quizService)
	resultHandler := handlers.NewResultHandler(resultService)

	// Setup Gin router
	router := gin.Default()

	// Add CORS middleware
	router.Use(middleware.CORS())

	// Setup routes
	routes.SetupRoutes(router, authHandler, quizHandler, resultHandler)

	// Start server
	addr := cfg.BindAddress + ":" + cfg.Port
	log.Printf("Server starting on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

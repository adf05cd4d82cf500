package config

import (
	"context"
	"os"

	"cloud.google.com/go/firestore"
	"cloud.google.com/go/storage"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
)

type Config struct {
	Port          string
	BindAddress   string
	ProjectID     string
	StorageBucket string
	Location      string
	GeminiModel   string
}

func Load() *Config {
	return &Config{
		Port:          getEnv("PORT", "8080"),
		BindAddress:   getEnv("BIND_ADDRESS", ""),
		ProjectID:     getEnv("GOOGLE_CLOUD_PROJECT", ""),
		StorageBucket: getEnv("GOOGLE_CLOUD_STORAGE_BUCKET", ""),
		Location:      getEnv("GOOGLE_CLOUD_LOCATION", "us-central1"),
		GeminiModel:   getEnv("GEMINI_MODEL", "gemini-1.5-flash-001"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// InitFirebase creates the Firebase app using application default credentials.
func InitFirebase(ctx context.Context, cfg *Config) (*firebase.App, error) {
	return firebase.NewApp(ctx, &firebase.Config{
		ProjectID:     cfg.ProjectID,
		StorageBucket: cfg.StorageBucket,
	})
}

func InitFirestore(ctx context.Context, app *firebase.App) (*firestore.Client, error) {
	return app.Firestore(ctx)
}

func InitAuth(ctx context.Context, app *firebase.App) (*auth.Client, error) {
	return app.Auth(ctx)
}

func InitStorage(ctx context.Context) (*storage.Client, error) {
	return storage.NewClient(ctx)
}

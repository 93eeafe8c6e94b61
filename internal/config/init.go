package config

import (
	"os"

	"github.com/joho/godotenv"
)

// requiredVars are the settings the app cannot start without.
var requiredVars = []string{"DB_DSN", "REDIS_ADDR", "JWT_SECRET", "APP_PORT"}

func Init() {
	if err := godotenv.Load(); err != nil {
		Logger.Info("No .env file found, using system environment variables")
	}

	for _, name := range missingRequired() {
		Logger.Fatal(name + " is not set")
	}
}

// missingRequired reports which required settings are absent from the environment.
func missingRequired() []string {
	var missing []string
	for _, name := range requiredVars {
		if os.Getenv(name) == "" {
			missing = append(missing, name)
		}
	}
	return missing
}

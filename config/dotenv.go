package config

import (
	"os"

	"github.com/joho/godotenv"
)

// LoadDotEnvs loads .env files following the dotenv convention. Files loaded
// first win, since godotenv never overrides a variable that is already set.
func LoadDotEnvs() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}

	// .env.[env].local has highest priority and usually holds credentials
	godotenv.Load(".env." + env + ".local")
	godotenv.Load(".env.local")
	godotenv.Load(".env." + env)
	godotenv.Load(".env")
}

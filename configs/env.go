package configs

import (
	"os"

	"github.com/joho/godotenv"

	"webmart-io/store/pkg/util"
)

// LoadEnvFor reads a single variable, loading .env first when present.
func LoadEnvFor(v string) (x string) {
	err := godotenv.Load()
	if err != nil {
		util.LogWarning("No .env file found, using environment variables")
	}

	x = os.Getenv(v)
	return
}

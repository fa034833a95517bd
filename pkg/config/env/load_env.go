// Package env overlays dotenv files onto the process environment before
// configuration is read.
package env

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

// LoadDotEnv loads variables from a dotenv file. ENV_PATH overrides the
// default file location when set. A missing file is fatal only in local
// development; deployed environments configure through real environment
// variables and skip the file silently.
func LoadDotEnv(environment, defaultPath string) error {
	path := os.Getenv("ENV_PATH")
	if path == "" {
		path = defaultPath
	}

	if err := godotenv.Load(path); err != nil {
		if isLocal(environment) {
			return fmt.Errorf("load dotenv %s: %w", path, err)
		}
		slog.Debug("No dotenv file, relying on process environment",
			"path", path, "env", environment)
	}
	return nil
}

// isLocal treats an unset environment as local so a developer running the
// binary bare still gets a loud failure on a missing .env.
func isLocal(environment string) bool {
	return environment == "" || environment == "local"
}

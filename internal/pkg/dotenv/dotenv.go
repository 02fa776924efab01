package dotenv

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// ErrNoEnvFile возвращается, когда .env отсутствует: переменные берутся из окружения.
var ErrNoEnvFile = errors.New(".env file not found")

// Load читает .env (если он есть) и флаги командной строки.
// --port перекрывает PORT, --log-level перекрывает LOG_LEVEL.
func Load(filenames ...string) error {
	if len(filenames) == 0 {
		filenames = []string{".env"}
	}

	var envErr error
	if err := godotenv.Load(filenames...); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load env file: %w", err)
		}
		envErr = ErrNoEnvFile
	}

	// Флаги регистрируются один раз, значения читаются из набора после каждого Parse.
	if pflag.Lookup("port") == nil {
		pflag.StringP("port", "p", "", "Server port (overrides PORT environment variable)")
	}
	if pflag.Lookup("log-level") == nil {
		pflag.String("log-level", "", "Log level (overrides LOG_LEVEL environment variable)")
	}
	if err := pflag.CommandLine.Parse(os.Args[1:]); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}

	overrides := map[string]string{
		"PORT":      "port",
		"LOG_LEVEL": "log-level",
	}
	for key, flagName := range overrides {
		value, err := pflag.CommandLine.GetString(flagName)
		if err != nil {
			return fmt.Errorf("read flag %s: %w", flagName, err)
		}
		if value == "" {
			continue
		}
		if err := os.Setenv(key, value); err != nil {
			return fmt.Errorf("failed to set %s environment variable: %w", key, err)
		}
	}
	return envErr
}

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/disciplemakers/VIS-to-FA/cmd/check"
	"github.com/disciplemakers/VIS-to-FA/cmd/convert"
	"github.com/disciplemakers/VIS-to-FA/cmd/root"
)

func init() {
	// Environment first, then log level, so nothing logs at the wrong level
	// during startup.
	loadEnvSilently()
	configureLogLevel()

	root.Init()
	root.Cmd.AddCommand(convert.Cmd)
	root.Cmd.AddCommand(check.Cmd)
}

// loadEnvSilently loads a .env file without logging anything yet.
func loadEnvSilently() {
	envFile := ".env"
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		envFile = filepath.Join("..", ".env")
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			return
		}
	}
	_ = godotenv.Load(envFile)
}

// configureLogLevel sets the global logrus level before any logger exists.
func configureLogLevel() {
	levelStr := os.Getenv("LOG_LEVEL")
	if levelStr == "" {
		levelStr = "info"
	}
	level, err := logrus.ParseLevel(strings.ToLower(levelStr))
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

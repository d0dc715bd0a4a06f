package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/handiism/rtk-site/internal/catalog"
	"github.com/handiism/rtk-site/internal/config"
	rtkhttp "github.com/handiism/rtk-site/internal/http"
	"github.com/handiism/rtk-site/internal/page"
	"github.com/handiism/rtk-site/internal/tui"
	"github.com/sirupsen/logrus"
)

func main() {
	var (
		configFlag = flag.String("config", "", "Path to config file (.json or .toml)")
		envFlag    = flag.String("env", ".env", "Path to .env file with RTK_* overrides")
	)
	flag.Parse()

	if err := run(*configFlag, *envFlag); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, envPath string) error {
	if err := config.LoadEnv(envPath); err != nil {
		return err
	}

	settings := config.DefaultSettings()
	if configPath != "" {
		var err error
		if settings, err = config.Load(configPath); err != nil {
			return err
		}
	}
	if err := settings.ApplyEnv(); err != nil {
		return err
	}

	prefs, err := config.OpenPreferences(settings.PreferencesPath)
	if err != nil {
		return fmt.Errorf("open preferences: %w", err)
	}

	// The alt screen owns stdout; logs go to the configured file or nowhere.
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	closeLog, err := settings.ConfigureLogger(logger)
	if err != nil {
		return err
	}
	defer closeLog()

	client := rtkhttp.NewClientWithTimeout(settings.Timeout())
	var videos *catalog.VideoSource
	if settings.VideoURL != "" {
		videos = catalog.NewVideoSource(client, settings.VideoURL, logger)
	}
	loader := page.NewLoader(catalog.NewRepository(client, settings.DiscographyURL, logger), videos, logger)

	return tui.Run(tui.Options{
		Settings:    settings,
		Preferences: prefs,
		Loader:      loader,
		Log:         logger,
	})
}

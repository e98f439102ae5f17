package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/pankaj139/portfolio/internal/config"
	"github.com/pankaj139/portfolio/internal/logging"
	"github.com/pankaj139/portfolio/internal/profile"
	"github.com/pankaj139/portfolio/internal/site"
)

// env is what every subcommand needs: validated config, the logger and the
// site built from the selected profile.
type env struct {
	cfg    *config.Config
	logger *slog.Logger
	site   *site.Site
}

func setup(logOut io.Writer, profilePath string) (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if profilePath != "" {
		cfg.ProfilePath = profilePath
	}

	logger := logging.Setup(logOut, cfg.LogFormat, cfg.Level())

	p, err := profile.Load(cfg.ProfilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	s, err := site.New(p, site.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	return &env{cfg: cfg, logger: logger, site: s}, nil
}

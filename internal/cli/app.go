package cli

import (
	"io"
	"log/slog"

	"github.com/tengjizhang/demarcate/internal/config"
	"github.com/tengjizhang/demarcate/internal/document"
	"github.com/tengjizhang/demarcate/internal/logging"
	"github.com/tengjizhang/demarcate/internal/markup"
	"github.com/tengjizhang/demarcate/internal/render"
)

type App struct {
	cfg      config.Config
	logger   *slog.Logger
	loader   *document.Loader
	renderer *render.Renderer
}

func NewApp(cfg config.Config, stdin io.Reader, stderr io.Writer) (*App, error) {
	logger, err := logging.New(stderr, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, err
	}
	renderer := render.NewRenderer(
		markup.WithLogger(logger),
		markup.OnComplete(func(md string) {
			logger.Debug("conversion complete", "bytes", len(md))
		}),
	)
	return &App{
		cfg:      cfg,
		logger:   logger,
		loader:   document.NewLoader(cfg, stdin),
		renderer: renderer,
	}, nil
}

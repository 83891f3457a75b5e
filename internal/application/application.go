package application

import (
	"bufio"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/eugenenazirov/minigrep/internal/config"
	"github.com/eugenenazirov/minigrep/internal/content"
	"github.com/eugenenazirov/minigrep/internal/search"
)

// App encapsulates the dependencies of a single search run.
type App struct {
	loader   content.Loader
	searcher func(caseSensitive bool) search.Searcher
	out      io.Writer
	logger   *zap.Logger
}

// Option configures App behaviour.
type Option func(*App)

// WithLoader overrides the content source, primarily for tests.
func WithLoader(loader content.Loader) Option {
	return func(a *App) {
		a.loader = loader
	}
}

// New initializes the application. Matching lines are written to out.
func New(out io.Writer, logger *zap.Logger, opts ...Option) *App {
	if logger == nil {
		logger = zap.NewNop()
	}
	a := &App{
		loader:   content.NewFileLoader(),
		searcher: search.New,
		out:      out,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Run loads the file named by cfg and writes every matching line to the
// output, one per line, in file order. Nothing is written if loading fails.
func (a *App) Run(cfg config.Config) error {
	text, err := a.loader.Load(cfg.Filename)
	if err != nil {
		return fmt.Errorf("load %s: %w", cfg.Filename, err)
	}
	a.logger.Debug("content loaded",
		zap.String("filename", cfg.Filename),
		zap.Int("bytes", len(text)),
	)

	matches := a.searcher(cfg.CaseSensitive).Search(cfg.Query, text)
	a.logger.Debug("search finished",
		zap.String("query", cfg.Query),
		zap.Bool("case_sensitive", cfg.CaseSensitive),
		zap.Int("matches", len(matches)),
	)

	w := bufio.NewWriter(a.out)
	for _, line := range matches {
		if _, err := w.WriteString(line); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		if err := w.WriteByte('\n'); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	return nil
}

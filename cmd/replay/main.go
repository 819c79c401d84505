package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/edgedraw/edgedraw/internal/config"
	"github.com/edgedraw/edgedraw/internal/engine"
	"github.com/edgedraw/edgedraw/internal/replay"
)

func main() {
	script := flag.String("script", "", "event script, one JSON object per line (default stdin)")
	sample := flag.Bool("sample", false, "start from the sample drawing")
	view := flag.Bool("view", false, "print the compiled view instead of the document")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}
	runID := uuid.New().String()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()})).
		With("run", runID)
	slog.SetDefault(logger)

	eng, err := engine.New(cfg, logger)
	if err != nil {
		slog.Error("create engine", "error", err)
		os.Exit(1)
	}
	if *sample {
		eng.LoadSampleDocument()
	}

	if err := replayScript(eng, *script, logger); err != nil {
		slog.Error("replay failed", "error", err)
		os.Exit(1)
	}

	if *view {
		fmt.Println(eng.Render())
	} else {
		fmt.Println(eng.GetDocument())
	}
}

func replayScript(eng *engine.Engine, path string, logger *slog.Logger) error {
	var in io.Reader = os.Stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("open script: %w", err)
		}
		defer f.Close()
		in = f
	}

	n, err := replay.Run(eng, in, logger)
	if err != nil {
		return fmt.Errorf("after %d events: %w", n, err)
	}
	logger.Info("replay complete", "events", n, "mode", eng.GetMode())
	return nil
}

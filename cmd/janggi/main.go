// Command janggi replays move scripts against the Janggi rules and reports
// which moves were accepted and how each game stands.
//
// Usage:
//
//	janggi [flags] [script ...]
//
// With no script arguments a single script is read from stdin.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"janggi/internal/config"
	"janggi/internal/logging"
	"janggi/internal/script"
	"janggi/internal/session"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("janggi", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "path to a JSON config file")
	logLevel := fs.String("log-level", "", "log level: debug, info, warn, error")
	encoding := fs.String("encoding", "", "script encoding: utf-8, euc-kr, auto")
	showBoard := fs.Bool("board", true, "print the final board of each game")
	parallel := fs.Int("parallel", 0, "max scripts replayed at once")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			fmt.Fprintf(stderr, "config: %v\n", err)
			return 1
		}
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "log-level":
			cfg.LogLevel = *logLevel
		case "encoding":
			cfg.Encoding = *encoding
		case "board":
			cfg.ShowBoard = *showBoard
		case "parallel":
			cfg.Parallel = *parallel
		}
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "config: %v\n", err)
		return 1
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(stderr, "logger: %v\n", err)
		return 1
	}
	defer func() { _ = logger.Sync() }()

	scripts, err := loadScripts(fs.Args(), stdin, cfg.ScriptEncoding())
	if err != nil {
		logger.Error("load scripts", zap.Error(err))
		return 1
	}
	for _, s := range scripts {
		logger.Info("script loaded", zap.String("script", s.Name), zap.Int("steps", len(s.Steps)))
	}

	m := session.NewManager(logger)
	outs := make([]bytes.Buffer, len(scripts))

	var g errgroup.Group
	g.SetLimit(cfg.Parallel)
	for i, s := range scripts {
		i, s := i, s
		g.Go(func() error {
			return replay(m, s, &outs[i], cfg.ShowBoard)
		})
	}
	err = g.Wait()

	for i := range outs {
		if _, werr := outs[i].WriteTo(stdout); werr != nil {
			logger.Error("write output", zap.Error(werr))
			return 1
		}
	}
	if err != nil {
		logger.Error("replay", zap.Error(err))
		return 1
	}
	logger.Debug("done", zap.Int("scripts", len(scripts)))
	return 0
}

func loadScripts(paths []string, stdin io.Reader, enc script.Encoding) ([]*script.Script, error) {
	if len(paths) == 0 {
		s, err := script.Parse(stdin, enc)
		if err != nil {
			return nil, fmt.Errorf("stdin: %w", err)
		}
		s.Name = "stdin"
		return []*script.Script{s}, nil
	}

	var out []*script.Script
	for _, path := range paths {
		s, err := parseFile(path, enc)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func parseFile(path string, enc script.Encoding) (*script.Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	s, err := script.Parse(f, enc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	s.Name = filepath.Base(path)
	return s, nil
}

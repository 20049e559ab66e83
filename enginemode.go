package main

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"os/signal"

	"abalone-local/engine/aep"
	"abalone-local/engine/random"
	"abalone-local/settings"
	"abalone-local/trace"
)

const initFileName = "abalone.ini"

var initFile *settings.InitFile

// loadInitFile reads abalone.ini if there is one and applies its [trace]
// section.
func loadInitFile() error {
	path, err := settings.FindInitFile(initFileName)
	if errors.Is(err, settings.ErrNoInitFile) {
		initFile = &settings.InitFile{}
		return nil
	}
	if err != nil {
		return err
	}
	initFile, err = settings.Load(path)
	if err != nil {
		return err
	}
	return trace.Sync(initFile)
}

// runEngine serves the built-in engine over AEP until quit, end of input or
// an interrupt.
func runEngine(r io.Reader, w io.Writer) error {
	var options []random.Option
	if s, ok := initFile.Get("engine"); ok {
		name, hasName := s.Get("name")
		author, _ := s.Get("author")
		if hasName {
			options = append(options, random.WithID(name, author))
		}
		if seed := s.Int("seed", 0); seed != 0 {
			options = append(options, random.WithSeed(uint64(seed)))
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return aep.NewServer(random.New(options...)).Play(ctx, r, w)
}

// checkEngine verifies that an engine executable is accessible.
func checkEngine(path string) error {
	_, err := exec.LookPath(path)
	return err
}

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/Wyydra/board/internal/core/domain"
	"github.com/gookit/color"
)

const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

var errConfig = errors.New("configuration error")

func main() {
	code, err := run()
	var reported reportedError
	if err != nil && !errors.As(err, &reported) {
		fmt.Fprintln(os.Stderr, color.Red.Sprint(err.Error()))
	}
	os.Exit(code)
}

func run() (int, error) {
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, errConfig) || errors.Is(err, domain.ErrNotConfigured) {
			return exitConfig, err
		}
		return exitRuntime, err
	}
	return exitOK, nil
}

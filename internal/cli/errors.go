package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/tengjizhang/demarcate/internal/document"
	"github.com/tengjizhang/demarcate/internal/markup"
	"github.com/tengjizhang/demarcate/internal/render"
)

const (
	exitInvalidInput = 2
	exitNotFound     = 3
	exitInternal     = 1
)

func isInvalidInput(err error) bool {
	if errors.Is(err, document.ErrInvalidInput) || errors.Is(err, markup.ErrInvalidArgument) || errors.Is(err, render.ErrUnknownEngine) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "invalid index") || strings.Contains(msg, "invalid output format") || strings.Contains(msg, "invalid log")
}

func ErrorExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, document.ErrNotFound):
		return exitNotFound
	case isInvalidInput(err):
		return exitInvalidInput
	default:
		return exitInternal
	}
}

func FormatError(err error) string {
	if err == nil {
		return ""
	}
	switch {
	case errors.Is(err, document.ErrNotFound):
		return fmt.Sprintf("Error [not-found]: %v", err)
	case isInvalidInput(err):
		return fmt.Sprintf("Error [invalid-input]: %v", err)
	default:
		return fmt.Sprintf("Error [internal]: %v", err)
	}
}

func PrintError(err error) {
	if err == nil {
		return
	}
	fmt.Fprintln(os.Stderr, FormatError(err))
}

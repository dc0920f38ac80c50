package handler

import (
	"fmt"

	"retailpos/internal/apperr"

	"github.com/urfave/cli/v2"
)

// Exit codes per error kind.
const (
	exitFailure           = 1
	exitValidation        = 2
	exitNotFound          = 3
	exitInsufficientStock = 4
	exitEmptyCart         = 5
	exitPersistence       = 6
)

// ExitCode maps an error to the process exit status.
func ExitCode(err error) int {
	switch apperr.GetKind(err) {
	case apperr.KindValidation:
		return exitValidation
	case apperr.KindNotFound:
		return exitNotFound
	case apperr.KindInsufficientStock:
		return exitInsufficientStock
	case apperr.KindEmptyCart:
		return exitEmptyCart
	case apperr.KindPersistence:
		return exitPersistence
	default:
		return exitFailure
	}
}

// describeError is the one-line message shown to the operator.
func describeError(err error) string {
	kind := apperr.GetKind(err)
	if kind == apperr.KindUnknown {
		return fmt.Sprintf("error: %v", err)
	}
	return fmt.Sprintf("%s: %v", kind, err)
}

// writeError turns err into a cli exit error carrying its kind.
func writeError(err error) error {
	if err == nil {
		return nil
	}
	return cli.Exit(describeError(err), ExitCode(err))
}

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/AtRiskMedia/sitegen-go/internal/domain/entities/builder"
	"github.com/AtRiskMedia/sitegen-go/internal/infrastructure/projectfile"
	"github.com/AtRiskMedia/sitegen-go/internal/presentation/templates"
)

// Exit codes
const (
	ExitSuccess         = 0
	ExitGeneralError    = 1
	ExitValidationError = 2
)

func main() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps invalid input to ExitValidationError and everything else to ExitGeneralError
func exitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var cycleErr *templates.CycleError
	switch {
	case errors.As(err, &cycleErr),
		errors.Is(err, builder.ErrNilProject),
		errors.Is(err, builder.ErrInvalidPagePath),
		errors.Is(err, builder.ErrDuplicatePagePath),
		errors.Is(err, projectfile.ErrTooLarge):
		return ExitValidationError
	}
	return ExitGeneralError
}

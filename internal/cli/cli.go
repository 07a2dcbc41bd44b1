package cli

import (
	"io"
	"log/slog"

	"github.com/vk/microvm/internal/app"
	"github.com/vk/microvm/internal/args"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

const banner = "microvm - launch and manage a single microVM instance"

// Parse processes command-line arguments against the launcher's argument
// catalog. It returns a populated app.Config, a boolean indicating that the
// program should exit cleanly (help mode), or an ExitError for invalid
// invocations.
func Parse(argv []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	catalog := newCatalog()
	inv := args.Tokenize(argv)

	// Help short-circuits everything: no validation is performed and no
	// values are resolved, regardless of what else was supplied.
	if inv.Has(helpFlag) {
		catalog.RenderHelp(output, banner)
		return nil, true, nil
	}

	values, err := args.Validate(catalog, inv)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Invocation validated.", "resolved", values.Len(), "extra_args", len(values.Extra()))

	config, err := app.NewConfig(values)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.")
	return config, false, nil
}

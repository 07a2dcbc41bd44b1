package cli

import "github.com/vk/microvm/internal/args"

const (
	// DefaultAPISockPath is resolved for api-sock when the flag is omitted.
	DefaultAPISockPath = "/tmp/microvm.socket"
	// DefaultInstanceID is resolved for id when the flag is omitted.
	DefaultInstanceID = "anonymous-instance"
	// DefaultSeccompLevel is resolved for seccomp-level when the flag is
	// omitted.
	DefaultSeccompLevel = "2"

	helpFlag = "help"
)

// newCatalog builds the argument registry for the launcher executable. The
// catalog is fixed and enumerated here in full; it is the complete CLI
// surface of the program.
func newCatalog() *args.Registry {
	reg, err := args.NewRegistry(
		&args.Spec{
			Name:       "api-sock",
			Required:   true,
			TakesValue: true,
			Default:    DefaultAPISockPath,
			Help:       "Path to the unix domain socket used by the API.",
		},
		&args.Spec{
			Name:       "id",
			Required:   true,
			TakesValue: true,
			Default:    DefaultInstanceID,
			Help:       "MicroVM unique identifier.",
		},
		&args.Spec{
			Name:          "seccomp-level",
			Required:      true,
			TakesValue:    true,
			Default:       DefaultSeccompLevel,
			AllowedValues: []string{"0", "1", "2"},
			Help: "Level of seccomp filtering. " +
				"Level 0: no filtering. " +
				"Level 1: filtering by syscall number. " +
				"Level 2: filtering by syscall number and argument values.",
		},
		&args.Spec{
			Name:       "start-time-us",
			TakesValue: true,
			Help:       "Process start time, in microseconds.",
		},
		&args.Spec{
			Name:       "start-time-cpu-us",
			TakesValue: true,
			Help:       "Process start CPU time, in microseconds.",
		},
		&args.Spec{
			Name:     "no-api",
			Requires: "config-file",
			Help:     "Optional parameter which allows starting and using a microVM without an active API socket.",
		},
		&args.Spec{
			Name:       "config-file",
			TakesValue: true,
			Help:       "Path to a file that contains the microVM configuration in JSON format.",
		},
		&args.Spec{
			Name:     "extra-args",
			Trailing: true,
			Help:     "Arguments after a bare -- separator, passed verbatim to the microVM process.",
		},
		&args.Spec{
			Name: helpFlag,
			Help: "Print this help text and exit.",
		},
	)
	if err != nil {
		// The catalog is compiled in; a broken one is unrecoverable.
		panic(err)
	}
	return reg
}

package app

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/microvm/internal/args"
)

// resolve runs a minimal registry over argv to produce Values the way the
// real pipeline does.
func resolve(t *testing.T, argv ...string) *args.Values {
	t.Helper()
	reg, err := args.NewRegistry(
		&args.Spec{Name: "api-sock", Required: true, TakesValue: true, Default: "/tmp/test.sock"},
		&args.Spec{Name: "id", Required: true, TakesValue: true, Default: "test-instance"},
		&args.Spec{Name: "seccomp-level", Required: true, TakesValue: true, Default: "2"},
		&args.Spec{Name: "start-time-us", TakesValue: true},
		&args.Spec{Name: "start-time-cpu-us", TakesValue: true},
		&args.Spec{Name: "no-api", Requires: "config-file"},
		&args.Spec{Name: "config-file", TakesValue: true},
	)
	require.NoError(t, err)
	vals, err := args.Validate(reg, args.Tokenize(argv))
	require.NoError(t, err)
	return vals
}

func TestNewConfig_FromDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := NewConfig(resolve(t))

	require.NoError(t, err)
	require.Equal(t, "/tmp/test.sock", cfg.APISockPath)
	require.Equal(t, "test-instance", cfg.InstanceID)
	require.Equal(t, 2, cfg.SeccompLevel)
	require.Nil(t, cfg.StartTimeUs)
	require.False(t, cfg.NoAPI)
	require.Empty(t, cfg.ConfigFilePath)
}

func TestNewConfig_ConvertsOptionalStartTimes(t *testing.T) {
	t.Parallel()

	cfg, err := NewConfig(resolve(t, "--start-time-us", "1500"))

	require.NoError(t, err)
	require.NotNil(t, cfg.StartTimeUs)
	require.EqualValues(t, 1500, *cfg.StartTimeUs)
	require.Nil(t, cfg.StartTimeCPUUs)
}

func TestNewConfig_RejectsNonNumericStartTime(t *testing.T) {
	t.Parallel()

	_, err := NewConfig(resolve(t, "--start-time-us", "soon"))

	require.Error(t, err)
	require.Contains(t, err.Error(), "expected a non-negative integer")
}

func TestNewConfig_RejectsNegativeStartTime(t *testing.T) {
	t.Parallel()

	_, err := NewConfig(resolve(t, "--start-time-cpu-us", "-5"))

	require.Error(t, err)
	require.Contains(t, err.Error(), "'start-time-cpu-us'")
}

func TestNewConfig_PanicsOnBrokenConsumerContract(t *testing.T) {
	t.Parallel()

	// A registry without the guaranteed arguments produces Values that
	// violate the consumer contract; that is a bug, not user input.
	reg, err := args.NewRegistry(&args.Spec{Name: "config-file", TakesValue: true})
	require.NoError(t, err)
	vals, err := args.Validate(reg, args.Tokenize(nil))
	require.NoError(t, err)

	require.Panics(t, func() {
		_, _ = NewConfig(vals)
	})
}

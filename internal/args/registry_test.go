package args

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewRegistry_ValidCatalog(t *testing.T) {
	t.Parallel()

	reg, err := NewRegistry(
		&Spec{Name: "socket", TakesValue: true, Default: "/tmp/a.sock"},
		&Spec{Name: "detach", Requires: "socket"},
		&Spec{Name: "foreground", ConflictsWith: "detach"},
		&Spec{Name: "passthrough", Trailing: true},
	)

	require.NoError(t, err)
	require.Len(t, reg.Specs(), 4)

	s, ok := reg.Lookup("detach")
	require.True(t, ok)
	require.Equal(t, "socket", s.Requires)
}

func TestNewRegistry_RejectsDanglingReferences(t *testing.T) {
	t.Parallel()

	_, err := NewRegistry(
		&Spec{Name: "a", Requires: "ghost"},
		&Spec{Name: "b", ConflictsWith: "phantom"},
	)

	require.Error(t, err)
	require.Contains(t, err.Error(), `argument "a" requires unregistered argument "ghost"`)
	require.Contains(t, err.Error(), `argument "b" conflicts with unregistered argument "phantom"`)
}

func TestNewRegistry_RejectsDuplicateNames(t *testing.T) {
	t.Parallel()

	_, err := NewRegistry(
		&Spec{Name: "twice"},
		&Spec{Name: "twice"},
	)

	require.Error(t, err)
	require.Contains(t, err.Error(), `argument "twice" is registered twice`)
}

func TestNewRegistry_RejectsDefaultOnFlagOnlyArgument(t *testing.T) {
	t.Parallel()

	_, err := NewRegistry(&Spec{Name: "quiet", Default: "yes"})

	require.Error(t, err)
	require.Contains(t, err.Error(), "takes no value")
}

func TestNewRegistry_RejectsMultipleTrailingSpecs(t *testing.T) {
	t.Parallel()

	_, err := NewRegistry(
		&Spec{Name: "rest", Trailing: true},
		&Spec{Name: "more", Trailing: true},
	)

	require.Error(t, err)
	require.Contains(t, err.Error(), "more than one argument is marked as trailing")
}

func TestLookup_TrailingSpecIsNotAddressable(t *testing.T) {
	t.Parallel()

	reg, err := NewRegistry(&Spec{Name: "passthrough", Trailing: true})
	require.NoError(t, err)

	_, ok := reg.Lookup("passthrough")
	require.False(t, ok, "a trailing spec must not be addressable as a flag")
}

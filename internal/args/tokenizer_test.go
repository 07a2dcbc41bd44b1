package args

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestTokenize_ExtractsFlagNames(t *testing.T) {
	t.Parallel()

	inv := Tokenize([]string{"--api-sock", "/tmp/x.sock", "--no-api", "bare"})

	require.True(t, inv.Has("api-sock"))
	require.True(t, inv.Has("no-api"))
	require.False(t, inv.Has("bare"))
	require.Nil(t, inv.Extra())
}

func TestTokenize_SplitsAtFirstSeparator(t *testing.T) {
	t.Parallel()

	inv := Tokenize([]string{"--id", "vm0", "--", "extra1", "extra2"})

	require.True(t, inv.Has("id"))
	if diff := cmp.Diff([]string{"extra1", "extra2"}, inv.Extra()); diff != "" {
		t.Fatalf("trailing segment mismatch (-want +got):\n%s", diff)
	}
}

func TestTokenize_SeparatorMidSequenceEndsValidatedRegion(t *testing.T) {
	t.Parallel()

	// Everything after the first separator is verbatim, including tokens
	// that look like flags and further separators.
	inv := Tokenize([]string{"--", "--id", "vm0", "--", "tail"})

	require.False(t, inv.Has("id"))
	if diff := cmp.Diff([]string{"--id", "vm0", "--", "tail"}, inv.Extra()); diff != "" {
		t.Fatalf("trailing segment mismatch (-want +got):\n%s", diff)
	}
}

func TestTokenize_SeparatorAloneYieldsEmptySegment(t *testing.T) {
	t.Parallel()

	inv := Tokenize([]string{"--"})

	require.NotNil(t, inv.Extra())
	require.Empty(t, inv.Extra())
}

func TestTokenize_EmptyInvocation(t *testing.T) {
	t.Parallel()

	inv := Tokenize(nil)

	require.False(t, inv.Has("api-sock"))
	require.Nil(t, inv.Extra())
}

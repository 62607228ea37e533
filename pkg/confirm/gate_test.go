package confirm

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/costaindustries-source/mac-cleaner/pkg/errors"
	"github.com/costaindustries-source/mac-cleaner/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var highRiskDesc = types.OperationDescriptor{
	ID:          "spotlight-rebuild",
	Description: "Erase and rebuild the Spotlight index",
	Risk:        types.RiskHigh,
	Category:    "indexes",
}

func TestAutoGate(t *testing.T) {
	gate := NewAutoGate()

	ok, err := gate.Confirm(highRiskDesc)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = gate.Ask("proceed with en0 reset")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestConsoleGateAnswers(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"empty input defaults to yes", "\n", true},
		{"explicit yes", "y\n", true},
		{"spelled out yes", "yes\n", true},
		{"uppercase yes", "Y\n", true},
		{"no declines", "n\n", false},
		{"anything else declines", "maybe\n", false},
		{"eof without newline still reads", "y", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			gate := NewConsoleGate(strings.NewReader(tt.input), &out)

			got, err := gate.Confirm(highRiskDesc)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConsoleGateRiskWording(t *testing.T) {
	var out bytes.Buffer
	gate := NewConsoleGate(strings.NewReader("n\n"), &out)

	_, err := gate.Confirm(highRiskDesc)
	require.NoError(t, err)

	rendered := out.String()
	assert.Contains(t, rendered, "spotlight-rebuild")
	assert.Contains(t, rendered, "Destructive action")
}

func TestPolicyGate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "policy.yaml")
	policy := `default: deny
operations:
  user-caches: allow
  spotlight-rebuild: deny
`
	require.NoError(t, os.WriteFile(path, []byte(policy), 0o644))

	gate, err := LoadPolicyGate(path)
	require.NoError(t, err)

	ok, err := gate.Confirm(types.OperationDescriptor{ID: "user-caches"})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = gate.Confirm(highRiskDesc)
	require.NoError(t, err)
	assert.False(t, ok)

	// absent from the policy falls back to the default
	ok, err = gate.Confirm(types.OperationDescriptor{ID: "trash"})
	require.NoError(t, err)
	assert.False(t, ok)

	// nested questions use the default decision too
	ok, err = gate.Ask("delete anyway")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLoadPolicyGateErrors(t *testing.T) {
	_, err := LoadPolicyGate(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("default: sometimes\n"), 0o644))
	_, err = LoadPolicyGate(bad)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigInvalid))
}

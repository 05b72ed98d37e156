package cli_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/th3oth3rjak3/Sigil/internal/cli"
)

func TestCheckRequiredVersionEmptyConstraintPasses(t *testing.T) {
	assert.NoError(t, cli.CheckRequiredVersion(""))
}

func TestCheckRequiredVersionSatisfied(t *testing.T) {
	assert.NoError(t, cli.CheckRequiredVersion(">=0.1.0"))
}

func TestCheckRequiredVersionUnsatisfied(t *testing.T) {
	err := cli.CheckRequiredVersion(">=9.9.9")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not satisfy")
}

func TestCheckRequiredVersionInvalidConstraint(t *testing.T) {
	err := cli.CheckRequiredVersion("not-a-constraint!!!")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --require-version")
}

func TestVersionInfoString(t *testing.T) {
	s := cli.GetVersionInfo().String()

	assert.Contains(t, s, "sigil v"+cli.Version)
}

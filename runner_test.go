//go:build !windows

package main

import (
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunUtilityPipesStdin(t *testing.T) {
	if _, err := exec.LookPath("cat"); err != nil {
		t.Skip("cat not available")
	}
	out, err := runUtility("cat", nil, "select disk 1\n")
	require.NoError(t, err)
	assert.Equal(t, "select disk 1\n", out)
}

func TestRunUtilityReportsExitStatus(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
	out, err := runUtility("sh", []string{"-c", "echo boom >&2; exit 3"}, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 3")
	assert.Contains(t, out, "boom")
}

func TestRunUtilityMissingBinary(t *testing.T) {
	_, err := runUtility("no-such-partitioning-utility", nil, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no-such-partitioning-utility")
}

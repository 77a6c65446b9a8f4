package toolchain

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trebuchet-org/clarity-cli/internal/domain/config"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestChecker_ReportsFirstLine(t *testing.T) {
	if _, err := os.Stat("/bin/sh"); err != nil {
		t.Skip("/bin/sh not available")
	}

	clarinet := filepath.Join(t.TempDir(), "clarinet")
	script := "#!/bin/sh\necho 'clarinet-cli 2.11.0'\necho 'second line'\n"
	require.NoError(t, os.WriteFile(clarinet, []byte(script), 0755))

	checker := NewCheckerAdapter(&config.RuntimeConfig{ClarinetPath: clarinet}, discard())
	version, err := checker.Check(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "clarinet-cli 2.11.0", version)
}

func TestChecker_MissingBinary(t *testing.T) {
	checker := NewCheckerAdapter(&config.RuntimeConfig{ClarinetPath: "/nonexistent/clarinet"}, discard())
	_, err := checker.Check(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "clarinet is not installed or not in PATH")
}

func TestChecker_DefaultsToClarinet(t *testing.T) {
	checker := NewCheckerAdapter(&config.RuntimeConfig{}, discard())
	assert.Equal(t, "clarinet", checker.clarinet)
}

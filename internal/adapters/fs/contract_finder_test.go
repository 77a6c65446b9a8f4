package fs

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/clarity-cli/internal/domain/config"
)

// writeTestFile creates a file below root, making parent directories as needed.
func writeTestFile(t *testing.T, root, name, content string) string {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(name))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestContractFinder_FindContracts(t *testing.T) {
	root := t.TempDir()
	counter := writeTestFile(t, root, "contracts/counter.clar", "(define-public (increment) (ok u1))")
	token := writeTestFile(t, root, "contracts/nested/token.clar", "(define-fungible-token token)")
	writeTestFile(t, root, "contracts/README.md", "not a contract")
	writeTestFile(t, root, "Clarinet.toml", "[project]\nname = \"x\"")

	finder := NewContractFinderAdapter(&config.RuntimeConfig{})
	paths, err := finder.FindContracts(context.Background(), root)

	require.NoError(t, err)
	assert.Equal(t, []string{counter, token}, paths)
}

func TestContractFinder_CustomPattern(t *testing.T) {
	root := t.TempDir()
	writeTestFile(t, root, "contracts/a.clar", "")
	other := writeTestFile(t, root, "lib/b.clar", "")

	finder := NewContractFinderAdapter(&config.RuntimeConfig{ContractGlob: "lib/**/*.clar"})
	paths, err := finder.FindContracts(context.Background(), root)

	require.NoError(t, err)
	assert.Equal(t, []string{other}, paths)
}

func TestContractFinder_NoContracts(t *testing.T) {
	finder := NewContractFinderAdapter(&config.RuntimeConfig{})
	paths, err := finder.FindContracts(context.Background(), t.TempDir())

	require.NoError(t, err)
	assert.Empty(t, paths)
}

func TestContractFinder_ReadContracts(t *testing.T) {
	root := t.TempDir()
	a := writeTestFile(t, root, "contracts/a.clar", "(define-public (a) (ok u1))")
	b := writeTestFile(t, root, "contracts/b.clar", "(define-public (b) (ok u2))")

	finder := NewContractFinderAdapter(&config.RuntimeConfig{})
	files, err := finder.ReadContracts(context.Background(), []string{a, b})

	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		a: "(define-public (a) (ok u1))",
		b: "(define-public (b) (ok u2))",
	}, files)
}

func TestContractFinder_ReadContractsMissingFile(t *testing.T) {
	finder := NewContractFinderAdapter(&config.RuntimeConfig{})
	_, err := finder.ReadContracts(context.Background(), []string{filepath.Join(t.TempDir(), "gone.clar")})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read contract")
}

func TestContractFinder_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	finder := NewContractFinderAdapter(&config.RuntimeConfig{})
	_, err := finder.FindContracts(ctx, t.TempDir())
	assert.ErrorIs(t, err, context.Canceled)
}

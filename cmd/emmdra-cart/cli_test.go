package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T, backend string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "emmdra.yaml")
	body := fmt.Sprintf(`
storage:
  backend: %s
  path: %s
log:
  level: error
orders:
  path: %s
`, backend, filepath.Join(dir, "cart-store"), filepath.Join(dir, "orders.db"))
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func execute(t *testing.T, configPath string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetArgs(append([]string{"--config", configPath, "--no-color"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestCLI_CartSurvivesBetweenRuns(t *testing.T) {
	for _, backend := range []string{"sqlite", "file"} {
		t.Run(backend, func(t *testing.T) {
			cfg := testConfig(t, backend)

			_, err := execute(t, cfg, "add", "decimal", "--name", "Ankara tote", "--price", "99.99")
			require.NoError(t, err)
			_, err = execute(t, cfg, "add", "decimal2", "--name", "Bead kit", "--price", "49.50", "-q", "2")
			require.NoError(t, err)

			out, err := execute(t, cfg, "show")
			require.NoError(t, err)
			assert.Contains(t, out, "3 items")
			assert.Contains(t, out, "2x Bead kit @ 49.50 = 99.00")
			assert.Contains(t, out, "total: 198.99")
		})
	}
}

func TestCLI_UpdateToZeroRemoves(t *testing.T) {
	cfg := testConfig(t, "sqlite")

	_, err := execute(t, cfg, "add", "1", "--name", "Test Product", "--price", "100")
	require.NoError(t, err)
	out, err := execute(t, cfg, "update", "1", "0")
	require.NoError(t, err)

	assert.Contains(t, out, "(empty)")
	assert.Contains(t, out, "total: 0.00")
}

func TestCLI_AddRejectsNonPositiveQuantity(t *testing.T) {
	cfg := testConfig(t, "sqlite")

	_, err := execute(t, cfg, "add", "1", "--price", "10", "-q", "0")
	assert.EqualError(t, err, "Quantity must be positive")
}

func TestCLI_CheckoutClearsOnlyOnRequest(t *testing.T) {
	cfg := testConfig(t, "sqlite")
	_, err := execute(t, cfg, "add", "1", "--name", "Test Product", "--price", "100")
	require.NoError(t, err)

	out, err := execute(t, cfg, "checkout", "--name", "Ada", "--email", "ada@example.com", "--clear=false")
	require.NoError(t, err)
	assert.Contains(t, out, "1 items, total 100.00")

	out, err = execute(t, cfg, "show")
	require.NoError(t, err)
	assert.Contains(t, out, "1 items")

	_, err = execute(t, cfg, "checkout", "--name", "Ada", "--email", "ada@example.com")
	require.NoError(t, err)

	out, err = execute(t, cfg, "show")
	require.NoError(t, err)
	assert.Contains(t, out, "(empty)")
}

func TestCLI_CheckoutEmptyCartFails(t *testing.T) {
	cfg := testConfig(t, "sqlite")

	_, err := execute(t, cfg, "checkout", "--name", "Ada", "--email", "ada@example.com")
	assert.EqualError(t, err, "Cart is empty")
}

func TestCLI_RemoveAndClear(t *testing.T) {
	cfg := testConfig(t, "file")
	_, err := execute(t, cfg, "add", "a", "--price", "1")
	require.NoError(t, err)
	_, err = execute(t, cfg, "add", "b", "--price", "2")
	require.NoError(t, err)

	out, err := execute(t, cfg, "remove", "a")
	require.NoError(t, err)
	assert.Contains(t, out, "1 items")

	out, err = execute(t, cfg, "clear")
	require.NoError(t, err)
	assert.Contains(t, out, "(empty)")
}

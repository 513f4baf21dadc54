package testhelpers

import (
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// BuildBinary compiles cmd/gitlingo into a temp dir owned by t and returns its path.
func BuildBinary(t *testing.T) string {
	t.Helper()
	gomod, err := exec.Command("go", "env", "GOMOD").Output()
	require.NoError(t, err)
	root := filepath.Dir(strings.TrimSpace(string(gomod)))

	binaryPath := filepath.Join(t.TempDir(), "gitlingo")
	build := exec.Command("go", "build", "-o", binaryPath, "./cmd/gitlingo")
	build.Dir = root
	out, err := build.CombinedOutput()
	require.NoError(t, err, string(out))
	return binaryPath
}

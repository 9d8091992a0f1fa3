package loader_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/askiada/go-pipeline-loader/pkg/pipeline"
)

type demo struct {
	pipeline.Base
}

func newDemo() pipeline.Pipeline {
	return &demo{}
}

// writeFile creates path under dir with its parents.
func writeFile(t *testing.T, dir, path, content string) {
	t.Helper()

	full := filepath.Join(dir, path)
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
	require.NoError(t, os.WriteFile(full, []byte(content), 0o600))
}

// createRoot creates a pipelines root holding a demo pipeline and returns its path.
func createRoot(t *testing.T) string {
	t.Helper()

	root := filepath.Join(t.TempDir(), "pipelines")
	writeFile(t, root, "demo/config.yaml", "metadata:\n  classname: Demo\n")

	return root
}

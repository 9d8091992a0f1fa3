package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/go-pipeline-loader/internal/cli"
	"github.com/askiada/go-pipeline-loader/pipelines"
	"github.com/askiada/go-pipeline-loader/pkg/loader"
)

const builtinRoot = "../../pipelines"

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	registry, err := pipelines.NewRegistry()
	require.NoError(t, err)

	var out, errOut bytes.Buffer

	cmd := cli.NewRootCmd(registry)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err = cmd.Execute()

	return out.String(), err
}

func TestList(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "list", "--root", builtinRoot)
	require.NoError(t, err)
	assert.Contains(t, out, "simplevs")
	assert.Contains(t, out, "SimpleVideoStructurization")
	assert.Contains(t, out, "Simple Video Structurization")
}

func TestListMissingRoot(t *testing.T) {
	t.Parallel()

	_, err := execute(t, "list", "--root", filepath.Join(t.TempDir(), "missing"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestConfig(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "config", "simplevs", "--root", builtinRoot)
	require.NoError(t, err)
	assert.Contains(t, out, "classname: SimpleVideoStructurization")
	assert.Contains(t, out, "object_detection_device:")

	_, err = execute(t, "config", "../cmd", "--root", builtinRoot)
	assert.ErrorIs(t, err, loader.ErrNotFound)
}

func TestEvaluate(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	constants := filepath.Join(dir, "constants.yaml")
	require.NoError(t, os.WriteFile(constants, []byte("DIAGRAM_DIR: "+dir+"\nVIDEO_PATH: /data/cars.mp4\n"), 0o600))

	out, err := execute(t, "evaluate", "simplevs",
		"--root", builtinRoot,
		"--constants", constants,
		"--param", "object_detection_device=GPU",
		"--element", "va/vah264dec",
		"--regular", "1",
		"--inference", "2",
	)
	require.NoError(t, err)
	assert.Contains(t, out, "filesrc location=/data/cars.mp4")
	assert.Contains(t, out, "device=GPU")
	assert.Contains(t, out, "vah264dec")
	assert.Contains(t, out, "bounding boxes: 18")

	diagrams, err := filepath.Glob(filepath.Join(dir, "simplevs-*.dot"))
	require.NoError(t, err)
	require.Len(t, diagrams, 1)
	assert.Contains(t, out, "diagram: "+diagrams[0]+"\n")
}

func TestEvaluateErrors(t *testing.T) {
	t.Parallel()

	_, err := execute(t, "evaluate", "missing", "--root", builtinRoot)
	require.ErrorIs(t, err, loader.ErrNotFound)

	_, err = execute(t, "evaluate", "simplevs", "--root", builtinRoot, "--constants", filepath.Join(t.TempDir(), "none.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = execute(t, "evaluate", "simplevs", "--root", builtinRoot, "--regular", "0", "--inference", "0")
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	_, err := execute(t, "validate", "--root", builtinRoot)
	require.NoError(t, err)

	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "broken"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "broken", "config.yaml"), []byte("metadata: {}\n"), 0o600))

	out, err := execute(t, "validate", "--root", root)
	require.Error(t, err)
	assert.Contains(t, out, "broken")
	assert.Contains(t, out, "classname not defined")
}

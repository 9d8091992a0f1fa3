package loader_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/go-pipeline-loader/pkg/loader"
)

func TestValidateAll(t *testing.T) {
	t.Parallel()

	root := createRoot(t)
	writeFile(t, root, "noclass/config.yaml", "metadata:\n  name: No class\n")
	writeFile(t, root, "unregistered/config.yaml", "metadata:\n  classname: Demo\n")
	writeFile(t, root, "noconfig/.keep", "")
	writeFile(t, root, "_ignored/config.yaml", "")

	registry := loader.NewRegistry()
	require.NoError(t, registry.Register("demo", "Demo", newDemo))

	failures, err := loader.New(registry, loader.WithRoot(root)).ValidateAll(context.Background())
	require.NoError(t, err)
	require.Len(t, failures, 3)
	assert.ErrorIs(t, failures["noclass"], loader.ErrMissingClassname)
	assert.ErrorIs(t, failures["unregistered"], loader.ErrPipelineNotRegistered)
	assert.ErrorIs(t, failures["noconfig"], loader.ErrNotFound)
}

func TestValidateAllCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := loader.New(nil, loader.WithRoot(createRoot(t))).ValidateAll(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestValidateAllMissingRoot(t *testing.T) {
	t.Parallel()

	_, err := loader.New(nil, loader.WithRoot(t.TempDir()+"/missing")).ValidateAll(context.Background())
	assert.Error(t, err)
}

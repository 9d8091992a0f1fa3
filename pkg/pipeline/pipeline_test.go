package pipeline_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/go-pipeline-loader/pkg/pipeline"
)

type demo struct {
	pipeline.Base
}

func (d *demo) Evaluate(_, _ map[string]any, _, _ int, _ pipeline.Elements) (string, error) {
	launch := "videotestsrc ! fakesink"
	d.Ready(launch, "/tmp/demo.dot", []any{map[string]int{"x": 1}})

	return launch, nil
}

func TestBaseAccessorsNotDefined(t *testing.T) {
	t.Parallel()

	base := &pipeline.Base{}

	_, err := base.Pipeline()
	require.ErrorIs(t, err, pipeline.ErrNotDefined)
	assert.Contains(t, err.Error(), "pipeline")

	_, err = base.Diagram()
	require.ErrorIs(t, err, pipeline.ErrNotDefined)
	assert.Contains(t, err.Error(), "diagram")

	boxes, err := base.BoundingBoxes()
	require.ErrorIs(t, err, pipeline.ErrNotDefined)
	assert.Nil(t, boxes)
}

func TestBaseEvaluateNotImplemented(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		constants, parameters map[string]any
		regular, inference    int
		elements              pipeline.Elements
	}{
		"zero": {},
		"full": {
			constants:  map[string]any{"VIDEO_PATH": "/videos/a.mp4"},
			parameters: map[string]any{"device": "GPU"},
			regular:    2,
			inference:  4,
			elements:   pipeline.Elements{{Plugin: "va", Name: "vah264dec"}},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			base := &pipeline.Base{}
			got, err := base.Evaluate(tc.constants, tc.parameters, tc.regular, tc.inference, tc.elements)
			require.ErrorIs(t, err, pipeline.ErrNotImplemented)
			assert.Empty(t, got)

			_, err = base.Pipeline()
			assert.ErrorIs(t, err, pipeline.ErrNotDefined)
		})
	}
}

func TestEmbeddedEvaluate(t *testing.T) {
	t.Parallel()

	var pipe pipeline.Pipeline = &demo{}

	_, err := pipe.Diagram()
	require.ErrorIs(t, err, pipeline.ErrNotDefined)

	launch, err := pipe.Evaluate(nil, nil, 1, 1, nil)
	require.NoError(t, err)

	got, err := pipe.Pipeline()
	require.NoError(t, err)
	assert.Equal(t, launch, got)

	diagram, err := pipe.Diagram()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/demo.dot", diagram)

	boxes, err := pipe.BoundingBoxes()
	require.NoError(t, err)
	assert.Len(t, boxes, 1)
}

func TestReadyWithEmptyResults(t *testing.T) {
	t.Parallel()

	base := &pipeline.Base{}
	base.Ready("", "", nil)

	got, err := base.Pipeline()
	require.NoError(t, err)
	assert.Empty(t, got)

	boxes, err := base.BoundingBoxes()
	require.NoError(t, err)
	assert.Nil(t, boxes)
}

func TestElementsHas(t *testing.T) {
	t.Parallel()

	elements := pipeline.Elements{
		{Plugin: "va", Name: "vah264dec"},
		{Plugin: "dlstreamer", Name: "gvadetect"},
	}
	assert.True(t, elements.Has("gvadetect"))
	assert.False(t, elements.Has("vah265dec"))
	assert.False(t, pipeline.Elements(nil).Has("gvadetect"))
}

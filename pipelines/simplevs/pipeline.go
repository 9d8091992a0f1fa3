// Package simplevs implements the simple video structurization pipeline: decode, detect and optionally classify.
package simplevs

import (
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/askiada/go-pipeline-loader/pkg/loader"
	"github.com/askiada/go-pipeline-loader/pkg/pipeline"
	"github.com/askiada/go-pipeline-loader/pkg/pipeline/drawer"
)

const (
	// Name is the folder of the pipeline.
	Name = "simplevs"
	// Classname is the value of metadata.classname in config.yaml.
	Classname = "SimpleVideoStructurization"
)

var (
	ErrNoChannels    = errors.New("at least one channel is required")
	ErrMissingConfig = errors.New("missing constant")
)

// Box locates an element of the diagram.
type Box struct {
	Label  string
	Role   drawer.Role
	X      int
	Y      int
	Width  int
	Height int
}

const (
	boxWidth  = 160
	boxHeight = 48
	boxGap    = 32
)

type stage struct {
	element    string
	properties []string
	role       drawer.Role
}

func (s stage) String() string {
	if len(s.properties) == 0 {
		return s.element
	}

	return s.element + " " + strings.Join(s.properties, " ")
}

type branch struct {
	kind   string
	stages []stage
}

func (b branch) String() string {
	parts := make([]string, len(b.stages))
	for i, s := range b.stages {
		parts[i] = s.String()
	}

	return strings.Join(parts, " ! ")
}

type settings struct {
	videoPath          string
	detectionModel     string
	detectionModelProc string
	detectionDevice    string
	batchSize          int
	interval           int
	classifyModel      string
	classifyDevice     string
	diagramDir         string
}

// SimpleVideoStructurization is the pipeline registered as simplevs.SimpleVideoStructurization.
type SimpleVideoStructurization struct {
	pipeline.Base
}

// New creates an unevaluated pipeline.
func New() pipeline.Pipeline {
	return &SimpleVideoStructurization{}
}

// Register adds the pipeline to registry.
func Register(registry *loader.Registry) error {
	return registry.Register(Name, Classname, New)
}

// Evaluate builds one branch per channel. Inference channels run detection (and classification when a
// classification model is set), regular channels only decode.
func (p *SimpleVideoStructurization) Evaluate(
	constants, parameters map[string]any,
	regularChannels, inferenceChannels int,
	elements pipeline.Elements,
) (string, error) {
	if regularChannels < 0 || inferenceChannels < 0 || regularChannels+inferenceChannels == 0 {
		return "", errors.Wrapf(ErrNoChannels, "regular=%d inference=%d", regularChannels, inferenceChannels)
	}

	set, err := readSettings(constants, parameters, inferenceChannels > 0)
	if err != nil {
		return "", err
	}

	drawn := []branch{}
	launches := make([]string, 0, regularChannels+inferenceChannels)

	if inferenceChannels > 0 {
		inference := inferenceBranch(set, elements)
		drawn = append(drawn, inference)

		for range inferenceChannels {
			launches = append(launches, inference.String())
		}
	}

	if regularChannels > 0 {
		regular := regularBranch(set, elements)
		drawn = append(drawn, regular)

		for range regularChannels {
			launches = append(launches, regular.String())
		}
	}

	launch := strings.Join(launches, " ")

	fileName, err := diagramFile(set.diagramDir)
	if err != nil {
		return "", err
	}

	diagram, boxes, err := draw(fileName, drawn)
	if err != nil {
		return "", errors.Wrap(err, "unable to draw diagram")
	}

	p.Ready(launch, diagram, boxes)

	return launch, nil
}

func readSettings(constants, parameters map[string]any, inference bool) (*settings, error) {
	var (
		set settings
		err error
	)

	set.videoPath, err = pipeline.StringValue(constants, "VIDEO_PATH", "")
	if err != nil {
		return nil, err
	}

	if set.videoPath == "" {
		return nil, errors.Wrap(ErrMissingConfig, "VIDEO_PATH")
	}

	set.diagramDir, err = pipeline.StringValue(constants, "DIAGRAM_DIR", os.TempDir())
	if err != nil {
		return nil, err
	}

	if !inference {
		return &set, nil
	}

	set.detectionModel, err = pipeline.StringValue(constants, "OBJECT_DETECTION_MODEL_PATH", "")
	if err != nil {
		return nil, err
	}

	if set.detectionModel == "" {
		return nil, errors.Wrap(ErrMissingConfig, "OBJECT_DETECTION_MODEL_PATH")
	}

	set.detectionModelProc, err = pipeline.StringValue(constants, "OBJECT_DETECTION_MODEL_PROC", "")
	if err != nil {
		return nil, err
	}

	set.detectionDevice, err = pipeline.StringValue(parameters, "object_detection_device", "CPU")
	if err != nil {
		return nil, err
	}

	set.batchSize, err = pipeline.IntValue(parameters, "object_detection_batch_size", 0)
	if err != nil {
		return nil, err
	}

	set.interval, err = pipeline.IntValue(parameters, "object_detection_inference_interval", 1)
	if err != nil {
		return nil, err
	}

	set.classifyModel, err = pipeline.StringValue(parameters, "object_classification_model_path", "")
	if err != nil {
		return nil, err
	}

	set.classifyDevice, err = pipeline.StringValue(parameters, "object_classification_device", "CPU")
	if err != nil {
		return nil, err
	}

	return &set, nil
}

func decodeStages(set *settings, elements pipeline.Elements) []stage {
	stages := []stage{
		{element: "filesrc", properties: []string{fmt.Sprintf("location=%s", set.videoPath)}, role: drawer.RoleSource},
		{element: "qtdemux", role: drawer.RoleDecode},
		{element: "h264parse", role: drawer.RoleDecode},
	}

	if elements.Has("vah264dec") {
		return append(stages,
			stage{element: "vah264dec", role: drawer.RoleDecode},
			stage{element: "vapostproc", role: drawer.RoleTransform},
		)
	}

	return append(stages, stage{element: "decodebin", role: drawer.RoleDecode})
}

func inferenceBranch(set *settings, elements pipeline.Elements) branch {
	detect := []string{
		fmt.Sprintf("model=%s", set.detectionModel),
		fmt.Sprintf("device=%s", set.detectionDevice),
	}
	if set.detectionModelProc != "" {
		detect = append(detect, fmt.Sprintf("model-proc=%s", set.detectionModelProc))
	}

	if set.batchSize > 0 {
		detect = append(detect, fmt.Sprintf("batch-size=%d", set.batchSize))
	}

	detect = append(detect, fmt.Sprintf("inference-interval=%d", set.interval))

	stages := decodeStages(set, elements)
	stages = append(stages,
		stage{element: "gvadetect", properties: detect, role: drawer.RoleInference},
		stage{element: "queue", role: drawer.RoleTransform},
	)

	if set.classifyModel != "" {
		classify := []string{
			fmt.Sprintf("model=%s", set.classifyModel),
			fmt.Sprintf("device=%s", set.classifyDevice),
		}
		stages = append(stages,
			stage{element: "gvaclassify", properties: classify, role: drawer.RoleInference},
			stage{element: "queue", role: drawer.RoleTransform},
		)
	}

	stages = append(stages,
		stage{element: "gvametaconvert", role: drawer.RoleTransform},
		stage{element: "gvafpscounter", role: drawer.RoleTransform},
		stage{element: "fakesink", properties: []string{"sync=false"}, role: drawer.RoleSink},
	)

	return branch{kind: "inference", stages: stages}
}

func regularBranch(set *settings, elements pipeline.Elements) branch {
	stages := decodeStages(set, elements)
	stages = append(stages,
		stage{element: "queue", role: drawer.RoleTransform},
		stage{element: "gvafpscounter", role: drawer.RoleTransform},
		stage{element: "fakesink", properties: []string{"sync=false"}, role: drawer.RoleSink},
	)

	return branch{kind: "regular", stages: stages}
}

// diagramFile reserves a new file in dir, every evaluation keeps its own diagram.
func diagramFile(dir string) (string, error) {
	err := os.MkdirAll(dir, 0o755)
	if err != nil {
		return "", errors.Wrapf(err, "unable to create diagram directory %s", dir)
	}

	file, err := os.CreateTemp(dir, Name+"-*.dot")
	if err != nil {
		return "", errors.Wrapf(err, "unable to create diagram file in %s", dir)
	}

	err = file.Close()
	if err != nil {
		return "", errors.Wrapf(err, "unable to close diagram file %s", file.Name())
	}

	return file.Name(), nil
}

// draw renders one row per branch and returns the diagram path with one Box per element.
func draw(fileName string, branches []branch) (string, []any, error) {
	drw := drawer.NewDOTDrawer(fileName)
	boxes := []any{}

	for row, br := range branches {
		previous := ""

		for col, st := range br.stages {
			node := fmt.Sprintf("%s/%d/%s", br.kind, col, st.element)

			err := drw.AddElement(node, st.role)
			if err != nil {
				return "", nil, err
			}

			if previous != "" {
				err = drw.AddLink(previous, node)
				if err != nil {
					return "", nil, err
				}
			}

			previous = node

			boxes = append(boxes, Box{
				Label:  st.element,
				Role:   st.role,
				X:      col * (boxWidth + boxGap),
				Y:      row * (boxHeight + boxGap),
				Width:  boxWidth,
				Height: boxHeight,
			})
		}
	}

	path, err := drw.Draw()
	if err != nil {
		return "", nil, err
	}

	return path, boxes, nil
}

var _ pipeline.Pipeline = (*SimpleVideoStructurization)(nil)

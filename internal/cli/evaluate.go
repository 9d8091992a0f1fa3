package cli

import (
	"fmt"
	"maps"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/askiada/go-pipeline-loader/pkg/loader"
	"github.com/askiada/go-pipeline-loader/pkg/pipeline"
)

type evaluateCmd struct {
	opts     *options
	registry *loader.Registry

	constantsFile string
	params        map[string]string
	elements      []string
	regular       int
	inference     int
}

func newEvaluateCmd(opts *options, registry *loader.Registry) *cobra.Command {
	ec := &evaluateCmd{opts: opts, registry: registry}

	cmd := &cobra.Command{
		Use:   "evaluate NAME",
		Short: "Load a pipeline and evaluate it.",
		Args:  cobra.ExactArgs(1),
		RunE:  ec.run,
	}

	cmd.Flags().StringVarP(&ec.constantsFile, "constants", "c", "", "YAML file overriding the constants of config.yaml")
	cmd.Flags().StringToStringVarP(&ec.params, "param", "p", nil, "parameter override as key=value")
	cmd.Flags().StringSliceVarP(&ec.elements, "element", "e", nil, "available element as plugin/name")
	cmd.Flags().IntVar(&ec.regular, "regular", 0, "number of regular channels")
	cmd.Flags().IntVar(&ec.inference, "inference", 1, "number of inference channels")

	return cmd
}

func (ec *evaluateCmd) run(cmd *cobra.Command, args []string) error {
	name := args[0]

	pipe, cfg, err := ec.opts.loader(ec.registry).Load(name)
	if err != nil {
		return err
	}

	constants, err := mergeConstants(cfg, ec.constantsFile)
	if err != nil {
		return err
	}

	launch, err := pipe.Evaluate(constants, mergeParameters(cfg, ec.params), ec.regular, ec.inference, parseElements(ec.elements))
	if err != nil {
		return errors.Wrapf(err, "unable to evaluate %s", name)
	}

	diagram, err := pipe.Diagram()
	if err != nil {
		return err
	}

	boxes, err := pipe.BoundingBoxes()
	if err != nil {
		return err
	}

	ec.opts.logger.Debug("evaluated pipeline", "pipeline", name, "regular", ec.regular, "inference", ec.inference)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "pipeline: %s\n", launch)
	fmt.Fprintf(out, "diagram: %s\n", diagram)
	fmt.Fprintf(out, "bounding boxes: %d\n", len(boxes))

	return nil
}

// mergeConstants overlays the constants file on the constants section of cfg.
func mergeConstants(cfg loader.Config, path string) (map[string]any, error) {
	constants := map[string]any{}

	if defaults, ok := cfg["constants"].(map[string]any); ok {
		maps.Copy(constants, defaults)
	}

	if path == "" {
		return constants, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to read constants %s", path)
	}

	overrides := map[string]any{}

	err = yaml.Unmarshal(content, &overrides)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to parse constants %s", path)
	}

	maps.Copy(constants, overrides)

	return constants, nil
}

// mergeParameters takes the default of every parameter declared in cfg and applies overrides.
func mergeParameters(cfg loader.Config, overrides map[string]string) map[string]any {
	params := map[string]any{}

	if declared, ok := cfg["parameters"].(map[string]any); ok {
		for key, raw := range declared {
			decl, ok := raw.(map[string]any)
			if !ok {
				params[key] = raw

				continue
			}

			if def, ok := decl["default"]; ok {
				params[key] = def
			}
		}
	}

	for key, value := range overrides {
		params[key] = value
	}

	return params
}

func parseElements(raw []string) pipeline.Elements {
	elements := make(pipeline.Elements, 0, len(raw))

	for _, r := range raw {
		plugin, name, found := strings.Cut(r, "/")
		if !found {
			plugin, name = "", r
		}

		elements = append(elements, pipeline.Element{Plugin: plugin, Name: name})
	}

	return elements
}

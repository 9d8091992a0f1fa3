package cli

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/askiada/go-pipeline-loader/pkg/loader"
)

func newConfigCmd(opts *options, registry *loader.Registry) *cobra.Command {
	return &cobra.Command{
		Use:   "config NAME",
		Short: "Print the parsed config of a pipeline.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loader(registry).Config(args[0])
			if err != nil {
				return err
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)

			err = enc.Encode(map[string]any(cfg))
			if err != nil {
				return errors.Wrap(err, "unable to encode config")
			}

			return enc.Close()
		},
	}
}

package cli

import (
	"sort"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/askiada/go-pipeline-loader/pkg/loader"
)

var errValidation = errors.New("some pipelines failed validation")

func newValidateCmd(opts *options, registry *loader.Registry) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check that every pipeline can be loaded.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			failures, err := opts.loader(registry).ValidateAll(cmd.Context())
			if err != nil {
				return err
			}

			if len(failures) == 0 {
				opts.logger.Info("all pipelines are valid")

				return nil
			}

			names := make([]string, 0, len(failures))
			for name := range failures {
				names = append(names, name)
			}

			sort.Strings(names)

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetAutoWrapText(false)
			table.SetAutoFormatHeaders(false)
			table.SetHeader([]string{"NAME", "ERROR"})

			for _, name := range names {
				table.Append([]string{name, failures[name].Error()})
			}

			table.Render()

			return errors.Wrapf(errValidation, "%d failed", len(failures))
		},
	}
}

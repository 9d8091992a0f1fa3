package cli

import (
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/askiada/go-pipeline-loader/pkg/loader"
)

func newListCmd(opts *options, registry *loader.Registry) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available pipelines.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ldr := opts.loader(registry)

			names, err := ldr.List()
			if err != nil {
				return err
			}

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetAutoWrapText(false)
			table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
			table.SetAutoFormatHeaders(false)
			table.SetBorder(false)
			table.SetHeader([]string{"NAME", "DISPLAY NAME", "CLASSNAME"})

			for _, name := range names {
				cfg, err := ldr.Config(name)
				if err != nil {
					opts.logger.Warn("unable to read pipeline config", "pipeline", name, "error", err)
					table.Append([]string{name, "-", "-"})

					continue
				}

				table.Append([]string{name, cfg.DisplayName(), cfg.Classname()})
			}

			table.Render()

			return nil
		},
	}
}

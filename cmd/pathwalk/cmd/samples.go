package cmd

import (
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/asciipath/samples"
)

func newSamplesCmd() *cobra.Command {
	samplesCmd := &cobra.Command{
		Use:     "samples",
		Short:   "List the built-in sample maps",
		Args:    cobra.NoArgs,
		Example: `pathwalk samples`,
		RunE: func(cmd *cobra.Command, args []string) error {
			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"name", "letters", "description"})
			for _, s := range samples.All() {
				table.Append([]string{s.Name, s.Letters, s.Description})
			}
			table.Render()
			return nil
		},
	}

	samplesCmd.AddCommand(&cobra.Command{
		Use:     "show NAME",
		Short:   "Print a built-in sample map",
		Args:    cobra.ExactArgs(1),
		Example: `pathwalk samples show crossing`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := samples.Get(args[0])
			if err != nil {
				return fmt.Errorf("%w %q, available: %v", err, args[0], samples.Names())
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), s.Map)
			return err
		},
	})
	return samplesCmd
}

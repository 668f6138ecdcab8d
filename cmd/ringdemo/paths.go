package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/ring"
	"github.com/gogpu/ring/recording"
)

func newPathsCmd(pf *propFlags) *cobra.Command {
	var dumpProps bool
	cmd := &cobra.Command{
		Use:   "paths",
		Short: "Print the drawing commands of the indicator",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := pf.props(cmd)
			if err != nil {
				return err
			}
			if dumpProps {
				data, err := ring.EncodeProps(p)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
			}

			ind, err := ring.NewFromProps(p)
			if err != nil {
				return err
			}
			rec := recording.NewRecorder()
			if err := ind.Render(rec); err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), rec.FinishRecording().String())
			return nil
		},
	}
	cmd.Flags().BoolVar(&dumpProps, "props", false, "print the effective props as TOML first")
	return cmd
}

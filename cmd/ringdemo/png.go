package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/ring"
	"github.com/gogpu/ring/ggsurface"
)

func newPNGCmd(pf *propFlags) *cobra.Command {
	var (
		output string
		scale  float64
		canvas string
	)
	cmd := &cobra.Command{
		Use:   "png",
		Short: "Rasterize the indicator to a PNG file",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := pf.props(cmd)
			if err != nil {
				return err
			}
			p.Content = func(fill float64) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: fill %.2f%%\n", output, fill)
			}

			opts := []ggsurface.Option{ggsurface.WithScale(scale)}
			if canvas != "" {
				c, err := ring.ParseHex(canvas)
				if err != nil {
					return err
				}
				opts = append(opts, ggsurface.WithClearColor(c))
			}

			ind, err := ring.NewFromProps(p)
			if err != nil {
				return err
			}
			s := ggsurface.New(opts...)
			defer s.Close()
			if err := ind.Render(s); err != nil {
				return err
			}
			return s.SavePNG(output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "ring.png", "output file")
	cmd.Flags().Float64Var(&scale, "scale", 1, "pixels per unit")
	cmd.Flags().StringVar(&canvas, "clear", "", "canvas background color (default transparent)")
	return cmd
}

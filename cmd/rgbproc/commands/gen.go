package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/rgbproc/pixelio"
)

func newGenCmd(a *app) *cobra.Command {
	var (
		output  string
		comment string
	)

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate a ramp test image",
		Long: `Generate a width x height ramp: pixel i is "i i i".

Every pixel is distinct, so window positions in filter output can be
traced back to the input.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res := a.cfg.Resolution()
			out, closeOut, err := openOutput(output, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			w := pixelio.NewWriter(out)
			if comment == "" {
				comment = "ramp " + res.String()
			}
			err = w.WriteComment(comment)
			if err == nil {
				_, err = pixelio.Copy(w, pixelio.NewRamp(res.Pixels()))
			}
			if ferr := w.Flush(); err == nil {
				err = ferr
			}
			if cerr := closeOut(); err == nil && cerr != nil {
				err = fmt.Errorf("close output: %w", cerr)
			}
			return err
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVar(&comment, "comment", "", "header comment (default \"ramp WxH\")")
	return cmd
}

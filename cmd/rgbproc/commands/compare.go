package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gogpu/rgbproc/pixelio"
)

func newCompareCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "compare <golden> <candidate>",
		Short: "Compare a candidate stream against a golden one",
		Long: `Compare a candidate stream against a golden one, pixel by pixel.

Mismatch coordinates use the configured frame width. The command exits
non-zero if the streams differ in content or length.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			golden, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer golden.Close()
			candidate, err := os.Open(args[1])
			if err != nil {
				return err
			}
			defer candidate.Close()

			rep, err := pixelio.Compare(pixelio.NewReader(golden), pixelio.NewReader(candidate), a.cfg.Width)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, m := range rep.Mismatches {
				fmt.Fprintf(out, "%s %s\n", failStyle.Render("FAIL"), m)
			}
			if more := rep.Count - len(rep.Mismatches); more > 0 {
				fmt.Fprintln(out, dimStyle.Render(fmt.Sprintf("... and %d more", more)))
			}

			if rep.OK() {
				fmt.Fprintf(out, "%s %d pixels match\n", okStyle.Render("PASS"), rep.WantLen)
				return nil
			}
			if rep.WantLen != rep.GotLen {
				return fmt.Errorf("length mismatch: golden has %d pixels, candidate has %d (%d differ)",
					rep.WantLen, rep.GotLen, rep.Count)
			}
			return fmt.Errorf("%d of %d pixels differ", rep.Count, rep.WantLen)
		},
	}
}

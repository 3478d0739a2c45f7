package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/gogpu/rgbproc/filter"
	"github.com/gogpu/rgbproc/internal/parallel"
)

func newBatchCmd(a *app) *cobra.Command {
	var (
		dir     string
		modes   []string
		workers int
	)

	cmd := &cobra.Command{
		Use:   "batch <input>",
		Short: "Run several filters over one input file concurrently",
		Long: `Run several filters over one input file concurrently.

Each mode reads the input independently and writes <dir>/<mode>.txt.
All modes run to completion; failures are reported together.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := args[0]
			if !cmd.Flags().Changed("workers") {
				workers = a.cfg.Workers
			}

			selected := make([]filter.Mode, 0, len(modes))
			for _, s := range modes {
				m := filter.Mode(s)
				if filter.ParseMode(s) != m {
					return fmt.Errorf("batch: unknown mode %q", s)
				}
				selected = append(selected, m)
			}
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("batch: %w", err)
			}

			res := a.cfg.Resolution()
			counts := make([]int, len(selected))
			jobs := make([]func() error, len(selected))
			for i, m := range selected {
				jobs[i] = func() error {
					n, err := runToFile(pass{mode: m, res: res}, input, outputPath(dir, m))
					counts[i] = n
					if err != nil {
						return fmt.Errorf("%s: %w", m, err)
					}
					return nil
				}
			}

			pool := parallel.NewWorkerPool(workers)
			defer pool.Close()
			err := pool.ExecuteAll(jobs)

			out := cmd.OutOrStdout()
			for i, m := range selected {
				fmt.Fprintf(out, "%s %-10s %8d lines  %s\n",
					okStyle.Render("done"), m, counts[i], dimStyle.Render(outputPath(dir, m)))
			}
			return err
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", ".", "output directory")
	cmd.Flags().StringSliceVarP(&modes, "modes", "m", modeNames()[:len(filter.Modes)], "modes to run")
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "concurrent passes (default from config, 0 = GOMAXPROCS)")
	return cmd
}

func outputPath(dir string, m filter.Mode) string {
	return filepath.Join(dir, string(m)+".txt")
}

func runToFile(p pass, input, output string) (int, error) {
	in, err := os.Open(input)
	if err != nil {
		return 0, err
	}
	defer in.Close()

	out, err := os.Create(output)
	if err != nil {
		return 0, err
	}
	n, err := p.run(in, out)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	return n, err
}

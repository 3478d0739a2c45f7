package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/gogpu/rgbproc"
	"github.com/gogpu/rgbproc/filter"
	"github.com/gogpu/rgbproc/pixelio"
)

func newRunCmd(a *app) *cobra.Command {
	var (
		input  string
		output string
		quiet  bool
	)

	cmd := &cobra.Command{
		Use:   "run [mode]",
		Short: "Filter one pixel stream",
		Long: `Filter one pixel stream.

The mode defaults to the configured one (identity if unset). Unknown modes
fall back to identity with a warning. Progress ("line...N") and the filter
banner go to stderr so stdout carries only the result.`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: modeNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode := a.cfg.FilterMode()
			if len(args) == 1 {
				mode = filter.ParseMode(args[0])
			}
			if !cmd.Flags().Changed("input") {
				input = a.cfg.Input
			}
			if !cmd.Flags().Changed("output") {
				output = a.cfg.Output
			}

			in, closeIn, err := openInput(input, cmd.InOrStdin())
			if err != nil {
				return err
			}
			defer closeIn()
			out, closeOut, err := openOutput(output, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			stderr := cmd.ErrOrStderr()
			p := pass{mode: mode, res: a.cfg.Resolution()}
			if !quiet {
				p.announce = func(name string) { banner(stderr, name) }
				p.opts = append(p.opts, rgbproc.WithProgress(progress(stderr)))
			}

			n, err := p.run(in, out)
			if !quiet {
				fmt.Fprintln(stderr)
			}
			if cerr := closeOut(); err == nil && cerr != nil {
				err = fmt.Errorf("close output: %w", cerr)
			}
			if err != nil {
				return err
			}
			rgbproc.Logger().Info("rgbproc: done", "mode", mode, "lines", n)
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "input pixel stream (default stdin)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "suppress banner and progress")
	return cmd
}

// pass is one filter run over one stream.
type pass struct {
	mode     filter.Mode
	res      rgbproc.Resolution
	opts     []rgbproc.StreamOption
	announce func(name string)
}

// run filters in to out and returns the number of lines written. Output is
// flushed even when the stream fails so partial results are kept.
func (p pass) run(in io.Reader, out io.Writer) (int, error) {
	ws, err := rgbproc.NewWindowStream(p.res, pixelio.NewReader(in), p.opts...)
	if err != nil {
		return 0, err
	}
	w := pixelio.NewWriter(out)

	var n int
	if p.mode == filter.ModeGenMatrix {
		p.say("GenMatrix")
		n, err = filter.Dump(ws, w.WriteWindow)
	} else {
		f := filter.New(p.mode, ws)
		p.say(f.Name())
		n, err = filter.Run(f, w.WritePixel)
	}

	if ferr := w.Flush(); err == nil {
		err = ferr
	}
	return n, err
}

func (p pass) say(name string) {
	if p.announce != nil {
		p.announce(name)
	}
}

func modeNames() []string {
	names := make([]string, 0, len(filter.Modes)+1)
	for _, m := range filter.Modes {
		names = append(names, string(m))
	}
	return append(names, string(filter.ModeGenMatrix))
}

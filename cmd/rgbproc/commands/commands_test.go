package commands

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/rgbproc"
)

// execute runs the command tree in-process with the given stdin.
func execute(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	t.Cleanup(func() { rgbproc.SetLogger(nil) })

	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

const nine = "1 1 1\n2 2 2\n3 3 3\n4 4 4\n5 5 5\n6 6 6\n7 7 7\n8 8 8\n9 9 9\n"

func TestRunIdentity(t *testing.T) {
	stdout, stderr, err := execute(t, nine, "run", "identity", "--width", "3", "--height", "3")
	if err != nil {
		t.Fatalf("run error = %v", err)
	}
	if diff := cmp.Diff(nine, stdout); diff != "" {
		t.Errorf("stdout mismatch (-want +got):\n%s", diff)
	}
	for _, want := range []string{"== IdentityFilter ==", "line...1", "line...3"} {
		if !strings.Contains(stderr, want) {
			t.Errorf("stderr = %q, want it to contain %q", stderr, want)
		}
	}
}

func TestRunDefaultModeIsIdentity(t *testing.T) {
	stdout, _, err := execute(t, "7 8 9\n", "run", "--width", "1", "--height", "1", "-q")
	if err != nil {
		t.Fatal(err)
	}
	if stdout != "7 8 9\n" {
		t.Errorf("stdout = %q, want %q", stdout, "7 8 9\n")
	}
}

func TestRunQuiet(t *testing.T) {
	_, stderr, err := execute(t, nine, "run", "median", "--width", "3", "--height", "3", "-q")
	if err != nil {
		t.Fatal(err)
	}
	if stderr != "" {
		t.Errorf("stderr = %q, want empty with --quiet", stderr)
	}
}

func TestRunGray(t *testing.T) {
	stdout, stderr, err := execute(t, "100 100 100\n255 0 0\n", "run", "gray", "--width", "2", "--height", "1")
	if err != nil {
		t.Fatal(err)
	}
	if want := "100 100 100\n76 76 76\n"; stdout != want {
		t.Errorf("stdout = %q, want %q", stdout, want)
	}
	if !strings.Contains(stderr, "== GrayScaleFilter ==") {
		t.Errorf("stderr = %q, want grayscale banner", stderr)
	}
}

func TestRunGenMatrix(t *testing.T) {
	stdout, _, err := execute(t, "1 2 3\n", "run", "gen-matrix", "--width", "1", "--height", "1", "-q")
	if err != nil {
		t.Fatal(err)
	}
	want := strings.Repeat("1 2 3 ", 9) + "\n"
	if stdout != want {
		t.Errorf("stdout = %q, want %q", stdout, want)
	}
}

func TestRunUnknownModeFallsBack(t *testing.T) {
	stdout, stderr, err := execute(t, "4 5 6\n", "run", "sharpen", "--width", "1", "--height", "1")
	if err != nil {
		t.Fatal(err)
	}
	if stdout != "4 5 6\n" {
		t.Errorf("stdout = %q, want identity output", stdout)
	}
	if !strings.Contains(stderr, "unknown mode") {
		t.Errorf("stderr = %q, want unknown mode warning", stderr)
	}
}

func TestRunInvalidResolution(t *testing.T) {
	_, _, err := execute(t, "", "run", "--width", "0")
	if !errors.Is(err, rgbproc.ErrInvalidResolution) {
		t.Errorf("error = %v, want ErrInvalidResolution", err)
	}
}

func TestRunFormatError(t *testing.T) {
	_, _, err := execute(t, "1 2 3\nbad\n", "run", "--width", "2", "--height", "1", "-q")
	if err == nil || !strings.Contains(err.Error(), "line 2") {
		t.Errorf("error = %v, want format error on line 2", err)
	}
}

func TestRunWithConfigFile(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "in.txt")
	output := filepath.Join(dir, "out.txt")
	if err := os.WriteFile(input, []byte("-- two pixels\n100 100 100\n\n0 0 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg := writeFile(t, "run.yaml",
		"width: 2\nheight: 1\nmode: gray\ninput: "+input+"\noutput: "+output+"\n")

	stdout, _, err := execute(t, "", "run", "-c", cfg, "-q")
	if err != nil {
		t.Fatal(err)
	}
	if stdout != "" {
		t.Errorf("stdout = %q, want empty when output is a file", stdout)
	}
	if got, want := readFile(t, output), "100 100 100\n0 0 0\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestFlagsOverrideConfig(t *testing.T) {
	cfg := writeFile(t, "run.yaml", "width: 5\nheight: 5\nmode: median\n")
	stdout, _, err := execute(t, "1 2 3\n", "run", "identity", "-c", cfg, "--width", "1", "--height", "1", "-q")
	if err != nil {
		t.Fatal(err)
	}
	if stdout != "1 2 3\n" {
		t.Errorf("stdout = %q, want %q", stdout, "1 2 3\n")
	}
}

func TestGen(t *testing.T) {
	stdout, _, err := execute(t, "", "gen", "--width", "2", "--height", "2")
	if err != nil {
		t.Fatal(err)
	}
	want := "-- ramp 2x2\n0 0 0\n1 1 1\n2 2 2\n3 3 3\n"
	if stdout != want {
		t.Errorf("stdout = %q, want %q", stdout, want)
	}
}

func TestGenThenFilterRoundTrip(t *testing.T) {
	ramp := filepath.Join(t.TempDir(), "ramp.txt")
	if _, _, err := execute(t, "", "gen", "--width", "4", "--height", "3", "-o", ramp); err != nil {
		t.Fatal(err)
	}
	stdout, _, err := execute(t, "", "run", "identity", "--width", "4", "--height", "3", "-i", ramp, "-q")
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.Count(stdout, "\n"); got != 12 {
		t.Errorf("output has %d lines, want 12", got)
	}
	if !strings.HasPrefix(stdout, "0 0 0\n1 1 1\n") {
		t.Errorf("stdout = %q, want ramp values", stdout)
	}
}

func TestCompare(t *testing.T) {
	golden := writeFile(t, "golden.txt", nine)

	t.Run("match", func(t *testing.T) {
		candidate := writeFile(t, "candidate.txt", "-- hw\n"+nine)
		stdout, _, err := execute(t, "", "compare", golden, candidate, "--width", "3")
		if err != nil {
			t.Fatalf("compare error = %v", err)
		}
		if !strings.Contains(stdout, "PASS") || !strings.Contains(stdout, "9 pixels match") {
			t.Errorf("stdout = %q, want PASS report", stdout)
		}
	})

	t.Run("mismatch", func(t *testing.T) {
		candidate := writeFile(t, "candidate.txt", strings.Replace(nine, "5 5 5", "5 0 5", 1))
		stdout, _, err := execute(t, "", "compare", golden, candidate, "--width", "3")
		if err == nil || !strings.Contains(err.Error(), "1 of 9 pixels differ") {
			t.Errorf("compare error = %v, want 1 of 9 pixels differ", err)
		}
		if !strings.Contains(stdout, "FAIL") || !strings.Contains(stdout, "(1,1)") {
			t.Errorf("stdout = %q, want mismatch at (1,1)", stdout)
		}
	})

	t.Run("short candidate", func(t *testing.T) {
		candidate := writeFile(t, "candidate.txt", "1 1 1\n")
		_, _, err := execute(t, "", "compare", golden, candidate, "--width", "3")
		if err == nil || !strings.Contains(err.Error(), "length mismatch") {
			t.Errorf("compare error = %v, want length mismatch", err)
		}
	})
}

func TestBatch(t *testing.T) {
	input := writeFile(t, "in.txt", nine)
	dir := t.TempDir()

	stdout, _, err := execute(t, "", "batch", input, "-d", dir, "--width", "3", "--height", "3", "-w", "2")
	if err != nil {
		t.Fatalf("batch error = %v", err)
	}
	for _, mode := range modeNames()[:5] {
		got := readFile(t, filepath.Join(dir, mode+".txt"))
		if n := strings.Count(got, "\n"); n != 9 {
			t.Errorf("%s: %d lines, want 9", mode, n)
		}
		if !strings.Contains(stdout, mode) {
			t.Errorf("summary missing %s: %q", mode, stdout)
		}
	}
	if got := readFile(t, filepath.Join(dir, "identity.txt")); got != nine {
		t.Errorf("identity.txt = %q, want input", got)
	}
}

func TestBatchUnknownMode(t *testing.T) {
	input := writeFile(t, "in.txt", nine)
	_, _, err := execute(t, "", "batch", input, "-d", t.TempDir(), "-m", "median,blur")
	if err == nil || !strings.Contains(err.Error(), "blur") {
		t.Errorf("batch error = %v, want unknown mode blur", err)
	}
}

func TestBatchMissingInput(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.txt")
	_, _, err := execute(t, "", "batch", missing, "-d", t.TempDir(), "-m", "median,gray")
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("batch error = %v, want os.ErrNotExist", err)
	}
}

func TestVersion(t *testing.T) {
	stdout, _, err := execute(t, "", "version")
	if err != nil {
		t.Fatal(err)
	}
	if want := "rgbproc " + rgbproc.Version; !strings.Contains(stdout, want) {
		t.Errorf("stdout = %q, want %q", stdout, want)
	}
}

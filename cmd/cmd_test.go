package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tidwall/gjson"
	"github.com/tutils/lcg"
	"github.com/tutils/lcg/dump"
)

// run executes the root command. Flags keep their values between runs, so
// every test passes the generator parameters it relies on.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	out := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetErr(out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(append([]string{"--log-level=silent"}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

var defaults = []string{"-a", "1664525", "-c", "1013904223", "-m", "4294967296"}

func TestGenSingle(t *testing.T) {
	out, err := run(t, "", append([]string{"gen", "--count=-1", "--json=false", "--dump=", "--seed=0"}, defaults...)...)
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(out) != "0" {
		t.Fatalf("got %q", out)
	}
}

func TestGenCount(t *testing.T) {
	out, err := run(t, "", append([]string{"gen", "--count=3", "--json=false", "--dump=", "--seed=42"}, defaults...)...)
	if err != nil {
		t.Fatal(err)
	}
	want := "42\n1083814273\n378494188\n"
	if out != want {
		t.Fatalf("got %q, want %q", out, want)
	}
}

func TestGenJSON(t *testing.T) {
	out, err := run(t, "", append([]string{"gen", "--count=2", "--json", "--dump=", "--seed=0"}, defaults...)...)
	if err != nil {
		t.Fatal(err)
	}
	if gjson.Get(out, "m").Int() != 1<<32 || gjson.Get(out, "values.1").Int() != 1013904223 {
		t.Fatalf("got %s", out)
	}
}

func TestGenInvalidModulus(t *testing.T) {
	_, err := run(t, "", "gen", "--count=1", "--json=false", "--dump=", "-a", "1", "-c", "1", "-m", "0", "--seed=0")
	if err == nil || !strings.Contains(err.Error(), "invalid parameter") {
		t.Fatalf("got %v", err)
	}
}

func TestDumpAndPlot(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "values.lcg")
	_, err := run(t, "", "gen", "--count=4096", "--json=false", "--dump="+file, "--codec=lz4",
		"-a", "21", "-c", "1", "-m", "4096", "--seed=0")
	if err != nil {
		t.Fatal(err)
	}
	if fi, err := os.Stat(file); err != nil || fi.Size() == 0 {
		t.Fatalf("dump not written: %v", err)
	}

	out, err := run(t, "", "plot", "--kind=hist", "--bins=4", "--width=40", "--height=0", "--from="+file,
		"-a", "21", "-c", "1", "-m", "4096", "--seed=0")
	if err != nil {
		t.Fatal(err)
	}
	t.Log("\n" + out)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines", len(lines))
	}
	for _, l := range lines {
		if !strings.Contains(l, "1024") {
			t.Fatalf("full period should fill bins evenly: %q", l)
		}
	}
}

func TestPlotFromJSON(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "values.json")
	doc := `{"success":true,"data":{"values":[0,3,2,1]}}`
	if err := os.WriteFile(file, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	out, err := run(t, "", "plot", "--kind=hist", "--bins=4", "--width=40", "--height=0", "--from="+file,
		"-a", "1", "-c", "1", "-m", "4", "--seed=0")
	if err != nil {
		t.Fatal(err)
	}
	if strings.Count(out, "\n") != 4 {
		t.Fatalf("got %q", out)
	}
}

func TestPlotLattice(t *testing.T) {
	out, err := run(t, "", "plot", "--kind=lattice", "--count=17", "--width=18", "--height=19", "--from=",
		"-a", "5", "-c", "3", "-m", "16", "--seed=0")
	if err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(out, "*"); n != 16 {
		t.Fatalf("got %d points\n%s", n, out)
	}
}

func TestCheck(t *testing.T) {
	out, err := run(t, "", "check", "--verify", "-a", "5", "-c", "3", "-m", "16", "--seed=0")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "full period (Hull-Dobell): true") || !strings.Contains(out, "cycle length from seed: 16") {
		t.Fatalf("got %q", out)
	}

	out, err = run(t, "", "check", "--verify=false", "-a", "3", "-c", "3", "-m", "16", "--seed=0")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "full period (Hull-Dobell): false") {
		t.Fatalf("got %q", out)
	}
}

func TestBench(t *testing.T) {
	out, err := run(t, "", append([]string{"bench", "--batch=10", "--rounds=3", "--duration=0", "--json", "--seed=0"}, defaults...)...)
	if err != nil {
		t.Fatal(err)
	}
	if gjson.Get(out, "values").Int() != 30 {
		t.Fatalf("got %s", out)
	}
}

func TestXorRoundTrip(t *testing.T) {
	masked, err := run(t, "attack at dawn", "xor", "--crypt-key=816559", "--decode=false")
	if err != nil {
		t.Fatal(err)
	}
	if masked == "attack at dawn" {
		t.Fatal("input unchanged")
	}
	plain, err := run(t, masked, "xor", "--crypt-key=816559", "--decode")
	if err != nil {
		t.Fatal(err)
	}
	if plain != "attack at dawn" {
		t.Fatalf("got %q", plain)
	}
}

func TestCmdlineRoundTrip(t *testing.T) {
	args := []string{"gen", "--count=3", "--seed=42"}
	s, err := encodeArgs(args)
	if err != nil {
		t.Fatal(err)
	}
	got, err := decodeArgs(s)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Join(got, " ") != strings.Join(args, " ") {
		t.Fatalf("got %v", got)
	}
}

func TestWriteDumpClosesFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "values.lcg")
	if err := writeDump(lcg.NewDefault(42), file, "snappy", 3); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(file)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	r, err := dump.NewReader(f)
	if err != nil {
		t.Fatal(err)
	}
	values, err := r.ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	want := []int64{42, 1083814273, 378494188}
	if len(values) != len(want) {
		t.Fatalf("got %v", values)
	}
	for i := range want {
		if values[i] != want[i] {
			t.Fatalf("got %v, want %v", values, want)
		}
	}
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) { return 0, errors.New("disk full") }

func TestFillDumpWriteError(t *testing.T) {
	if _, err := fillDump(failingWriter{}, lcg.NewDefault(0), dump.CodecNone, 10); err == nil {
		t.Fatal("expected write error")
	}
	if err := writeDump(lcg.NewDefault(0), filepath.Join(t.TempDir(), "x"), "gzip", 1); err == nil {
		t.Fatal("expected codec error")
	}
}

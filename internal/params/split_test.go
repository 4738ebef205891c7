package params

import (
	"flag"
	"io"
	"slices"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantOut string
		wantN   int
		wantPV  bool
		wantPos []string
	}{
		{"no args", nil, "a.png", 1, false, nil},
		{"negative coordinates", []string{"-1.0", "1.0", "1.0", "-1.0", "10", "10"}, "a.png", 1, false, []string{"-1.0", "1.0", "1.0", "-1.0", "10", "10"}},
		{"flags then negatives", []string{"-o", "b.png", "-preview", "-workers", "4", "-2", "1"}, "b.png", 4, true, []string{"-2", "1"}},
		{"numeric flag value", []string{"-workers", "-3", "5"}, "a.png", -3, false, []string{"5"}},
		{"equals form", []string{"-workers=2", "-o=c.png", "3"}, "c.png", 2, false, []string{"3"}},
		{"double dash", []string{"-preview", "--", "-o"}, "a.png", 1, true, []string{"-o"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := flag.NewFlagSet("test", flag.ContinueOnError)
			out := fs.String("o", "a.png", "")
			n := fs.Int("workers", 1, "")
			pv := fs.Bool("preview", false, "")

			pos, err := Parse(fs, tt.args)
			if err != nil {
				t.Fatal(err)
			}
			if *out != tt.wantOut || *n != tt.wantN || *pv != tt.wantPV {
				t.Errorf("flags = %q %d %t, want %q %d %t", *out, *n, *pv, tt.wantOut, tt.wantN, tt.wantPV)
			}
			if !slices.Equal(pos, tt.wantPos) {
				t.Errorf("positional = %q, want %q", pos, tt.wantPos)
			}
		})
	}
}

func TestParseUnknownFlag(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	if _, err := Parse(fs, []string{"-zoom", "1"}); err == nil {
		t.Fatal("unknown flag accepted")
	}
}

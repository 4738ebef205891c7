package params

import (
	"flag"
	"strconv"
	"strings"
)

// Parse parses the flags of fs and returns the positional arguments.
// Flags end at "--", at the first argument that is not a flag, or at the first
// number, so a leading negative coordinate such as -1.0 needs no "--".
func Parse(fs *flag.FlagSet, args []string) ([]string, error) {
	flagArgs, rest := split(fs, args)
	if err := fs.Parse(flagArgs); err != nil {
		return nil, err
	}
	return append(fs.Args(), rest...), nil
}

func split(fs *flag.FlagSet, args []string) (flagArgs, rest []string) {
	for i := 0; i < len(args); i++ {
		a := args[i]
		if a == "--" {
			return args[:i], args[i+1:]
		}
		if !strings.HasPrefix(a, "-") || a == "-" || isNumber(a) {
			return args[:i], args[i:]
		}
		name := strings.TrimLeft(a, "-")
		if strings.Contains(name, "=") {
			continue
		}
		if f := fs.Lookup(name); f != nil && !isBoolFlag(f) {
			i++ // value
		}
	}
	return args, nil
}

func isNumber(s string) bool {
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

func isBoolFlag(f *flag.Flag) bool {
	bf, ok := f.Value.(interface{ IsBoolFlag() bool })
	return ok && bf.IsBoolFlag()
}

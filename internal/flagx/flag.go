// Package flagx lets several flag sets share one command line.
package flagx

import (
	"flag"
	"io"
	"os"
	"slices"
	"strings"
)

// FilterArgs keeps only the flags named in allowedFlags, together with their
// values, so a flag.FlagSet that knows those flags can parse the result.
//
// Both "-o docs" and "-o=docs" are recognized. A separate value is taken
// only when the next argument does not itself start with "-".
func FilterArgs(args []string, allowedFlags []string) []string {
	out := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if name, _, ok := strings.Cut(arg, "="); ok && strings.HasPrefix(arg, "-") {
			if slices.Contains(allowedFlags, name) {
				out = append(out, arg)
			}
			continue
		}
		if !slices.Contains(allowedFlags, arg) {
			continue
		}

		out = append(out, arg)
		if next := i + 1; next < len(args) && !strings.HasPrefix(args[next], "-") {
			out = append(out, args[next])
			i = next
		}
	}

	return out
}

// ConfigPath returns the JSON config file path given via -c or -config in
// args. When neither flag is present the value of the envKey variable is
// used; an empty envKey disables the fallback.
func ConfigPath(args []string, envKey string) string {
	var path string

	fs := flag.NewFlagSet("json", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&path, "config", "", "path to config file")
	fs.StringVar(&path, "c", "", "path to config file (short)")
	_ = fs.Parse(FilterArgs(args, []string{"-c", "-config", "--config"}))

	if path == "" && envKey != "" {
		path = os.Getenv(envKey)
	}
	return path
}

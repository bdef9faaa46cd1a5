// Package flagx lets several independent components share os.Args, each
// parsing only the flags it owns.
package flagx

import (
	"flag"
	"os"
	"strings"
)

// FilterArgs keeps only the flags listed in valued (and their values) from
// args. Both "-a value" and "-a=value" forms are recognized. A token that
// follows an allowed flag is taken as its value unless it starts with "-".
func FilterArgs(args []string, valued []string) []string {
	return FilterArgsWithBools(args, valued, nil)
}

// FilterArgsWithBools is FilterArgs for a flag set that also has boolean
// switches. Switches never consume the following token.
func FilterArgsWithBools(args []string, valued []string, bools []string) []string {
	kinds := make(map[string]bool, len(valued)+len(bools))
	for _, f := range valued {
		kinds[f] = true
	}
	for _, f := range bools {
		kinds[f] = false
	}

	out := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if strings.HasPrefix(arg, "-") && strings.Contains(arg, "=") {
			name, _, _ := strings.Cut(arg, "=")
			if _, ok := kinds[name]; ok {
				out = append(out, arg)
			}
			continue
		}

		takesValue, ok := kinds[arg]
		if !ok {
			continue
		}
		out = append(out, arg)
		if takesValue && i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			out = append(out, args[i+1])
			i++
		}
	}

	return out
}

// JsonConfigFlags returns the path given with -c or -config, or "" when
// neither is present. Later occurrences win.
func JsonConfigFlags() string {
	var path string

	fs := flag.NewFlagSet("json", flag.ContinueOnError)
	fs.StringVar(&path, "config", "", "path to config file")
	fs.StringVar(&path, "c", "", "path to config file (short)")
	_ = fs.Parse(FilterArgs(os.Args[1:], []string{"-c", "-config"}))

	return path
}

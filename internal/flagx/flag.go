// Package flagx lets several independent components parse the same os.Args
// without tripping over each other's flags.
package flagx

import (
	"flag"
	"io"
	"strings"
)

// Pick returns the subset of args that belongs to the named flags.
//
// Names are given without dashes; both "-name" and "--name" spellings match,
// as do the "-name value" and "-name=value" forms. A following token is taken
// as the value only when it does not itself start with a dash. The result is
// never nil.
func Pick(args []string, names ...string) []string {
	known := make(map[string]struct{}, len(names))
	for _, n := range names {
		known[n] = struct{}{}
	}

	match := func(arg string) bool {
		if !strings.HasPrefix(arg, "-") {
			return false
		}
		_, ok := known[strings.TrimLeft(arg, "-")]
		return ok
	}

	picked := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]

		if name, _, found := strings.Cut(arg, "="); found && strings.HasPrefix(arg, "-") {
			if match(name) {
				picked = append(picked, arg)
			}
			continue
		}

		if !match(arg) {
			continue
		}
		picked = append(picked, arg)
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			picked = append(picked, args[i+1])
			i++
		}
	}

	return picked
}

// ConfigPath extracts the JSON config file path passed with -c or -config.
// When both are present the last one wins; an empty string means none.
func ConfigPath(args []string) string {
	var path string

	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&path, "config", "", "path to config file")
	fs.StringVar(&path, "c", "", "path to config file (short)")
	_ = fs.Parse(Pick(args, "c", "config"))

	return path
}

package main

import (
	"flag"
	"fmt"
	"strings"
)

// HelpData is implemented by commands that can render usage text.
type HelpData interface {
	Program() string
	Usage() string
	FlagSet() *flag.FlagSet
}

// UsageError carries the command whose usage should be shown.
type UsageError struct {
	of HelpData
}

func (e *UsageError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "usage: %s\n", e.of.Usage())
	if fs := e.of.FlagSet(); fs != nil {
		var flags []string
		fs.VisitAll(func(f *flag.Flag) {
			flags = append(flags, fmt.Sprintf("  -%s (default %q)\n      %s", f.Name, f.DefValue, f.Usage))
		})
		if len(flags) > 0 {
			sb.WriteString("flags:\n")
			sb.WriteString(strings.Join(flags, "\n"))
			sb.WriteString("\n")
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}

func usageFunc(h HelpData) func() {
	return func() { fmt.Println((&UsageError{of: h}).Error()) }
}

func (r *root) Usage() string {
	return r.program + " [flags] annotate|draw|config|version ..."
}

func (a *annotateCmd) Usage() string {
	return a.root.program + " annotate open-file|capture-screen|from-clipboard [-file F] [-output F]"
}

func (d *drawCmd) Usage() string {
	return d.root.program + " draw [flags] line|arrow|free|rect|ellipse|triangle|text coords... [text]"
}

func (c *configCmd) Usage() string {
	return c.root.program + " config print|save"
}

func (v *versionCmd) Usage() string { return v.r.program + " version" }

func (v *versionCmd) Program() string { return v.r.program }

func (v *versionCmd) FlagSet() *flag.FlagSet { return nil }

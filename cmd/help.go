package cmd

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const flagGroupAnnotation = "group"

// groupedUsageTemplate is the cobra usage template for commands whose flags
// carry a "group" annotation. It renders local flags through
// flagUsagesByGroup so related flags appear under a common heading.
const groupedUsageTemplate = `Usage:{{if .Runnable}}
  {{.UseLine}}{{end}}{{if .HasAvailableSubCommands}}
  {{.CommandPath}} [command]{{end}}{{if gt (len .Aliases) 0}}

Aliases:
  {{.NameAndAliases}}{{end}}{{if .HasExample}}

Examples:
{{.Example}}{{end}}{{if .HasAvailableSubCommands}}

Available Commands:{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}{{if .HasAvailableLocalFlags}}

Flags:
{{flagUsagesByGroup . | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableInheritedFlags}}

Global Flags:
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasHelpSubCommands}}

Additional help topics:{{range .Commands}}{{if .IsAdditionalHelpTopicCommand}}
  {{rpad .CommandPath .CommandPathPadding}} {{.Short}}{{end}}{{end}}{{end}}{{if .HasAvailableSubCommands}}

Use "{{.CommandPath}} [command] --help" for more information about a command.{{end}}
`

// useGroupedFlagHelp installs groupedUsageTemplate on cmd. Call it after all
// flags are defined and annotated with flagGroup.
func useGroupedFlagHelp(cmd *cobra.Command) {
	cmd.SetUsageTemplate(groupedUsageTemplate)
}

// flagGroup annotates one or more flags of fs with a usage group heading.
func flagGroup(fs *pflag.FlagSet, group string, names ...string) {
	for _, name := range names {
		_ = fs.SetAnnotation(name, flagGroupAnnotation, []string{group})
	}
}

// flagUsagesByGroup formats the local flags of cmd by their group
// annotation. Groups keep first-seen order; unannotated flags fall into
// "Other options" (the --help flag that cobra appends is treated as
// "General options"). When no flag carries a group annotation the default
// pflag rendering is used.
func flagUsagesByGroup(cmd *cobra.Command) string {
	fs := cmd.LocalFlags()
	if fs == nil || !cmd.HasAvailableLocalFlags() {
		return ""
	}

	var (
		order  []string
		groups = make(map[string][]*pflag.Flag)
		seen   = false
	)
	fs.VisitAll(func(f *pflag.Flag) {
		if f.Hidden {
			return
		}
		group := "Other options"
		if g, ok := f.Annotations[flagGroupAnnotation]; ok && len(g) > 0 {
			group = g[0]
			seen = true
		} else if f.Name == "help" {
			group = "General options"
		}
		if _, ok := groups[group]; !ok {
			order = append(order, group)
		}
		groups[group] = append(groups[group], f)
	})
	if !seen {
		return fs.FlagUsages()
	}

	var buf bytes.Buffer
	for i, group := range order {
		if i > 0 {
			buf.WriteString("\n")
		}
		fmt.Fprintf(&buf, "%s:\n", group)
		writeFlagLines(&buf, groups[group])
	}
	return buf.String()
}

// writeFlagLines renders flags the way pflag.FlagUsages does, aligned on
// the usage column across the given group.
func writeFlagLines(buf *bytes.Buffer, flags []*pflag.Flag) {
	lines := make([]string, 0, len(flags))
	maxlen := 0

	for _, f := range flags {
		var line string
		if f.Shorthand != "" && f.ShorthandDeprecated == "" {
			line = fmt.Sprintf("  -%s, --%s", f.Shorthand, f.Name)
		} else {
			line = fmt.Sprintf("      --%s", f.Name)
		}

		varname, usage := pflag.UnquoteUsage(f)
		if varname != "" {
			line += " " + varname
		}
		if f.NoOptDefVal != "" {
			switch f.Value.Type() {
			case "string":
				line += fmt.Sprintf("[=\"%s\"]", f.NoOptDefVal)
			case "bool":
				if f.NoOptDefVal != "true" {
					line += fmt.Sprintf("[=%s]", f.NoOptDefVal)
				}
			case "count":
				if f.NoOptDefVal != "+1" {
					line += fmt.Sprintf("[=%s]", f.NoOptDefVal)
				}
			default:
				line += fmt.Sprintf("[=%s]", f.NoOptDefVal)
			}
		}

		line += "\x00"
		if len(line) > maxlen {
			maxlen = len(line)
		}

		line += usage
		if !flagHasZeroDefault(f) {
			if f.Value.Type() == "string" {
				line += fmt.Sprintf(" (default %q)", f.DefValue)
			} else {
				line += fmt.Sprintf(" (default %s)", f.DefValue)
			}
		}
		if f.Deprecated != "" {
			line += fmt.Sprintf(" (DEPRECATED: %s)", f.Deprecated)
		}

		lines = append(lines, line)
	}

	for _, line := range lines {
		sidx := strings.Index(line, "\x00")
		spacing := strings.Repeat(" ", maxlen-sidx)
		fmt.Fprintln(buf, line[:sidx], spacing, line[sidx+1:])
	}
}

func flagHasZeroDefault(f *pflag.Flag) bool {
	switch f.DefValue {
	case "false", "", "0", "<nil>", "[]":
		return true
	}
	return false
}

func init() {
	cobra.AddTemplateFunc("flagUsagesByGroup", flagUsagesByGroup)
}

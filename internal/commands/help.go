package commands

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"text/template"

	"github.com/pivotal-cf/jhanda"
)

const applicationName = "ease"

var helpTemplate = template.Must(template.New("help").Parse(
	`{{with .Command}}
{{$.Name}} {{.}}

{{end}}{{.Description}}

Usage: {{.Name}} [options] {{or .Command "[<command>]"}}{{if .Arguments}} [<args>]{{end}}
{{range .GlobalFlags}}  {{.}}
{{end}}
{{with .Arguments}}{{$.ArgumentsTitle}}
{{range .}}  {{.}}
{{end}}{{end}}`))

type helpPage struct {
	Name           string
	Command        string
	Description    string
	GlobalFlags    []string
	ArgumentsTitle string
	Arguments      []string
}

type Help struct {
	output         io.Writer
	flags          string
	commands       jhanda.CommandSet
	defaultCommand string
}

// NewHelp returns the help command. defaultCommand names the command that
// runs when ease is invoked without one; it is marked in the command list.
func NewHelp(output io.Writer, flags string, commands jhanda.CommandSet, defaultCommand string) Help {
	return Help{
		output:         output,
		flags:          flags,
		commands:       commands,
		defaultCommand: defaultCommand,
	}
}

func (h Help) Execute(args []string) error {
	var (
		page helpPage
		err  error
	)
	if len(args) == 0 {
		page = h.overview()
	} else {
		page, err = h.command(args[0])
		if err != nil {
			return err
		}
	}
	page.Name = applicationName
	page.GlobalFlags = nonEmptyLines(h.flags)

	return helpTemplate.Execute(h.output, page)
}

func (h Help) Usage() jhanda.Usage {
	return jhanda.Usage{
		Description:      "This command prints helpful usage information.",
		ShortDescription: "prints this usage information",
	}
}

func (h Help) overview() helpPage {
	names := make([]string, 0, len(h.commands))
	width := 0
	for name := range h.commands {
		names = append(names, name)
		width = max(width, len(name))
	}
	slices.Sort(names)

	lines := make([]string, 0, len(names))
	for _, name := range names {
		line := fmt.Sprintf("%-*s  %s", width, name, h.commands[name].Usage().ShortDescription)
		if name == h.defaultCommand {
			line += " (default)"
		}
		lines = append(lines, line)
	}

	return helpPage{
		Description:    "ease generates CSS easing presets from a table of cubic-bezier control points",
		ArgumentsTitle: "Commands:",
		Arguments:      lines,
	}
}

func (h Help) command(name string) (helpPage, error) {
	usage, err := h.commands.Usage(name)
	if err != nil {
		return helpPage{}, err
	}

	page := helpPage{
		Command:        name,
		Description:    usage.Description,
		ArgumentsTitle: "Flags:",
	}
	if usage.Flags != nil {
		flagUsage, err := jhanda.PrintUsage(usage.Flags)
		if err != nil {
			return helpPage{}, err
		}
		page.Arguments = nonEmptyLines(flagUsage)
	}

	return page, nil
}

func nonEmptyLines(s string) []string {
	var lines []string
	for line := range strings.SplitSeq(s, "\n") {
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package help

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"fullname-parser/internal/formatters"
	"fullname-parser/internal/personname"

	"github.com/fatih/color"
)

// System renders help screens to a writer
type System struct {
	out     io.Writer
	noColor bool
	colors  map[string]*color.Color
}

// NewSystem creates a new help system writing to out
func NewSystem(out io.Writer, noColor bool) *System {
	colors := map[string]*color.Color{
		"title":    color.New(color.FgWhite, color.Bold),
		"header":   color.New(color.FgBlue, color.Bold),
		"item":     color.New(color.FgCyan),
		"emphasis": color.New(color.FgWhite, color.Bold),
		"warning":  color.New(color.FgYellow),
		"example":  color.New(color.FgMagenta),
	}
	if noColor {
		for _, c := range colors {
			c.DisableColor()
		}
	}

	return &System{
		out:     out,
		noColor: noColor,
		colors:  colors,
	}
}

// ShowGeneralHelp displays usage, options and examples
func (h *System) ShowGeneralHelp() {
	h.colors["title"].Fprintln(h.out, "fullname-parser - Person Name Decomposition Tool")
	fmt.Fprintln(h.out, "================================================")
	fmt.Fprintln(h.out)
	h.colors["header"].Fprintln(h.out, "USAGE:")
	fmt.Fprintln(h.out, "  fullname-parser [options] \"<full name>\" [\"<full name>\" ...]")
	fmt.Fprintln(h.out, "  fullname-parser --input <file-or-dir> [--input ...] [options]")
	fmt.Fprintln(h.out)

	h.colors["header"].Fprintln(h.out, "OPTIONS:")

	w := tabwriter.NewWriter(h.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  --input\t<path>\tFile with one name per line, or a directory of such files (repeatable)")
	fmt.Fprintln(w, "  --output-dir\t<path>\tDirectory for batch output files (default: .)")
	fmt.Fprintln(w, "  --format\t<format>\tOutput format: "+strings.Join(formatters.List(), ", ")+" (default: csv)")
	fmt.Fprintln(w, "\t\t\tNote: xlsx is never printed; names from the command line go to <output-dir>/names.xlsx")
	fmt.Fprintln(w, "  --delimiter\t<char>\tField delimiter for csv output (default: ,)")
	fmt.Fprintln(w, "  --no-header\t\tOmit the header row in csv, text and xlsx output")
	fmt.Fprintln(w, "  --workers\t<n>\tNumber of input files processed concurrently (default: 4)")
	fmt.Fprintln(w, "  --dictionary\t<path>\tYAML file overriding the built-in prefix and suffix tables")
	fmt.Fprintln(w, "  --config\t<path>\tPath to configuration file (YAML)")
	fmt.Fprintln(w, "  --profile\t<name>\tProfile name to use from config file")
	fmt.Fprintln(w, "  --list-profiles\t\tList available profiles")
	fmt.Fprintln(w, "  --list-formats\t\tList available output formats")
	fmt.Fprintln(w, "  --show-dictionary\t\tPrint the active lookup tables and exit")
	fmt.Fprintln(w, "  --verbose\t\tLog per-file metrics and add a summary to the output")
	fmt.Fprintln(w, "  --debug\t\tLog every parse step to stderr")
	fmt.Fprintln(w, "  --no-color\t\tDisable colored output")
	fmt.Fprintln(w, "  --version\t\tShow version information")
	fmt.Fprintln(w, "  --help\t\tShow this help message")
	w.Flush()

	fmt.Fprintln(h.out)
	h.colors["header"].Fprintln(h.out, "EXAMPLES:")
	fmt.Fprintln(h.out, "  Single Names:")
	h.colors["example"].Fprintln(h.out, "    fullname-parser \"Dr. John P. Doe-Ray, CLU, CFP, LUTC\"")
	h.colors["example"].Fprintln(h.out, "    fullname-parser --format json \"Rev. Martin Luther King, Jr.\"")
	fmt.Fprintln(h.out, "  Batch Files:")
	h.colors["example"].Fprintln(h.out, "    fullname-parser --input names.txt --output-dir out")
	h.colors["example"].Fprintln(h.out, "    fullname-parser --input ./lists --profile export --workers 8")

	fmt.Fprintln(h.out)
	h.colors["header"].Fprintln(h.out, "CONFIGURATION:")
	fmt.Fprintln(h.out, "  Project config: fullname-parser.yaml, fullname-parser.yml or config.yaml (in current directory)")
	fmt.Fprintln(h.out, "  User config:    ~/.fullname-parser/config.yaml")
	fmt.Fprintln(h.out, "  Environment:    FULLNAME_PARSER_FORMAT, FULLNAME_PARSER_DELIMITER, FULLNAME_PARSER_OUTPUT_DIR,")
	fmt.Fprintln(h.out, "                  FULLNAME_PARSER_WORKERS, FULLNAME_PARSER_VERBOSE, FULLNAME_PARSER_DEBUG,")
	fmt.Fprintln(h.out, "                  FULLNAME_PARSER_NO_COLOR, FULLNAME_PARSER_DICTIONARY")
}

// ShowFormats lists the registered output formats
func (h *System) ShowFormats(formats []formatters.FormatInfo) {
	h.colors["title"].Fprintln(h.out, "Available Output Formats")
	fmt.Fprintln(h.out, "========================")
	fmt.Fprintln(h.out)

	w := tabwriter.NewWriter(h.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  FORMAT\tEXTENSION\tDESCRIPTION")
	fmt.Fprintln(w, "  ------\t---------\t-----------")
	for _, info := range formats {
		description := info.Description
		if info.Binary {
			description += " (file output only)"
		}
		fmt.Fprintf(w, "  %s\t%s\t%s\n", info.Name, info.Extension, description)
	}
	w.Flush()
}

// ShowProfiles lists profile names with their descriptions
func (h *System) ShowProfiles(names []string, describe func(name string) string) {
	if len(names) == 0 {
		fmt.Fprintln(h.out, "No profiles defined in configuration.")
		return
	}

	h.colors["header"].Fprintln(h.out, "Available profiles:")
	for _, name := range names {
		if description := describe(name); description != "" {
			fmt.Fprintf(h.out, "  - %s: %s\n", h.colors["item"].Sprint(name), description)
		} else {
			fmt.Fprintf(h.out, "  - %s\n", h.colors["item"].Sprint(name))
		}
	}
}

// ShowDictionary prints the lookup tables the parser is using
func (h *System) ShowDictionary(dict personname.Dictionary) {
	h.colors["title"].Fprintln(h.out, "Active Dictionary")
	fmt.Fprintln(h.out, "=================")
	fmt.Fprintln(h.out)

	h.colors["header"].Fprintln(h.out, "PREFIXES:")
	w := tabwriter.NewWriter(h.out, 0, 0, 2, ' ', 0)
	for _, group := range dict.Prefixes {
		canonical := group.Canonical
		switch {
		case canonical == "":
			canonical = "(as typed)"
		case strings.TrimSpace(canonical) == "":
			canonical = "(dropped)"
		}
		fmt.Fprintf(w, "  %s\t%s\n", canonical, strings.Join(group.Synonyms, ", "))
	}
	w.Flush()

	h.showTable("LINE SUFFIXES:", dict.LineSuffixes)
	h.showTable("PROFESSIONAL SUFFIXES:", dict.ProfessionalSuffixes)
	h.showTable("COMPOUND MARKERS:", dict.CompoundMarkers)
}

func (h *System) showTable(title string, entries []string) {
	fmt.Fprintln(h.out)
	h.colors["header"].Fprintln(h.out, title)
	if len(entries) == 0 {
		h.colors["warning"].Fprintln(h.out, "  (empty)")
		return
	}
	fmt.Fprintf(h.out, "  %s\n", strings.Join(entries, ", "))
}

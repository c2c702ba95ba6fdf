package main

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	flag "github.com/spf13/pflag"

	"github.com/wallarm/paramgen/internal/payload/encoder"
	"github.com/wallarm/paramgen/internal/payload/placeholder"
)

const cliDescription = `paramgen builds a parameterized URL, request body, JSON or XML document
from a base URL, a list of parameter names and a single data value.

Usage: paramgen [OPTIONS] --url <URL> --data <DATA>

Options:
`

var outputDescriptions = map[string]string{
	"url":     "<url>?<param>=<data>&... (appended with '&' if the URL has a query)",
	"bodyurl": "<param>=<data>&... without the URL",
	"nice":    "<url>/<param>/<data> for the last param",
	"json":    "JSON object {\"<param>\": \"<data>\", ...}",
	"xml":     "XML document <root><param>data</param>...</root>",
}

var encodeDescriptions = map[string]string{
	"none":    "data is used as is",
	"url":     "URI component percent-encoding",
	"2url":    "URI component percent-encoding applied twice",
	"html":    "numeric character references for <, >, & and U+00A0-U+9999",
	"2html":   "numeric character references applied twice",
	"htmlurl": "numeric character references, then percent-encoding",
}

func outputNames() []string {
	return placeholder.Names()
}

func encodeNames() []string {
	return encoder.Names()
}

func usage(w io.Writer, flags *flag.FlagSet) {
	fmt.Fprint(w, cliDescription)
	fmt.Fprint(w, flags.FlagUsages())

	fmt.Fprintln(w, "\nOutput formats:")
	printNamesTable(w, outputNames(), outputDescriptions)

	fmt.Fprintln(w, "\nEncodings:")
	printNamesTable(w, encodeNames(), encodeDescriptions)
}

func printNamesTable(w io.Writer, names []string, descriptions map[string]string) {
	table := tablewriter.NewWriter(w)
	table.Header("Name", "Description")

	for _, name := range names {
		table.Append([]string{name, descriptions[name]})
	}

	table.Render()
}

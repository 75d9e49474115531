// Command layreport renders a layout scan trace as a markdown report,
// optionally rendered to HTML, writing any output file atomically.
package main

import (
	"bytes"
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"os"

	"github.com/google/renameio"
	"github.com/pborman/getopt"
	"github.com/russross/blackfriday"

	"github.com/jcorbin/layscan/internal/laydrive"
)

func main() {
	var (
		outPath = getopt.StringLong("out", 'o', "", "write the report to FILE instead of stdout", "FILE")
		asHTML  = getopt.BoolLong("html", 'H', "render the report to HTML")
		withRaw = getopt.BoolLong("raw", 'r', "include raw tokens in the trace")
		title   = getopt.StringLong("title", 't', "layout scan report", "report TITLE", "TITLE")
	)
	getopt.SetParameters("[SOURCE]")
	getopt.Parse()

	log.SetFlags(0)

	in, name := io.Reader(os.Stdin), "stdin"
	if args := getopt.Args(); len(args) > 0 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			log.Fatalf("unable to open %v: %v", args[0], err)
		}
		defer f.Close()
		in, name = f, args[0]
	}

	src, err := ioutil.ReadAll(in)
	if err != nil {
		log.Fatalf("read error: %v", err)
	}

	report := buildReport(*title, name, string(src), *withRaw)

	out := report
	if *asHTML {
		out = blackfriday.Run(report, blackfriday.WithExtensions(0|
			blackfriday.FencedCode|
			blackfriday.Tables|
			blackfriday.Autolink|
			blackfriday.SpaceHeadings|
			blackfriday.HeadingIDs))
	}

	if *outPath != "" {
		if err := renameio.WriteFile(*outPath, out, 0644); err != nil {
			log.Fatalf("unable to write %v: %v", *outPath, err)
		}
		return
	}
	if _, err := os.Stdout.Write(out); err != nil {
		log.Fatalf("write error: %v", err)
	}
}

// buildReport drives the scanner over src and lays the trace out as a
// markdown document: the source in a fenced block, then a step table.
func buildReport(title, name, src string, withRaw bool) []byte {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "# %s\n\n", title)
	fmt.Fprintf(&buf, "Source: `%s`\n\n", name)
	fmt.Fprintf(&buf, "```\n%s", src)
	if len(src) > 0 && src[len(src)-1] != '\n' {
		buf.WriteString("\n")
	}
	buf.WriteString("```\n\n")

	buf.WriteString("## Trace\n\n")
	buf.WriteString("| # | offset | token | text | depth |\n")
	buf.WriteString("|--:|-------:|-------|------|------:|\n")

	d := laydrive.New(src)
	n := 0
	for {
		step, ok := d.Next()
		if !ok {
			break
		}
		if !step.Virtual && !withRaw {
			continue
		}
		n++
		kind := "raw"
		if step.Virtual {
			kind = step.Sym.String()
		}
		fmt.Fprintf(&buf, "| %v | %v | %s | `%q` | %v |\n",
			n, step.Offset, kind, step.Text, step.Depth)
	}

	fmt.Fprintf(&buf, "\nFinal stack: %v\n", d.Stack())
	return buf.Bytes()
}

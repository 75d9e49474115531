// Command layscan runs the layout scanner over a source file and
// prints the resulting token stream, one step per line. It is a
// development aid: a request-set heuristic stands in for the generated
// parser, so the trace shows what the scanner would offer, not a full
// parse.
package main

import (
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"os"

	"github.com/jcorbin/layscan/internal/laydrive"
	"github.com/jcorbin/layscan/internal/layutil"
)

func main() {
	var (
		out     = &layutil.ErrWriter{Writer: os.Stdout}
		raw     bool
		verbose bool
	)

	flag.BoolVar(&raw, "raw", false, "print raw tokens too")
	flag.BoolVar(&verbose, "v", false, "enable verbose output")
	flag.Parse()

	logOut := layutil.PrefixWriter("> log: ", out)
	defer logOut.Close()
	log.SetOutput(logOut)
	log.SetFlags(0)

	in := io.Reader(os.Stdin)
	if name := flag.Arg(0); name != "" && name != "-" {
		f, err := os.Open(name)
		if err != nil {
			log.Fatalf("unable to open %v: %v", name, err)
		}
		defer f.Close()
		in = f
	}

	src, err := ioutil.ReadAll(in)
	if err != nil {
		log.Fatalf("read error: %v", err)
	}

	d := laydrive.New(string(src))
	n := 0
	for {
		step, ok := d.Next()
		if !ok {
			break
		}
		if !step.Virtual && !raw {
			continue
		}
		n++
		if step.Virtual {
			fmt.Fprintf(out, "%v. @%v %v %q\n", n, step.Offset, step.Sym, step.Text)
		} else {
			fmt.Fprintf(out, "%v. @%v raw %q\n", n, step.Offset, step.Text)
		}
		if verbose {
			fmt.Fprintf(out, "   stack: %v\n", d.Stack())
		}
	}

	if out.Err != nil {
		log.Fatalf("write error: %v", out.Err)
	}
}

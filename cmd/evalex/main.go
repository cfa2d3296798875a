package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"golang.org/x/term"

	"github.com/zephyrtronium/evalex"
)

func main() {
	log.SetFlags(0)
	var (
		inname, verb, prompt      string
		strict, rpow              bool
		echo, rpn, dump, failexit bool
	)
	flag.StringVar(&inname, "in", "", "input file (default stdin if no args given)")
	flag.StringVar(&verb, "fmt", "%g", "result formatting string")
	flag.BoolVar(&strict, "strict", false, "reject unbalanced parentheses and missing operands")
	flag.BoolVar(&rpow, "rpow", false, "make ^ right-associative")
	flag.BoolVar(&echo, "echo", false, "print parse trees")
	flag.BoolVar(&rpn, "rpn", false, "print postfix forms")
	flag.BoolVar(&dump, "dump", false, "dump parse trees in full")
	flag.StringVar(&prompt, "prompt", "auto", "show prompts for input lines: auto, on, or off")
	flag.BoolVar(&failexit, "e", false, "exit with status 1 if any expression fails")
	flag.Parse()

	c := calc{
		out:  os.Stdout,
		errs: os.Stderr,
		verb: verb + "\n",
		echo: echo,
		rpn:  rpn,
		dump: dump,
	}
	if strict {
		c.opts = append(c.opts, evalex.Strict())
	}
	if rpow {
		c.opts = append(c.opts, evalex.RightAssocPow())
	}

	ok := true
	for _, arg := range flag.Args() {
		ok = c.eval(arg) && ok
	}

	f, err := infile(inname, flag.NArg() == 0)
	if err != nil {
		log.Fatal(err)
	}
	if f != nil {
		show, err := showPrompt(prompt, f)
		if err != nil {
			log.Fatal(err)
		}
		lok, err := c.loop(f, show)
		if err != nil {
			log.Fatal(err)
		}
		ok = lok && ok
	}
	if failexit && !ok {
		os.Exit(1)
	}
}

const (
	firstPrompt = "Enter an expression to evaluate or type 'exit' to quit: "
	nextPrompt  = "\nEnter another expression or type 'exit' to quit: "
)

// calc evaluates expressions and reports their results. verb is the format
// for results, including the trailing newline.
type calc struct {
	out  io.Writer
	errs io.Writer
	verb string
	opts []evalex.Option

	echo, rpn, dump bool
}

// eval evaluates one expression and prints its result or error. The result
// is false if the expression failed.
func (c *calc) eval(src string) bool {
	e, err := evalex.Compile(src, c.opts...)
	if err != nil {
		fmt.Fprintln(c.errs, "Error:", err)
		return false
	}
	if c.rpn {
		fmt.Fprintf(c.out, "%s : ", evalex.FormatTokens(e.Postfix()))
	}
	if c.echo {
		fmt.Fprintf(c.out, "%v : ", e)
	}
	if c.dump {
		spew.Fdump(c.out, e.Tree())
	}
	r, err := e.Eval()
	if err != nil {
		if c.rpn || c.echo {
			fmt.Fprintln(c.out)
		}
		fmt.Fprintln(c.errs, "Error:", err)
		return false
	}
	fmt.Fprintf(c.out, "Result: "+c.verb, r)
	return true
}

// loop evaluates each line of in until EOF or a line reading exit. Blank
// lines are skipped.
func (c *calc) loop(in io.Reader, prompt bool) (bool, error) {
	sc := bufio.NewScanner(in)
	p := firstPrompt
	ok := true
	for {
		if prompt {
			fmt.Fprint(c.out, p)
			p = nextPrompt
		}
		if !sc.Scan() {
			break
		}
		line := strings.TrimSpace(sc.Text())
		if line == "exit" {
			break
		}
		if line == "" {
			continue
		}
		ok = c.eval(line) && ok
	}
	if prompt {
		fmt.Fprintln(c.out)
	}
	return ok, sc.Err()
}

// showPrompt decides whether to prompt for input lines. In auto mode, prompts
// are shown only when reading from a terminal.
func showPrompt(mode string, f *os.File) (bool, error) {
	switch mode {
	case "on":
		return true, nil
	case "off":
		return false, nil
	case "auto":
		return term.IsTerminal(int(f.Fd())), nil
	default:
		return false, fmt.Errorf(`-prompt must be "auto", "on", or "off", not %q`, mode)
	}
}

func infile(inname string, std bool) (*os.File, error) {
	switch {
	case inname != "" && inname != "-":
		return os.Open(inname)
	case inname == "-", std:
		return os.Stdin, nil
	}
	return nil, nil
}

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"datum/src/internal/interpret"
)

// noResult is printed for lines that yield no date. Misses still
// produce a line so batch output stays aligned with the input.
const noResult = "none"

var (
	okColor   = color.New(color.FgGreen)
	missColor = color.New(color.FgYellow)
)

// interactive reports whether stdin is a terminal, the signal to
// prompt instead of streaming.
func interactive() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// runInteractive prompts per line and echoes each input together with
// its decoding. Hits render green, misses yellow; color drops out on
// its own when out is not a terminal.
func runInteractive(in io.Reader, out io.Writer) error {
	sc := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "--> ")
		if !sc.Scan() {
			break
		}
		line := sc.Text()
		res, ok := decode(line)
		if ok {
			res = okColor.Sprint(res)
		} else {
			res = missColor.Sprint(res)
		}
		fmt.Fprintf(out, "\t%s => %s\n", line, res)
	}
	return sc.Err()
}

// runBatch prints one bare result per input line, uncolored so the
// output can be piped on.
func runBatch(in io.Reader, out io.Writer) error {
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		res, _ := decode(sc.Text())
		fmt.Fprintln(out, res)
	}
	return sc.Err()
}

// decode renders one line, reporting whether it carried a date. Every
// failure renders as the fixed no-result form.
func decode(line string) (string, bool) {
	d, err := interpret.Date(line)
	if err != nil {
		return noResult, false
	}
	return d.String(), true
}

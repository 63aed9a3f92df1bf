package main

import (
	"fmt"
	"io"
	"os"

	"github.com/graeme-hill/calcstuff-go/lib"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, out io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(out, "Usage: calculator [expression]")
		return 0
	}
	if len(args) > 1 {
		fmt.Fprintln(out, "Error: expected only one argument.")
		return 0
	}

	result, err := lib.Evaluate(args[0])
	if err != nil {
		fmt.Fprintf(out, "Error: %s\n", err)
		return 1
	}
	fmt.Fprintf(out, "= %d\n", result)
	return 0
}

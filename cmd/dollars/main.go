// Command dollars parses dollar amounts and prints their total.
//
// Usage:
//
//	dollars [-strict] [-verbose] [amount ...]
//
// Amounts are read from the arguments or, when there are none, one per line
// from the standard input. Invalid amounts are logged and skipped unless
// -strict is set.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
)

func main() {
	strict := flag.Bool("strict", false, "fail on the first invalid amount")
	verbose := flag.Bool("verbose", false, "enable debug logging")
	flag.Parse()

	logger, err := newLogger(*verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "creating logger: %v\n", err)
		os.Exit(2)
	}

	t := totaler{logger: logger, strict: *strict}
	err = t.run(flag.Args(), os.Stdin, os.Stdout)
	if err != nil {
		logger.Error("totalling amounts", zap.Error(err))
	}
	_ = logger.Sync()
	if err != nil {
		os.Exit(1)
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

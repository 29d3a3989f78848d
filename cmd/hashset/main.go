package main

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/noncombatant/hashset/log"
)

func usage(out io.Writer) {
	fmt.Fprintf(out, `usage: %s <command> [arguments]

commands:
  uniformity [wordfile]   compare chain-length distributions across hash
                          functions (default wordfile: %s)
  dupes <directory>       report hard-linked duplicate files under directory
  repl                    interactive word/definition dictionary
`, os.Args[0], defaultWordFile)
}

func main() {
	if err := log.InitLogger(); err != nil {
		fmt.Fprintln(os.Stderr, "logger init failed:", err)
		os.Exit(1)
	}

	if len(os.Args) < 2 {
		usage(os.Stderr)
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "uniformity":
		wordFile := defaultWordFile
		if len(os.Args) > 2 {
			wordFile = os.Args[2]
		}
		err = runUniformity(wordFile)
	case "dupes":
		if len(os.Args) < 3 {
			usage(os.Stderr)
			os.Exit(2)
		}
		err = runDupes(os.Args[2])
	case "repl":
		err = runREPL()
	case "help", "-h", "--help":
		usage(os.Stdout)
	default:
		usage(os.Stderr)
		os.Exit(2)
	}
	if err != nil {
		log.Logger.Fatal("command failed", zap.String("command", os.Args[1]), zap.Error(err))
	}
}

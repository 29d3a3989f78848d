package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/peterh/liner"

	"github.com/noncombatant/hashset"
	"github.com/noncombatant/hashset/hashutil"
)

const replBuckets = 64

// runREPL is an interactive word/definition dictionary backed by a Map.
func runREPL() error {
	dict, err := hashset.NewMap[string, string](replBuckets, hashutil.String, strings.Compare)
	if err != nil {
		return err
	}

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	if isatty.IsTerminal(os.Stdin.Fd()) {
		fmt.Println("commands: set <word> <definition>, get <word>, del <word>, list, quit")
	}

	for {
		input, err := line.Prompt("dict> ")
		if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		line.AppendHistory(input)

		fields := strings.SplitN(input, " ", 3)
		switch fields[0] {
		case "set":
			if len(fields) < 3 {
				fmt.Println("usage: set <word> <definition>")
				continue
			}
			if old, ok := dict.Set(fields[1], fields[2]); ok {
				fmt.Printf("replaced %q\n", old)
			}
		case "get":
			if len(fields) < 2 {
				fmt.Println("usage: get <word>")
				continue
			}
			if definition, ok := dict.Get(fields[1]); ok {
				fmt.Println(definition)
			} else {
				fmt.Printf("%q is not defined\n", fields[1])
			}
		case "del":
			if len(fields) < 2 {
				fmt.Println("usage: del <word>")
				continue
			}
			if old, ok := dict.Delete(fields[1]); ok {
				fmt.Printf("deleted %q\n", old)
			}
		case "list":
			dict.Range(func(word, definition string) bool {
				fmt.Printf("%s: %s\n", word, definition)
				return true
			})
		case "quit", "exit":
			return nil
		default:
			fmt.Printf("unknown command %q\n", fields[0])
		}
	}
}

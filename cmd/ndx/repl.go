// repl.go: interactive shell for index/shape queries.
//
// Each line is `<index> @ <shape>`; the shell prints the output shape, the
// reduced index and whether the selection is empty:
//
//	==> 1, :, ... @ (3, 4, 5, 6)
//	shape:  (4, 5, 6)
//	reduce: 1
//	empty:  false
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/ruancomelli/ndindex"
)

const (
	historyFile = ".ndx_history"
	promptMain  = "==> "
)

var banner = fmt.Sprintf("ndindex %s REPL\nCtrl+C cancels input, Ctrl+D exits. Type :quit to exit.", ndindex.Version)

const helpText = `
Enter an index expression, '@', and a shape:

  1, :, ... @ (3, 4, 5, 6)
  ::-1 @ 10
  [[True, False], [False, True]], 0 @ (2, 2, 5)

REPL commands:
  :help    Show this help
  :quit    Exit the REPL
`

func red(s string) string  { return "\x1b[31m" + s + "\x1b[0m" }
func blue(s string) string { return "\x1b[94m" + s + "\x1b[0m" }

func replCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "interactive index/shape shell",
		RunE: func(cmd *cobra.Command, args []string) error {
			runRepl()
			return nil
		},
	}
}

func runRepl() {
	fmt.Println(banner)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	for {
		line, err := ln.Prompt(promptMain)
		if errors.Is(err, io.EOF) {
			fmt.Println()
			return
		}
		if err != nil {
			continue
		}
		code := strings.TrimSpace(line)
		if code == "" {
			continue
		}
		if strings.HasPrefix(code, ":") {
			switch strings.ToLower(code) {
			case ":quit":
				return
			case ":help":
				fmt.Print(helpText)
			default:
				fmt.Println("unknown command. Type :help or :quit.")
			}
			continue
		}

		if out, err := evalLine(code); err != nil {
			fmt.Fprintln(os.Stderr, red(err.Error()))
		} else {
			fmt.Print(out)
			ln.AppendHistory(code)
		}
	}
}

func evalLine(code string) (string, error) {
	idxText, shapeText, ok := strings.Cut(code, "@")
	if !ok {
		return "", fmt.Errorf("expected '<index> @ <shape>' (try :help)")
	}
	idx, err := ndindex.ParseText(strings.TrimSpace(idxText))
	if err != nil {
		return "", err
	}
	shape, err := parseShapeArg(strings.TrimSpace(shapeText))
	if err != nil {
		return "", err
	}

	var b strings.Builder
	out, err := idx.NewShape(shape)
	if err != nil {
		return "", err
	}
	fmt.Fprintf(&b, "shape:  %s\n", blue(formatShape(out)))
	reduced, err := idx.Reduce(shape)
	if err != nil {
		return "", err
	}
	fmt.Fprintf(&b, "reduce: %s\n", blue(reduced.String()))
	empty, err := idx.IsEmpty(shape)
	if err != nil {
		return "", err
	}
	fmt.Fprintf(&b, "empty:  %s\n", blue(fmt.Sprintf("%v", empty)))
	return b.String(), nil
}

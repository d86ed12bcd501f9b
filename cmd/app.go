// Package cmd implements the split CLI application to share expenses in a group.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/splitter"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&initCmd{}, "ledger")
	c.Register(&addCmd{}, "ledger")
	c.Register(&fmtCmd{}, "ledger")

	c.Register(newLogCmd(), "reports")
	c.Register(newBalancesCmd(), "reports")
	c.Register(newSummaryCmd(), "reports")
	c.Register(&reportCmd{}, "reports")

	c.Register(&topicCmd{}, "help")
	c.Register(&assistCmd{}, "help")
}

// IsCommand reports whether name is a command registered in c.
func IsCommand(c *subcommands.Commander, name string) bool {
	found := false
	c.VisitCommands(func(_ *subcommands.CommandGroup, cmd subcommands.Command) {
		found = found || cmd.Name() == name
	})
	return found
}

// stdout is where commands print their results.
var stdout io.Writer = os.Stdout

// DecodeLedger decodes the ledger from the application's ledger file.
func DecodeLedger() (*splitter.Ledger, error) {
	f, err := os.Open(*ledgerFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("ledger file %q does not exist, create it with 'split init'", *ledgerFile)
		}
		return nil, fmt.Errorf("could not open ledger file %q: %w", *ledgerFile, err)
	}
	defer f.Close()

	ledger, err := splitter.DecodeLedger(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode ledger file %q: %w", *ledgerFile, err)
	}
	return ledger, nil
}

// EncodeLedger writes the whole ledger in the application's ledger file.
//
// The ledger is written to a temporary file first so that a failure never
// leaves a truncated ledger behind.
func EncodeLedger(l *splitter.Ledger) error {
	tmp, err := os.CreateTemp(filepath.Dir(*ledgerFile), ".split-*.jsonl")
	if err != nil {
		return fmt.Errorf("could not create ledger file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := splitter.EncodeLedger(tmp, l); err != nil {
		tmp.Close()
		return fmt.Errorf("could not write ledger file %q: %w", *ledgerFile, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("could not write ledger file %q: %w", *ledgerFile, err)
	}
	if err := os.Rename(tmp.Name(), *ledgerFile); err != nil {
		return fmt.Errorf("could not replace ledger file %q: %w", *ledgerFile, err)
	}
	log.Printf("wrote %d expenses to %s", l.Len(), *ledgerFile)
	return nil
}

// AppendExpense appends a single, already validated, expense to the application's ledger file.
//
// A ledger file edited by hand may lack its final newline, it is restored
// before the expense line.
func AppendExpense(e splitter.Expense) error {
	f, err := os.OpenFile(*ledgerFile, os.O_APPEND|os.O_RDWR, 0644)
	if err != nil {
		return fmt.Errorf("could not open ledger file %q: %w", *ledgerFile, err)
	}
	defer f.Close()

	if err := terminateLastLine(f); err != nil {
		return fmt.Errorf("could not write to ledger file %q: %w", *ledgerFile, err)
	}
	if err := splitter.EncodeExpense(f, e); err != nil {
		return fmt.Errorf("could not write to ledger file %q: %w", *ledgerFile, err)
	}
	log.Printf("appended expense to %s: %v", *ledgerFile, e)
	return nil
}

// terminateLastLine writes a newline at the end of f unless it is empty or
// already ends with one.
func terminateLastLine(f *os.File) error {
	info, err := f.Stat()
	if err != nil {
		return err
	}
	if info.Size() == 0 {
		return nil
	}
	last := make([]byte, 1)
	if _, err := f.ReadAt(last, info.Size()-1); err != nil {
		return err
	}
	if last[0] == '\n' {
		return nil
	}
	_, err = f.Write([]byte{'\n'})
	return err
}

// printMarkdown prints markdown to stdout, rendered for the terminal unless
// plain output was requested.
func printMarkdown(md string) {
	fprintMarkdown(stdout, md)
}

func fprintMarkdown(w io.Writer, md string) {
	if *plain {
		fmt.Fprint(w, md)
		return
	}
	out, err := glamour.Render(md, "auto")
	if err != nil {
		log.Printf("could not render markdown: %v", err)
		fmt.Fprint(w, md)
		return
	}
	fmt.Fprint(w, out)
}

// reportTitle is the title of reports, named after the ledger file.
func reportTitle() string {
	name := filepath.Base(*ledgerFile)
	return fmt.Sprintf("Shared expenses (%s)", strings.TrimSuffix(name, filepath.Ext(name)))
}

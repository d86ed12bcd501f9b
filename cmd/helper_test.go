package cmd

import (
	"bytes"
	"context"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/subcommands"
)

const testInit = `{"command":"init","currency":"USD","participants":["A","B","C"]}
`

// createTempLedger creates a ledger file with content and makes it the
// application's ledger file for the duration of the test.
func createTempLedger(t *testing.T, content string) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "test_ledger.jsonl")
	if content != "" {
		if err := os.WriteFile(name, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write temp file: %v", err)
		}
	}

	oldLedgerFile, oldPlain := ledgerFile, *plain
	ledgerFile = &name
	*plain = true
	t.Cleanup(func() {
		ledgerFile = oldLedgerFile
		*plain = oldPlain
	})
	return name
}

// run parses args for c, executes it and returns its status and standard output.
func run(t *testing.T, c subcommands.Command, args ...string) (subcommands.ExitStatus, string) {
	t.Helper()
	f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(f)
	if err := f.Parse(args); err != nil {
		t.Fatalf("invalid arguments %q: %v", args, err)
	}

	var out bytes.Buffer
	oldStdout := stdout
	stdout = &out
	defer func() { stdout = oldStdout }()

	return c.Execute(context.Background(), f), out.String()
}

func readFile(t *testing.T, name string) string {
	t.Helper()
	content, err := os.ReadFile(name)
	if err != nil {
		t.Fatalf("Failed to read ledger file: %v", err)
	}
	return string(content)
}

package cmd

import (
	"strings"
	"testing"

	"github.com/google/subcommands"
)

func TestInitCmd(t *testing.T) {
	name := createTempLedger(t, "")

	status, out := run(t, &initCmd{}, " Alice", "Bob", "Carol ")
	if status != subcommands.ExitSuccess {
		t.Fatalf("Expected ExitSuccess, got %v", status)
	}
	if want := "Registered Alice, Bob, Carol sharing expenses in USD.\n"; out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
	want := `{"command":"init","currency":"USD","participants":["Alice","Bob","Carol"]}` + "\n"
	if got := readFile(t, name); got != want {
		t.Errorf("ledger file = %s, want %s", got, want)
	}

	if status, _ := run(t, &initCmd{}, "Dave", "Eve"); status != subcommands.ExitFailure {
		t.Errorf("init over an existing ledger: got %v, want ExitFailure", status)
	}
	if got := readFile(t, name); got != want {
		t.Errorf("a failed init must not change the ledger, got %s", got)
	}

	if status, _ := run(t, &initCmd{}, "-force", "Dave", "Eve"); status != subcommands.ExitSuccess {
		t.Errorf("init -force: got %v, want ExitSuccess", status)
	}
}

func TestInitCmd_Invalid(t *testing.T) {
	for _, args := range [][]string{
		{"Alone"},
		{"Alice", "alice ", "Alice"},
		{"Alice", " "},
	} {
		createTempLedger(t, "")
		if status, _ := run(t, &initCmd{}, args...); status != subcommands.ExitUsageError {
			t.Errorf("init %q: got %v, want ExitUsageError", args, status)
		}
	}
}

func TestAddCmd(t *testing.T) {
	name := createTempLedger(t, testInit)

	status, out := run(t, &addCmd{}, "-payer", "A", "-a", "90", "-m", "Dinner")
	if status != subcommands.ExitSuccess {
		t.Fatalf("Expected ExitSuccess, got %v", status)
	}
	if want := "Added: A paid $90.00 for 'Dinner' shared with 3 people.\n"; out != want {
		t.Errorf("output = %q, want %q", out, want)
	}

	if status, _ := run(t, &addCmd{}, "-payer", "B", "-a", "12.5", "-s", "C, B,C"); status != subcommands.ExitSuccess {
		t.Fatalf("Expected ExitSuccess, got %v", status)
	}

	want := testInit +
		`{"command":"expense","payer":"A","description":"Dinner","sharedBy":["A","B","C"],"amount":90,"currency":"USD"}` + "\n" +
		`{"command":"expense","payer":"B","sharedBy":["C","B"],"amount":12.5,"currency":"USD"}` + "\n"
	if got := readFile(t, name); got != want {
		t.Errorf("ledger file mismatch.\nGot:\n%s\nWant:\n%s", got, want)
	}
}

func TestAddCmd_NoTrailingNewline(t *testing.T) {
	name := createTempLedger(t, strings.TrimSuffix(testInit, "\n"))

	if status, _ := run(t, &addCmd{}, "-payer", "A", "-a", "90", "-m", "Dinner"); status != subcommands.ExitSuccess {
		t.Fatalf("Expected ExitSuccess, got %v", status)
	}
	want := testInit +
		`{"command":"expense","payer":"A","description":"Dinner","sharedBy":["A","B","C"],"amount":90,"currency":"USD"}` + "\n"
	if got := readFile(t, name); got != want {
		t.Errorf("ledger file mismatch.\nGot:\n%s\nWant:\n%s", got, want)
	}
	if _, err := DecodeLedger(); err != nil {
		t.Errorf("DecodeLedger() after add: %v", err)
	}
}

func TestAddCmd_Rejected(t *testing.T) {
	testCases := []struct {
		name   string
		args   []string
		status subcommands.ExitStatus
	}{
		{"missing payer", []string{"-a", "10"}, subcommands.ExitUsageError},
		{"not a number", []string{"-payer", "A", "-a", "ten"}, subcommands.ExitUsageError},
		{"zero amount", []string{"-payer", "A", "-a", "0"}, subcommands.ExitFailure},
		{"sub-cent amount", []string{"-payer", "A", "-a", "1.001"}, subcommands.ExitFailure},
		{"unknown payer", []string{"-payer", "Z", "-a", "10"}, subcommands.ExitFailure},
		{"unknown sharer", []string{"-payer", "A", "-a", "10", "-s", "B,Z"}, subcommands.ExitFailure},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			name := createTempLedger(t, testInit)
			if status, _ := run(t, &addCmd{}, tc.args...); status != tc.status {
				t.Errorf("got %v, want %v", status, tc.status)
			}
			if got := readFile(t, name); got != testInit {
				t.Errorf("a rejected expense must not be written, got %s", got)
			}
		})
	}
}

func TestAddCmd_NoLedger(t *testing.T) {
	createTempLedger(t, "")
	if status, _ := run(t, &addCmd{}, "-payer", "A", "-a", "10"); status != subcommands.ExitFailure {
		t.Errorf("got %v, want ExitFailure", status)
	}
}

func TestFmtCmd(t *testing.T) {
	name := createTempLedger(t, `{"participants":["A"," B","C"],"command":"init","currency":"USD"}

{"command":"expense","amount":90.00,"payer":"A ","sharedBy":["A","B","B","C"],"description":"Dinner"}
`)

	if status, _ := run(t, &fmtCmd{}); status != subcommands.ExitSuccess {
		t.Fatalf("Expected ExitSuccess, got %v", status)
	}
	want := testInit +
		`{"command":"expense","payer":"A","description":"Dinner","sharedBy":["A","B","C"],"amount":90,"currency":"USD"}` + "\n"
	if got := readFile(t, name); got != want {
		t.Errorf("Formatted ledger mismatch.\nGot:\n%s\nWant:\n%s", got, want)
	}
}

func TestFmtCmd_Invalid(t *testing.T) {
	content := testInit + `{"command":"expense","payer":"A","amount":-3,"sharedBy":["B"]}` + "\n"
	name := createTempLedger(t, content)

	if status, _ := run(t, &fmtCmd{}); status != subcommands.ExitFailure {
		t.Errorf("got %v, want ExitFailure", status)
	}
	if got := readFile(t, name); got != content {
		t.Errorf("an invalid ledger must be left untouched, got %s", got)
	}
}

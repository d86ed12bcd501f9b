package splitter

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// amountCmd is a specialized struct to read an amount stored in two fields.
type amountCmd struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

func (a amountCmd) Money() Money {
	return M(a.Amount, a.Currency)
}

// initCmd is the first line of a ledger file, it registers the participants.
type initCmd struct {
	Command      CommandType `json:"command"`
	Currency     string      `json:"currency"`
	Participants []string    `json:"participants"`
}

// MarshalJSON implements the json.Marshaler interface for initCmd.
func (c initCmd) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("command", CmdInit)
	w.Append("currency", c.Currency)
	w.Append("participants", c.Participants)
	return w.MarshalJSON()
}

// ErrMissingInit is returned when a ledger stream does not start with an init command.
var ErrMissingInit = errors.New("ledger must start with an init command")

// DecodeLedger reads a ledger from a stream of JSONL data.
//
// The first non-empty line must be an init command, every following line an
// expense. Expenses are validated as they are appended: the first invalid line
// stops the decoding and is reported with its line number.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	var ledger *Ledger
	scanner := bufio.NewScanner(r)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue // Skip empty lines
		}

		var identifier struct {
			Command CommandType `json:"command"`
		}
		if err := json.Unmarshal(lineBytes, &identifier); err != nil {
			return nil, fmt.Errorf("line %d: could not identify command in %q: %w", lineNo, string(lineBytes), err)
		}

		switch identifier.Command {
		case CmdInit:
			if ledger != nil {
				return nil, fmt.Errorf("line %d: participants are registered twice", lineNo)
			}
			var c initCmd
			if err := json.Unmarshal(lineBytes, &c); err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			participants, err := RegisterParticipants(c.Participants...)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			if ledger, err = NewLedger(participants, c.Currency); err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
		case CmdExpense:
			if ledger == nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, ErrMissingInit)
			}
			var e Expense
			if err := json.Unmarshal(lineBytes, &e); err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			if _, err := ledger.Append(e); err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
		default:
			return nil, fmt.Errorf("line %d: unknown command: %q", lineNo, identifier.Command)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}
	if ledger == nil {
		return nil, ErrMissingInit
	}
	return ledger, nil
}

// EncodeInit writes the init line registering the participants of l.
func EncodeInit(w io.Writer, l *Ledger) error {
	return encodeLine(w, initCmd{Currency: l.currency, Participants: l.participants.Names()})
}

// EncodeExpense writes a single expense followed by a newline, in JSONL format.
func EncodeExpense(w io.Writer, e Expense) error {
	return encodeLine(w, e)
}

// EncodeLedger writes the whole ledger in JSONL format: the init line and
// then every expense in insertion order.
func EncodeLedger(w io.Writer, l *Ledger) error {
	if err := EncodeInit(w, l); err != nil {
		return err
	}
	for _, e := range l.Expenses() {
		if err := EncodeExpense(w, e); err != nil {
			return err
		}
	}
	return nil
}

func encodeLine(w io.Writer, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal %T: %w", v, err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write %T: %w", v, err)
	}
	return nil
}

package agent

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/etnz/splitter"
	"github.com/etnz/splitter/docs"
	"github.com/etnz/splitter/renderer"
	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-2.5-pro"

// newFacilitator creates the expert that talks to the user and delegates to the others.
func newFacilitator(model string, experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are in charge of the conversation with a group of friends sharing expenses.

			Learn about the experts' skills from the Tools and ask them questions.
			They keep the context of your previous questions.

			Users want to record what they paid, know where they stand and how to settle up.
			Before recording an expense, make sure you know who paid, how much, and who shares it.
			Answer with short markdown.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewAccountant creates the expert in charge of the session's ledger.
//
// Every expense it records is validated by the session and then passed to
// onAdd, which is expected to persist it.
func NewAccountant(model string, s *splitter.Session, onAdd func(splitter.Expense) error) *Expert {
	lib := LedgerTools(s, onAdd)
	return &Expert{
		Name: "Accountant",
		Description: `This is the Accountant. He reads and records the group's expenses.
		He knows the participants, every expense, the balances and who owes whom.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are the accountant of a group sharing expenses.
				Use the Tools to read the ledger and to record new expenses.
				Pardon the approximative language of your colleagues and figure out what they meant.
				Participant names must match the registered ones exactly.

				This is how the ledger works:

				` + must(docs.GetTopics("ledger", "balances", "settlement"))}}},
		},
		Library: NewLibrary(lib),
	}
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// LedgerTools returns the functions that read and write the session's ledger.
func LedgerTools(s *splitter.Session, onAdd func(splitter.Expense) error) []Function {
	return []Function{
		reportTool("participants", "Lists the registered participants, comma separated.", s, func(l *splitter.Ledger) string {
			return l.Participants().String()
		}),
		reportTool("expenses", "Returns the expense log as a markdown table.", s, func(l *splitter.Ledger) string {
			return renderer.RenderExpenses(renderer.NewReport("", l))
		}),
		reportTool("balances", "Returns what each participant paid, their share and their balance as a markdown table. A positive balance means the participant is owed money.", s, func(l *splitter.Ledger) string {
			return renderer.RenderBalances(renderer.NewReport("", l))
		}),
		reportTool("settlement", "Returns the list of transfers that settles every debt.", s, func(l *splitter.Ledger) string {
			return renderer.RenderSettlement(renderer.NewReport("", l))
		}),
		addExpenseTool(s, onAdd),
	}
}

// reportTool declares a function without parameters rendering a snapshot of the ledger.
func reportTool(name, description string, s *splitter.Session, render func(*splitter.Ledger) string) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        name,
			Description: description,
			Response: &genai.Schema{
				Type: genai.TypeString,
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			l, err := s.Snapshot()
			if err != nil {
				return failure(id, name, err)
			}
			return success(id, name, render(l))
		},
	}
}

func addExpenseTool(s *splitter.Session, onAdd func(splitter.Expense) error) *Func {
	const name = "add_expense"
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        name,
			Description: "Records an expense paid by one participant and shared evenly by others.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"payer": {
						Type:        genai.TypeString,
						Description: "The participant who paid.",
					},
					"amount": {
						Type:        genai.TypeString,
						Description: "The amount paid, as a positive decimal number like 12.50.",
					},
					"description": {
						Type:        genai.TypeString,
						Description: "What was paid for.",
					},
					"sharedBy": {
						Type:        genai.TypeArray,
						Items:       &genai.Schema{Type: genai.TypeString},
						Description: "The participants sharing the expense. The payer is only included if listed.",
					},
				},
				Required: []string{"payer", "amount", "sharedBy"},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "The confirmation of the recorded expense.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			payer, err := stringArg(args, "payer")
			if err != nil {
				return failure(id, name, err)
			}
			amount, err := stringArg(args, "amount")
			if err != nil {
				return failure(id, name, err)
			}
			m, err := splitter.ParseMoney(strings.TrimSpace(amount), "")
			if err != nil {
				return failure(id, name, fmt.Errorf("argument 'amount' must be a decimal number got %q", amount))
			}
			description, _ := args["description"].(string)
			sharedBy, err := stringsArg(args, "sharedBy")
			if err != nil {
				return failure(id, name, err)
			}

			e, err := s.AddExpense(payer, m, description, sharedBy...)
			if err != nil {
				return failure(id, name, err)
			}
			if onAdd != nil {
				if err := onAdd(e); err != nil {
					return failure(id, name, fmt.Errorf("expense was not saved: %w", err))
				}
			}
			log.Printf("assistant added %v", e)
			return success(id, name, "Added: "+e.String())
		},
	}
}

func stringArg(args map[string]any, key string) (string, error) {
	v, ok := args[key]
	if !ok {
		return "", fmt.Errorf("missing argument %q", key)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("argument %q is not a string as expected but %T", key, v)
	}
	return s, nil
}

// stringsArg reads a list of strings, as decoded from JSON.
func stringsArg(args map[string]any, key string) ([]string, error) {
	v, ok := args[key]
	if !ok {
		return nil, fmt.Errorf("missing argument %q", key)
	}
	switch list := v.(type) {
	case []string:
		return list, nil
	case []any:
		result := make([]string, len(list))
		for i, item := range list {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("argument %q must only contain strings got %T", key, item)
			}
			result[i] = s
		}
		return result, nil
	default:
		return nil, fmt.Errorf("argument %q is not a list as expected but %T", key, v)
	}
}

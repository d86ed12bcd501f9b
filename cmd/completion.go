package cmd

import (
	"os"

	"github.com/etnz/splitter"
	"github.com/etnz/splitter/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion describes the split command line for shell completion.
//
// Participant names are read from the ledger file named in cfg, flags are not
// parsed yet when completing.
func Completion(cfg Config) *complete.Command {
	participants := participantsPredictor(cfg.LedgerFile)
	topics, _ := docs.GetAllTopics()
	reports := &complete.Command{}

	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"ledger-file": predict.Files("*.jsonl"),
			"currency":    predict.Set{"USD", "EUR", "GBP", "CHF", "JPY", "CAD", "AUD"},
			"v":           predict.Nothing,
			"plain":       predict.Nothing,
			"model":       predict.Something,
		},
		Sub: map[string]*complete.Command{
			"init": {
				Flags: map[string]complete.Predictor{"force": predict.Nothing},
				Args:  predict.Something,
			},
			"add": {
				Flags: map[string]complete.Predictor{
					"payer": participants,
					"a":     predict.Something,
					"m":     predict.Something,
					"s":     participants,
				},
			},
			"fmt": {},
			"log": {
				Flags: map[string]complete.Predictor{
					"payer": participants,
					"s":     participants,
				},
			},
			"balances": reports,
			"summary":  reports,
			"report": {
				Flags: map[string]complete.Predictor{
					"json": predict.Nothing,
					"path": predict.Set{"$.transfers", "$.balances", "$.total", "$.settled"},
				},
			},
			"topic":  {Args: predict.Set(append(topics, "*"))},
			"assist": {Args: predict.Something},
		},
	}
}

// participantsPredictor predicts the participants registered in the ledger file.
func participantsPredictor(ledgerFile string) complete.Predictor {
	return complete.PredictFunc(func(prefix string) []string {
		f, err := os.Open(ledgerFile)
		if err != nil {
			return nil
		}
		defer f.Close()
		ledger, err := splitter.DecodeLedger(f)
		if err != nil {
			return nil
		}
		return ledger.Participants().Names()
	})
}

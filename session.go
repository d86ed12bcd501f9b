package splitter

import (
	"sync"
)

// Session holds the state of one group sharing expenses: its participants and
// its ledger.
//
// A Session is safe for concurrent use. Writers are serialized and every read
// works on a stable snapshot, so each session behaves as a single logical
// writer. Sessions share nothing with each other.
type Session struct {
	mu       sync.Mutex
	currency string
	ledger   *Ledger // nil until participants are registered.
}

// NewSession creates a session whose amounts are in currency.
func NewSession(currency string) (*Session, error) {
	if !KnownCurrency(currency) {
		return nil, invalid("session", ErrUnknownCurrency)
	}
	return &Session{currency: currency}, nil
}

// ResumeSession creates a session around an existing ledger.
func ResumeSession(l *Ledger) *Session {
	return &Session{currency: l.currency, ledger: l}
}

// RegisterParticipants registers the participants of the session. It can only
// be done once.
func (s *Session) RegisterParticipants(names ...string) (*Participants, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ledger != nil {
		return nil, invalid("participants", ErrAlreadyRegistered)
	}
	p, err := RegisterParticipants(names...)
	if err != nil {
		return nil, err
	}
	l, err := NewLedger(p, s.currency)
	if err != nil {
		return nil, err
	}
	s.ledger = l
	return p, nil
}

// Participants returns the registered participants, or nil.
func (s *Session) Participants() *Participants {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ledger == nil {
		return nil
	}
	return s.ledger.participants
}

// AddExpense validates and appends an expense to the session's ledger.
func (s *Session) AddExpense(payer string, amount Money, description string, sharedBy ...string) (Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ledger == nil {
		return Expense{}, invalid("expense", ErrNotRegistered)
	}
	return s.ledger.Append(NewExpense(payer, amount, description, sharedBy...))
}

// Expenses returns a copy of the expenses in insertion order.
func (s *Session) Expenses() []Expense {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ledger == nil {
		return nil
	}
	return s.ledger.All()
}

// Snapshot returns a copy of the ledger that later expenses will not change.
func (s *Session) Snapshot() (*Ledger, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ledger == nil {
		return nil, invalid("report", ErrNotRegistered)
	}
	return s.ledger.clone(), nil
}

// Report computes the balances and settlement of the session.
func (s *Session) Report() (Report, error) {
	l, err := s.Snapshot()
	if err != nil {
		return Report{}, err
	}
	return GetReport(l), nil
}

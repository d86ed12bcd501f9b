package splitter

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Bounds on the number of participants sharing expenses.
const (
	MinParticipants = 2
	MaxParticipants = 20
)

// Participant identifies a person sharing expenses, by name.
type Participant string

// normalizeName trims the name and puts it in Unicode NFC form, so that the
// same name typed on different keyboards identifies the same participant.
func normalizeName(name string) Participant {
	return Participant(norm.NFC.String(strings.TrimSpace(name)))
}

// Participants is the ordered set of registered participants.
//
// Registration order is significant: it is the order used to list balances
// and to match debtors with creditors.
type Participants struct {
	names []Participant
	index map[Participant]int
}

// RegisterParticipants validates names and returns them as a set of
// participants.
//
// Names are trimmed. It fails with a *ValidationError if there are fewer than
// MinParticipants or more than MaxParticipants names, or if any name is blank
// or appears twice.
func RegisterParticipants(names ...string) (*Participants, error) {
	var errs []error
	if len(names) < MinParticipants {
		errs = append(errs, fmt.Errorf("%w, got %d", ErrTooFewParticipants, len(names)))
	}
	if len(names) > MaxParticipants {
		errs = append(errs, fmt.Errorf("%w, got %d", ErrTooManyParticipants, len(names)))
	}

	p := &Participants{
		names: make([]Participant, 0, len(names)),
		index: make(map[Participant]int, len(names)),
	}
	for i, name := range names {
		n := normalizeName(name)
		if n == "" {
			errs = append(errs, fmt.Errorf("%w: person %d", ErrBlankName, i+1))
			continue
		}
		if _, exists := p.index[n]; exists {
			errs = append(errs, fmt.Errorf("%w: %q", ErrDuplicateName, n))
			continue
		}
		p.index[n] = len(p.names)
		p.names = append(p.names, n)
	}

	if err := invalid("participants", errs...); err != nil {
		return nil, err
	}
	return p, nil
}

// Len returns the number of participants.
func (p *Participants) Len() int { return len(p.names) }

// Has reports whether name is a registered participant.
func (p *Participants) Has(name Participant) bool {
	_, ok := p.index[name]
	return ok
}

// Index returns the registration rank of name, or -1 if not registered.
func (p *Participants) Index(name Participant) int {
	i, ok := p.index[name]
	if !ok {
		return -1
	}
	return i
}

// All iterates over participants in registration order.
func (p *Participants) All() iter.Seq[Participant] {
	return slices.Values(p.names)
}

// Names returns a copy of the participant names in registration order.
func (p *Participants) Names() []string {
	names := make([]string, len(p.names))
	for i, n := range p.names {
		names[i] = string(n)
	}
	return names
}

// String returns the comma separated list of participants.
func (p *Participants) String() string {
	return strings.Join(p.Names(), ", ")
}

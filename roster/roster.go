package roster

// This file contains the opponent registry: the fixed catalog of
// reference engines the gauntlet runs against.

import (
	"fmt"
	"strings"
)

// Protocol identifies the wire protocol an opponent engine speaks.
type Protocol string

const (
	ProtocolUCI Protocol = "uci"
	// ProtocolXBoard is the legacy line-based protocol. Engines speaking
	// it tend to leave scratch files behind after a match.
	ProtocolXBoard Protocol = "xboard"
)

// Opponent describes one reference engine. Opponents are defined at
// process start and never mutated.
type Opponent struct {
	// Stable short identifier used on the command line
	Key string
	// Display name, unique per run
	Name string
	// Path or command used to launch the engine
	Command string
	// Protocol the engine speaks (uci or xboard)
	Protocol Protocol
	// Declared strength estimate
	Rating int
	// Whether an opening book should be supplied for this opponent
	UsesBook bool
}

// UnknownOpponentError is returned when a lookup key matches no
// registered opponent.
type UnknownOpponentError struct {
	Key string
}

func (e *UnknownOpponentError) Error() string {
	return fmt.Sprintf("unknown opponent: %q", e.Key)
}

// Registry is an immutable, insertion-ordered opponent catalog.
// Construct it once at startup and pass it to whatever needs it.
type Registry struct {
	opponents []Opponent
	byKey     map[string]int
}

// NewRegistry builds a registry from the given opponents, preserving
// their order for display.
func NewRegistry(opponents []Opponent) *Registry {
	r := &Registry{
		opponents: opponents,
		byKey:     make(map[string]int, len(opponents)),
	}
	for i, opp := range opponents {
		r.byKey[strings.ToLower(opp.Key)] = i
	}
	return r
}

// Lookup resolves a key case-insensitively.
func (r *Registry) Lookup(key string) (Opponent, error) {
	i, ok := r.byKey[strings.ToLower(key)]
	if !ok {
		return Opponent{}, &UnknownOpponentError{Key: key}
	}
	return r.opponents[i], nil
}

// All returns the opponents in registration order.
func (r *Registry) All() []Opponent {
	return r.opponents
}

// Default returns the standard gauntlet roster, ordered from sanity
// check to ceiling. TSCP predates EPD opening suites and plays from the
// start position instead.
func Default() *Registry {
	return NewRegistry([]Opponent{
		{Key: "tscp", Name: "TSCP", Command: "/engines/tscp", Protocol: ProtocolXBoard, Rating: 1700},
		{Key: "fairymax", Name: "Fairymax", Command: "fairymax", Protocol: ProtocolXBoard, Rating: 2000, UsesBook: true},
		{Key: "crafty", Name: "Crafty", Command: "crafty", Protocol: ProtocolXBoard, Rating: 2300, UsesBook: true},
		{Key: "phalanx", Name: "Phalanx", Command: "phalanx", Protocol: ProtocolXBoard, Rating: 2400, UsesBook: true},
		{Key: "fruit", Name: "Fruit", Command: "/engines/fruit", Protocol: ProtocolUCI, Rating: 2800, UsesBook: true},
		{Key: "stockfish", Name: "Stockfish", Command: "stockfish", Protocol: ProtocolUCI, Rating: 3500, UsesBook: true},
	})
}

// Package sir defines the vertex payload used by epinet's epidemic models:
// the Susceptible / Infected / Resistant compartment of a node.
//
// The zero value is Susceptible, so freshly built graphs start fully
// susceptible. Transition rules belong to the simulation, not to this package.
package sir

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/epinet/core"
)

// State is the compartment of one vertex.
type State int

const (
	// Susceptible vertices can still catch the infection.
	Susceptible State = iota
	// Infected vertices currently spread it.
	Infected
	// Resistant vertices neither catch nor spread it.
	Resistant
)

// ErrUnknownState is returned when text names no compartment.
var ErrUnknownState = errors.New("sir: unknown state")

// States lists every compartment in declaration order.
var States = []State{Susceptible, Infected, Resistant}

// String returns the compartment name.
func (s State) String() string {
	switch s {
	case Susceptible:
		return "Susceptible"
	case Infected:
		return "Infected"
	case Resistant:
		return "Resistant"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Valid reports whether s is one of the three compartments.
func (s State) Valid() bool {
	return s >= Susceptible && s <= Resistant
}

// ParseState accepts a compartment name or its initial, case-insensitively.
func ParseState(text string) (State, error) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "s", "susceptible":
		return Susceptible, nil
	case "i", "infected":
		return Infected, nil
	case "r", "resistant":
		return Resistant, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownState, text)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s State) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownState, int(s))
	}

	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *State) UnmarshalText(text []byte) error {
	v, err := ParseState(string(text))
	if err != nil {
		return err
	}
	*s = v

	return nil
}

// Census counts vertices per compartment. Every valid State has an entry,
// zero included; out-of-range payloads are counted under their own value.
func Census(g *core.Graph[State]) map[State]int {
	out := make(map[State]int, len(States))
	for _, s := range States {
		out[s] = 0
	}
	for _, p := range g.Payloads() {
		out[p]++
	}

	return out
}

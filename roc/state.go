package roc

import "fmt"

// StateCode is the integer encoding of a node's epidemic status.
type StateCode int

const (
	// Untested marks an observation record for a node that was not tested.
	Untested StateCode = -1
	// Susceptible is state S.
	Susceptible StateCode = 0
	// Infected is state I.
	Infected StateCode = 1
	// Recovered is state R.
	Recovered StateCode = 2
)

// stateNames is the bidirectional name <-> code table used by the loaders.
// Index i holds the name of StateCode(i); stateCodes is its inverse.
// Both are filled once at package init and never written afterwards.
var (
	stateNames = [...]string{"S", "I", "R"}
	stateCodes = func() map[string]StateCode {
		m := make(map[string]StateCode, len(stateNames))
		for i, name := range stateNames {
			m[name] = StateCode(i)
		}
		return m
	}()
)

// StateNames returns the state names in code order (S, I, R).
func StateNames() []string {
	out := make([]string, len(stateNames))
	copy(out, stateNames[:])
	return out
}

// ParseStateName maps "S", "I" or "R" to its state code.
func ParseStateName(name string) (StateCode, error) {
	code, ok := stateCodes[name]
	if !ok {
		return Untested, fmt.Errorf("unknown state name %q; valid: S, I, R", name)
	}
	return code, nil
}

// String returns the state name, "-" for Untested.
func (s StateCode) String() string {
	if s == Untested {
		return "-"
	}
	if s >= 0 && int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("StateCode(%d)", int(s))
}

// Valid reports whether s is Untested or one of S, I, R.
func (s StateCode) Valid() bool {
	return s >= Untested && s <= Recovered
}

// Observation records the outcome of testing a node at a time.
type Observation struct {
	Node  int
	State StateCode
	Time  int
}

// TrueConfiguration is the ground-truth state of every node, indexed [time][node].
// It is used only to label events, never to produce marginals.
type TrueConfiguration [][]StateCode

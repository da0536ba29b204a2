package dataset

import (
	"encoding/json"
	"fmt"
	"os"
)

// Parameters holds the generator settings stored alongside a dataset.
// Only N and T are interpreted; every key is kept in Raw.
type Parameters struct {
	N   int
	T   int
	Raw map[string]any
}

// LoadParameters reads a parameters JSON object.
func LoadParameters(path string) (*Parameters, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading parameters: %w", err)
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing parameters: %w", err)
	}
	p := &Parameters{Raw: raw}
	p.N = intParam(raw, "N")
	p.T = intParam(raw, "T")
	return p, nil
}

// intParam returns raw[key] when it is an integral JSON number, else 0.
func intParam(raw map[string]any, key string) int {
	v, ok := raw[key].(float64)
	if !ok || v != float64(int(v)) {
		return 0
	}
	return int(v)
}

package ioformat

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dshills/gonest/pkg/spp"
)

// warmStartDocument is the optional {instance, solution} envelope. A bare
// instance document has neither key, so solution comes back nil and
// ReadInput falls back to parsing the whole document as an Instance.
type warmStartDocument struct {
	Instance *spp.Instance  `json:"instance"`
	Solution *spp.Solution  `json:"solution"`
}

// ReadInput loads an Instance and an optional warm-start Solution from
// path. It tries the warm-start envelope first and falls back to a bare
// Instance document, matching the order the original reference reader
// used: a document that merely happens to have an "instance" key but no
// recognizable solution is still accepted as a warm-start with a nil
// solution, and anything else is re-parsed as a bare instance.
func ReadInput(path string) (*spp.Instance, *spp.Solution, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("ioformat: reading %s: %w", path, err)
	}
	return ReadInputBytes(data)
}

// ReadInputBytes is ReadInput's in-memory counterpart.
func ReadInputBytes(data []byte) (*spp.Instance, *spp.Solution, error) {
	var doc warmStartDocument
	if err := json.Unmarshal(data, &doc); err == nil && doc.Instance != nil {
		if err := doc.Instance.Validate(); err != nil {
			return nil, nil, fmt.Errorf("ioformat: invalid instance: %w", err)
		}
		return doc.Instance, doc.Solution, nil
	}

	var inst spp.Instance
	if err := json.Unmarshal(data, &inst); err != nil {
		return nil, nil, fmt.Errorf("ioformat: parsing instance: %w", err)
	}
	if err := inst.Validate(); err != nil {
		return nil, nil, fmt.Errorf("ioformat: invalid instance: %w", err)
	}
	return &inst, nil, nil
}

// WriteSolution pretty-prints sol as JSON.
func WriteSolution(sol *spp.Solution) ([]byte, error) {
	return json.MarshalIndent(sol, "", "  ")
}

// WriteSolutionToFile writes sol as pretty-printed JSON to path.
func WriteSolutionToFile(sol *spp.Solution, path string) error {
	data, err := WriteSolution(sol)
	if err != nil {
		return fmt.Errorf("ioformat: encoding solution: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("ioformat: writing %s: %w", path, err)
	}
	return nil
}

/*
 * micronix - host reconnaissance to privilege-escalation planning problems
 * License: MIT
 */

// Package persist round-trips a model.FactsContainer to and from a local
// blob so a host doesn't need to be re-extracted between runs. The original
// implementation pickles the object graph; no equivalent object-graph
// serialization library exists among the example dependencies, so this
// uses encoding/gob, the stdlib's own answer to the same problem.
package persist

import (
	"encoding/gob"
	"fmt"
	"os"

	"github.com/nixrecon/micronix/model"
)

// Save writes fc to path as a gob-encoded blob, overwriting any existing
// file.
func Save(path string, fc *model.FactsContainer) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("persist: create %s: %w", path, err)
	}
	defer f.Close()

	if err := gob.NewEncoder(f).Encode(fc); err != nil {
		return fmt.Errorf("persist: encode %s: %w", path, err)
	}
	return nil
}

// Load reads a previously Saved FactsContainer from path.
func Load(path string) (*model.FactsContainer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("persist: open %s: %w", path, err)
	}
	defer f.Close()

	fc := model.NewFactsContainer()
	if err := gob.NewDecoder(f).Decode(fc); err != nil {
		return nil, fmt.Errorf("persist: decode %s: %w", path, err)
	}
	return fc, nil
}

// Exists reports whether a blob is already present at path.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

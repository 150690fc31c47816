/*
 * micronix - host reconnaissance to privilege-escalation planning problems
 * License: MIT
 */

// Package catalog loads the static capability and CVE catalogs that map
// installed binaries to PDDL predicates.
package catalog

import (
	"bytes"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/nixrecon/micronix/model"
)

// rawCapabilitiesFile mirrors capabilities.toml's [capabilities.<cap>] shape.
type rawCapabilitiesFile struct {
	Capabilities map[string]rawCapability `toml:"capabilities"`
}

type rawCapability struct {
	Predicates []string        `toml:"predicates"`
	Binaries   []rawBinarySpec `toml:"binaries"`
}

type rawBinarySpec struct {
	Name           string           `toml:"name"`
	VersionCommand string           `toml:"version_command"`
	Version        []string         `toml:"version"`
	Dependencies   rawDependencies  `toml:"dependencies"`
}

type rawDependencies struct {
	Files       []string       `toml:"files"`
	Executables []string       `toml:"executables"`
	Conditions  []rawCondition `toml:"conditions"`
}

type rawCondition struct {
	Type string `toml:"type"`
	Op1  string `toml:"op1"`
}

// Catalog holds both the capability catalog and the CVE catalog, keyed by
// capability/CVE name, ready for the encoder to query.
type Catalog struct {
	Capabilities map[string]model.CapabilityEntry
	CVEs         map[string]model.CapabilityEntry
}

// Load reads and strictly decodes both TOML files. Any unknown key or
// malformed structure is a fatal Catalog-malformed error; a missing file is
// a fatal Catalog-missing error.
func Load(capabilitiesPath, cvePath string) (*Catalog, error) {
	caps, err := loadCapabilities(capabilitiesPath)
	if err != nil {
		return nil, fmt.Errorf("load capabilities catalog: %w", err)
	}

	cves, err := loadCVEs(cvePath)
	if err != nil {
		return nil, fmt.Errorf("load CVE catalog: %w", err)
	}

	return &Catalog{Capabilities: caps, CVEs: cves}, nil
}

func loadCapabilities(path string) (map[string]model.CapabilityEntry, error) {
	var raw rawCapabilitiesFile
	if err := decodeStrict(path, &raw); err != nil {
		return nil, err
	}

	out := make(map[string]model.CapabilityEntry, len(raw.Capabilities))
	for name, c := range raw.Capabilities {
		entry := model.CapabilityEntry{
			Name:       name,
			Predicates: c.Predicates,
		}
		for _, b := range c.Binaries {
			entry.Binaries = append(entry.Binaries, model.BinarySpec{Name: b.Name})
		}
		out[name] = entry
	}
	return out, nil
}

func loadCVEs(path string) (map[string]model.CapabilityEntry, error) {
	var raw rawCapabilitiesFile
	if err := decodeStrict(path, &raw); err != nil {
		return nil, err
	}

	out := make(map[string]model.CapabilityEntry, len(raw.Capabilities))
	for name, c := range raw.Capabilities {
		entry := model.CapabilityEntry{Name: name, Predicates: c.Predicates}
		for _, b := range c.Binaries {
			spec := model.BinarySpec{
				Name:           b.Name,
				VersionCommand: b.VersionCommand,
				VersionGlobs:   b.Version,
				Dependencies: model.Dependencies{
					Files:       b.Dependencies.Files,
					Executables: b.Dependencies.Executables,
				},
			}
			for _, cond := range b.Dependencies.Conditions {
				spec.Dependencies.Conditions = append(spec.Dependencies.Conditions, model.Condition{
					Type: cond.Type,
					Op1:  cond.Op1,
				})
			}
			entry.Binaries = append(entry.Binaries, spec)
		}
		out[name] = entry
	}
	return out, nil
}

func decodeStrict(path string, dest interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dest); err != nil {
		return fmt.Errorf("%s: malformed catalog: %w", path, err)
	}
	return nil
}

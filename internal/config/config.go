// Package config holds process-wide, rarely-changing frontend settings:
// the benign trait-name set, and the test/trace mode flags that the rest
// of the frontend reads instead of threading a settings struct through
// every call.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// TraitName identifies a trait by its surface-syntax name, e.g. "Shared",
// "Fun", or a user-defined trait like "Show".
type TraitName string

// Shared and Fun are the two traits the instance checker treats as
// "benign": a type variable constrained only by these (alone or together)
// needs no concrete implementation to be considered instantiable.
const (
	Shared TraitName = "Shared"
	Fun    TraitName = "Fun"
)

var benignTraitNames = map[TraitName]bool{
	Shared: true,
	Fun:    true,
}

// BenignTraitNames returns the set of trait names that impose no runtime
// instance obligation. is_inst's subset-of-benign test is the only
// caller; this is the single place that changes if a new benign trait is
// added, per the frontend's own design notes.
func BenignTraitNames() map[TraitName]bool {
	return benignTraitNames
}

// ResetBenignTraitNames restores the built-in Shared/Fun default. Tests
// that exercise a custom Config call this in cleanup so later tests don't
// observe a leaked override.
func ResetBenignTraitNames() {
	benignTraitNames = map[TraitName]bool{Shared: true, Fun: true}
}

// Config is the on-disk shape of an optional frontend.yaml, mirroring the
// funxy.yaml convention: a handful of top-level keys, all optional.
type Config struct {
	// BenignTraits overrides the default {Shared, Fun} set. Listing a
	// trait here exempts it from the instance-obligation check the same
	// way Shared and Fun are exempted.
	BenignTraits []string `yaml:"benign_traits,omitempty"`
}

// Load reads a YAML config file and applies it process-wide. A missing
// file is not an error — callers that don't ship a config file simply
// keep the defaults.
func Load(path string) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	if len(cfg.BenignTraits) > 0 {
		next := make(map[TraitName]bool, len(cfg.BenignTraits))
		for _, name := range cfg.BenignTraits {
			next[TraitName(name)] = true
		}
		benignTraitNames = next
	}
	return nil
}

// IsTestMode indicates the frontend is running under its own test suite.
// Set once at process start by the test harness entry point.
var IsTestMode = false

// IsTraceMode enables the internal/trace progress logger for the pass
// driver. Off by default; turned on by callers that want pass-by-pass
// visibility (e.g. an LSP host debugging a stuck analysis).
var IsTraceMode = false

// IsTraceVerbose additionally has the tracer dump local-type tables and
// pattern forests via kr/pretty on every Detail call. Has no effect
// unless IsTraceMode is also set.
var IsTraceVerbose = false

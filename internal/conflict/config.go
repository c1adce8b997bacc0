package conflict

import (
	"os"

	"github.com/BurntSushi/toml"
)

// fileChain and filePattern mirror Chain/Pattern in a shape TOML can
// decode directly.
type fileChain struct {
	Name   string      `toml:"name"`
	Winner filePattern `toml:"winner"`
	Loser  filePattern `toml:"loser"`
}

type filePattern struct {
	LHS    string   `toml:"lhs"`
	Before []string `toml:"before"`
	After  []string `toml:"after"`
}

type fileConfig struct {
	Chain []fileChain `toml:"chain"`
}

// LoadChains reads additional precedence chains from a TOML document at
// path and returns them in file order. Built-in chains are never
// overridden by a loaded file; callers append these after
// conflict.BuiltinChains so user-supplied chains only apply to conflicts
// the built-ins don't already cover.
func LoadChains(path string) ([]Chain, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg fileConfig
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return nil, err
	}

	chains := make([]Chain, 0, len(cfg.Chain))
	for _, fc := range cfg.Chain {
		chains = append(chains, Chain{
			Name: fc.Name,
			Winner: Pattern{
				NonTerminal: fc.Winner.LHS,
				Before:      fc.Winner.Before,
				After:       fc.Winner.After,
			},
			Loser: Pattern{
				NonTerminal: fc.Loser.LHS,
				Before:      fc.Loser.Before,
				After:       fc.Loser.After,
			},
		})
	}
	return chains, nil
}

// WithFileChains returns a new Arbiter whose chain list is a.Chains
// followed by the chains loaded from path.
func (a *Arbiter) WithFileChains(path string) (*Arbiter, error) {
	loaded, err := LoadChains(path)
	if err != nil {
		return nil, err
	}
	merged := &Arbiter{Strict: a.Strict}
	merged.Chains = append(merged.Chains, a.Chains...)
	merged.Chains = append(merged.Chains, loaded...)
	return merged, nil
}

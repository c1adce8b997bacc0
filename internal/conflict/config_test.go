package conflict

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/corvidae/redfish/internal/grammar"
	"github.com/stretchr/testify/assert"
)

func writeChainsFile(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "chains.toml")
	assert.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func Test_LoadChains_ParsesFileOrder(t *testing.T) {
	assert := assert.New(t)

	path := writeChainsFile(t, `
[[chain]]
name = "prefer-x"
winner = { lhs = "X" }
loser = { lhs = "Y" }

[[chain]]
name = "prefer-y-after-z"
winner = { lhs = "Y", after = ["Z"] }
loser = { lhs = "Y" }
`)

	chains, err := LoadChains(path)
	assert.NoError(err)
	assert.Len(chains, 2)
	assert.Equal("prefer-x", chains[0].Name)
	assert.Equal("X", chains[0].Winner.NonTerminal)
	assert.Equal("prefer-y-after-z", chains[1].Name)
	assert.Equal([]string{"Z"}, chains[1].Winner.After)
}

func Test_LoadChains_MissingFile(t *testing.T) {
	assert := assert.New(t)

	_, err := LoadChains(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(err)
}

func Test_Arbiter_WithFileChains_AppliesAfterBuiltins(t *testing.T) {
	assert := assert.New(t)

	path := writeChainsFile(t, `
[[chain]]
name = "prefer-x"
winner = { lhs = "X" }
loser = { lhs = "Y" }
`)

	a := NewDefault()
	merged, err := a.WithFileChains(path)
	assert.NoError(err)
	assert.Len(merged.Chains, len(BuiltinChains)+1)

	x := Candidate{Item: grammar.LR0Item{NonTerminal: "X"}, Label: "x"}
	y := Candidate{Item: grammar.LR0Item{NonTerminal: "Y"}, Label: "y"}

	winner, err := merged.Resolve(y, x)
	assert.NoError(err)
	assert.Equal("x", winner.Label)

	// the original arbiter is untouched
	assert.Len(a.Chains, len(BuiltinChains))
}

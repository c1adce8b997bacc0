package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Parse(t *testing.T) {
	testCases := []struct {
		name      string
		src       string
		expectErr bool
	}{
		{
			name: "simple expression grammar",
			src:  "E -> E + T | T ;\nT -> T * F | F ;\nF -> ( E ) | id ;",
		},
		{
			name:      "missing arrow",
			src:       "E E + T ;",
			expectErr: true,
		},
		{
			name:      "no rules",
			src:       "",
			expectErr: true,
		},
		{
			name: "epsilon production",
			src:  "S -> A b ;\nA -> a | ε ;",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			g, err := Parse(tc.src)
			if tc.expectErr {
				assert.Error(err)
				return
			}
			if !assert.NoError(err) {
				return
			}
			assert.NotEmpty(g.StartSymbol())
		})
	}
}

func Test_Grammar_StartSymbol(t *testing.T) {
	assert := assert.New(t)

	g := MustParse("E -> E + T | T ;\nT -> T * F | F ;\nF -> ( E ) | id ;")
	assert.Equal("E", g.StartSymbol())
}

func Test_Grammar_Augmented(t *testing.T) {
	assert := assert.New(t)

	g := MustParse("E -> E + T | T ;\nT -> T * F | F ;\nF -> ( E ) | id ;")
	aug := g.Augmented()

	assert.NotEqual(g.StartSymbol(), aug.StartSymbol())
	rule, ok := aug.Rule(aug.StartSymbol())
	assert.True(ok)
	assert.Len(rule.Productions, 1)
	assert.Equal(Production{"E"}, rule.Productions[0])
}

func Test_ComputeFirstSets(t *testing.T) {
	assert := assert.New(t)

	g := MustParse("E -> E + T | T ;\nT -> T * F | F ;\nF -> ( E ) | id ;")
	fs := ComputeFirstSets(g)

	for _, nt := range []string{"E", "T", "F"} {
		first := fs.Of(nt)
		assert.True(first.Has("("))
		assert.True(first.Has("id"))
	}
}

func Test_ComputeFirstSets_Nullable(t *testing.T) {
	assert := assert.New(t)

	g := MustParse("S -> A b ;\nA -> a | ε ;")
	fs := ComputeFirstSets(g)

	assert.True(fs.Nullable("A"))
	assert.False(fs.Nullable("S"))
}

func Test_LR1Closure(t *testing.T) {
	assert := assert.New(t)

	g := MustParse("E -> E + T | T ;\nT -> T * F | F ;\nF -> ( E ) | id ;").Augmented()
	fs := ComputeFirstSets(g)

	start := InitialLR1ItemSet(g, fs)

	assert.True(start.Has(MustParseLR1Item(g.StartSymbol() + " -> . E, $").String()))

	// closure must also pull in F's productions since E derives down to F.
	var sawF bool
	for _, k := range SortedKeys(start) {
		it := start.Get(k)
		if it.NonTerminal == "F" && len(it.Left) == 0 {
			sawF = true
		}
	}
	assert.True(sawF)
}

package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_StringSet_BasicOps(t *testing.T) {
	assert := assert.New(t)

	s := StringSetOf([]string{"a", "b"})
	assert.True(s.Has("a"))
	assert.False(s.Has("c"))
	assert.Equal(2, s.Len())

	s.Add("c")
	assert.True(s.Has("c"))

	s.Remove("a")
	assert.False(s.Has("a"))
	assert.Equal([]string{"b", "c"}, s.Ordered())
}

func Test_StringSet_UnionIntersectionDifference(t *testing.T) {
	assert := assert.New(t)

	a := StringSetOf([]string{"x", "y", "z"})
	b := StringSetOf([]string{"y", "z", "w"})

	assert.Equal([]string{"w", "x", "y", "z"}, a.Union(b).Ordered())
	assert.Equal([]string{"y", "z"}, a.Intersection(b).Ordered())
	assert.Equal([]string{"x"}, a.Difference(b).Ordered())
}

func Test_StringSet_Equal(t *testing.T) {
	assert := assert.New(t)

	a := StringSetOf([]string{"x", "y"})
	b := StringSetOf([]string{"y", "x"})
	c := StringSetOf([]string{"y", "z"})

	assert.True(a.Equal(b))
	assert.False(a.Equal(c))
}

func Test_StringSet_Copy_IsIndependent(t *testing.T) {
	assert := assert.New(t)

	a := StringSetOf([]string{"x"})
	b := a.Copy()
	b.Add("y")

	assert.False(a.Has("y"))
	assert.True(b.Has("y"))
}

func Test_ValueSet_SetGetHas(t *testing.T) {
	assert := assert.New(t)

	vs := NewValueSet[int]()
	vs.Set("one", 1)
	vs.Set("two", 2)

	assert.True(vs.Has("one"))
	assert.False(vs.Has("three"))
	assert.Equal(1, vs.Get("one"))
	assert.Equal(2, vs.Len())

	vs.Remove("one")
	assert.False(vs.Has("one"))
}

func Test_OrderedKeys_SortsAlphabetically(t *testing.T) {
	assert := assert.New(t)

	m := map[string]int{"banana": 1, "apple": 2, "cherry": 3}
	assert.Equal([]string{"apple", "banana", "cherry"}, OrderedKeys(m))
}

func Test_JoinSymbols(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("ε", JoinSymbols(nil))
	assert.Equal("A B C", JoinSymbols([]string{"A", "B", "C"}))
}

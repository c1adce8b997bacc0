package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_MakeTextList(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("", MakeTextList(nil, "and"))
	assert.Equal("a", MakeTextList([]string{"a"}, "and"))
	assert.Equal("a and b", MakeTextList([]string{"a", "b"}, "and"))
	assert.Equal("a, b, and c", MakeTextList([]string{"a", "b", "c"}, "and"))
	assert.Equal("a, b, or c", MakeTextList([]string{"a", "b", "c"}, "or"))
}

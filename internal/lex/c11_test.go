package lex

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func drain(t *testing.T, stream TokenStream) []Token {
	t.Helper()
	var out []Token
	for stream.HasNext() {
		tok, err := stream.Next()
		if err != nil {
			t.Fatalf("unexpected stream error: %v", err)
		}
		out = append(out, tok)
	}
	return out
}

func Test_C11Lexer_SimpleDeclaration(t *testing.T) {
	assert := assert.New(t)

	lx := NewC11Lexer()
	stream, err := lx.Lex("int x = 1;")
	assert.NoError(err)

	toks := drain(t, stream)
	var classes []string
	for _, tok := range toks {
		classes = append(classes, tok.Class().ID())
	}

	assert.Equal([]string{"Int", "Identifier", "Equal", "Constant", "SemiColon", "$"}, classes)
}

func Test_C11Lexer_SkipsCommentsAndDirectives(t *testing.T) {
	assert := assert.New(t)

	lx := NewC11Lexer()
	stream, err := lx.Lex("#include <stdio.h>\n// comment\nint /* inline */ y;")
	assert.NoError(err)

	toks := drain(t, stream)
	assert.Equal("Int", toks[0].Class().ID())
	assert.Equal("Identifier", toks[1].Class().ID())
	assert.Equal("y", toks[1].Lexeme())
}

func Test_C11Lexer_Digraphs(t *testing.T) {
	assert := assert.New(t)

	lx := NewC11Lexer()
	stream, err := lx.Lex("int a<::> = <%%>;")
	assert.NoError(err)

	toks := drain(t, stream)
	assert.Equal("LeftBracket", toks[2].Class().ID())
	assert.Equal("RightBracket", toks[3].Class().ID())
}

func Test_C11Lexer_HexFloatConstant(t *testing.T) {
	assert := assert.New(t)

	lx := NewC11Lexer()
	stream, err := lx.Lex("double d = 0x1.8p3f;")
	assert.NoError(err)

	toks := drain(t, stream)
	var classes []string
	var lexemes []string
	for _, tok := range toks {
		classes = append(classes, tok.Class().ID())
		lexemes = append(lexemes, tok.Lexeme())
	}

	assert.Equal([]string{"Double", "Identifier", "Equal", "Constant", "SemiColon", "$"}, classes)
	assert.Equal("0x1.8p3f", lexemes[3])
}

func Test_C11Lexer_HexIntStillMatchesWithoutExponent(t *testing.T) {
	assert := assert.New(t)

	lx := NewC11Lexer()
	stream, err := lx.Lex("int x = 0x1A;")
	assert.NoError(err)

	toks := drain(t, stream)
	assert.Equal("Constant", toks[3].Class().ID())
	assert.Equal("0x1A", toks[3].Lexeme())
}

func Test_C11Lexer_InvalidCharacter(t *testing.T) {
	assert := assert.New(t)

	lx := NewC11Lexer()
	_, err := lx.Lex("int x = `;")
	assert.Error(err)
}

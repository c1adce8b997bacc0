package lex

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/corvidae/redfish/internal/cerrors"
)

// c11Keywords are the reserved words of C11, tokenized as their own
// classes (one per keyword) rather than folded into Identifier, matching
// how the reference grammar names them (If, Else, Typedef, ...).
var c11Keywords = []string{
	"auto", "break", "case", "char", "const", "continue", "default", "do",
	"double", "else", "enum", "extern", "float", "for", "goto", "if",
	"inline", "int", "long", "register", "restrict", "return", "short",
	"signed", "sizeof", "static", "struct", "switch", "typedef", "union",
	"unsigned", "void", "volatile", "while",
	"_Alignas", "_Alignof", "_Atomic", "_Bool", "_Complex", "_Generic",
	"_Imaginary", "_Noreturn", "_Static_assert", "_Thread_local",
}

// c11Punctuators are matched longest-first so that, e.g., "<<=" is
// preferred over "<<" over "<", and the C11 digraphs (<: :> <% %> %: %:%:)
// are recognized before their single-character lookalikes.
var c11Punctuators = []string{
	"%:%:", "...", "<<=", ">>=",
	"->", "++", "--", "<<", ">>", "<=", ">=", "==", "!=", "&&", "||",
	"*=", "/=", "%=", "+=", "-=", "&=", "^=", "|=", "##",
	"<:", ":>", "<%", "%>", "%:",
	"[", "]", "(", ")", "{", "}", ".", "&", "*", "+", "-", "~", "!",
	"/", "%", "<", ">", "^", "|", "?", ":", ";", ",", "=", "#",
}

func keywordClassName(kw string) string {
	return strings.ToUpper(kw[:1]) + kw[1:]
}

var (
	identifierRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*`)
	floatRe      = regexp.MustCompile(`^0[xX][0-9a-fA-F]*\.?[0-9a-fA-F]*[pP][+-]?[0-9]+[flFL]?|^(?:[0-9]*\.[0-9]+|[0-9]+\.)(?:[eE][+-]?[0-9]+)?[flFL]?|^[0-9]+[eE][+-]?[0-9]+[flFL]?`)
	hexIntRe     = regexp.MustCompile(`^0[xX][0-9a-fA-F]+(?:[uUlL]{1,3})?`)
	octIntRe     = regexp.MustCompile(`^0[0-7]*(?:[uUlL]{1,3})?`)
	decIntRe     = regexp.MustCompile(`^[1-9][0-9]*(?:[uUlL]{1,3})?`)
	charRe       = regexp.MustCompile(`^(?:u8|[uUL])?'(?:\\.|[^'\\])+'`)
	stringRe     = regexp.MustCompile(`^(?:u8|[uUL])?"(?:\\.|[^"\\])*"`)
	lineCommentRe = regexp.MustCompile(`^//[^\n]*`)
	blockCommentRe = regexp.MustCompile(`(?s)^/\*.*?\*/`)
	directiveRe  = regexp.MustCompile(`^#[^\n]*`)
	whitespaceRe = regexp.MustCompile(`^[ \t\r\n]+`)
)

// C11Lexer tokenizes a subset of C11 source: punctuators (including
// digraphs), keywords, identifiers, numeric/char/string constants.
// Preprocessor directives and comments are discarded, not interpreted —
// macro expansion and conditional compilation are out of scope.
type C11Lexer struct{}

// NewC11Lexer returns a ready-to-use lexer.
func NewC11Lexer() *C11Lexer { return &C11Lexer{} }

// Lex tokenizes src in full and returns a TokenStream ending in an
// EndOfText token, or a LexError if a character sequence matches none of
// the recognized forms.
func (lx *C11Lexer) Lex(src string) (TokenStream, error) {
	var toks []Token
	line := 1
	pos := 0

	for pos < len(src) {
		rest := src[pos:]

		if m := whitespaceRe.FindString(rest); m != "" {
			line += strings.Count(m, "\n")
			pos += len(m)
			continue
		}
		if m := lineCommentRe.FindString(rest); m != "" {
			pos += len(m)
			continue
		}
		if m := blockCommentRe.FindString(rest); m != "" {
			line += strings.Count(m, "\n")
			pos += len(m)
			continue
		}
		if m := directiveRe.FindString(rest); m != "" {
			pos += len(m)
			continue
		}

		// a u8/u/U/L prefix directly followed by a quote starts a literal,
		// handled below, not an identifier
		if m := identifierRe.FindString(rest); m != "" && stringRe.FindString(rest) == "" && charRe.FindString(rest) == "" {
			if isKeyword(m) {
				toks = append(toks, NewToken(NewClass(keywordClassName(m), m), m, line))
			} else {
				toks = append(toks, NewToken(NewClass("Identifier", "identifier"), m, line))
			}
			pos += len(m)
			continue
		}

		if m := stringRe.FindString(rest); m != "" {
			toks = append(toks, NewToken(NewClass("StringLiteral", "string literal"), m, line))
			pos += len(m)
			continue
		}
		if m := charRe.FindString(rest); m != "" {
			toks = append(toks, NewToken(NewClass("Constant", "character constant"), m, line))
			pos += len(m)
			continue
		}
		if m := floatRe.FindString(rest); m != "" {
			toks = append(toks, NewToken(NewClass("Constant", "floating constant"), m, line))
			pos += len(m)
			continue
		}
		if m := hexIntRe.FindString(rest); m != "" {
			toks = append(toks, NewToken(NewClass("Constant", "integer constant"), m, line))
			pos += len(m)
			continue
		}
		if m := decIntRe.FindString(rest); m != "" {
			toks = append(toks, NewToken(NewClass("Constant", "integer constant"), m, line))
			pos += len(m)
			continue
		}
		if m := octIntRe.FindString(rest); m != "" {
			toks = append(toks, NewToken(NewClass("Constant", "integer constant"), m, line))
			pos += len(m)
			continue
		}

		if punc, ok := matchPunctuator(rest); ok {
			toks = append(toks, NewToken(NewClass(punctuatorClassName(punc), punc), punc, line))
			pos += len(punc)
			continue
		}

		return nil, cerrors.LexError("line %d: unrecognized character %q", line, rest[:1])
	}

	toks = append(toks, NewToken(EndOfText, "", line))
	return NewSliceStream(toks), nil
}

func isKeyword(word string) bool {
	for _, kw := range c11Keywords {
		if kw == word {
			return true
		}
	}
	return false
}

func matchPunctuator(rest string) (string, bool) {
	for _, p := range c11Punctuators {
		if strings.HasPrefix(rest, p) {
			return p, true
		}
	}
	return "", false
}

// punctuatorClassName gives each punctuator a stable terminal name, in the
// style the embedded C11 grammar (cgrammar package) references them by
// (e.g. "LeftParen", "SemiColon").
var punctuatorClassNames = map[string]string{
	"[": "LeftBracket", "]": "RightBracket", "(": "LeftParen", ")": "RightParen",
	"{": "LeftBrace", "}": "RightBrace", ".": "Dot", "->": "Arrow",
	"++": "PlusPlus", "--": "MinusMinus", "&": "Ampersand", "*": "Star",
	"+": "Plus", "-": "Minus", "~": "Tilde", "!": "Bang",
	"/": "Slash", "%": "Percent", "<<": "LeftShift", ">>": "RightShift",
	"<": "LessThan", ">": "GreaterThan", "<=": "LessEqual", ">=": "GreaterEqual",
	"==": "EqualEqual", "!=": "NotEqual", "^": "Caret", "|": "Pipe",
	"&&": "AndAnd", "||": "OrOr", "?": "Question", ":": "Colon",
	";": "SemiColon", "...": "Ellipsis", "=": "Equal",
	"*=": "StarEqual", "/=": "SlashEqual", "%=": "PercentEqual",
	"+=": "PlusEqual", "-=": "MinusEqual", "<<=": "LeftShiftEqual",
	">>=": "RightShiftEqual", "&=": "AmpersandEqual", "^=": "CaretEqual",
	"|=": "PipeEqual", ",": "Comma", "#": "Hash", "##": "HashHash",
	"<:": "LeftBracket", ":>": "RightBracket", "<%": "LeftBrace",
	"%>": "RightBrace", "%:": "Hash", "%:%:": "HashHash",
}

func punctuatorClassName(p string) string {
	if name, ok := punctuatorClassNames[p]; ok {
		return name
	}
	return fmt.Sprintf("Punct(%s)", p)
}

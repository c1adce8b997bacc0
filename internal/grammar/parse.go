package grammar

import (
	"strings"

	"github.com/corvidae/redfish/internal/cerrors"
)

// Parse reads a grammar written in a small textual notation:
//
//	NT -> rhs1 | rhs2 | ... ;
//
// one or more statements, each terminated by a semicolon. "ε" or the bare
// word "epsilon" denotes an empty production. The first non-terminal
// declared becomes the start symbol.
func Parse(src string) (*Grammar, error) {
	g := New()

	stmts, err := splitStatements(src)
	if err != nil {
		return nil, err
	}

	for lineNo, stmt := range stmts {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}

		arrowIdx := strings.Index(stmt, "->")
		if arrowIdx < 0 {
			return nil, cerrors.GrammarMalformed("statement %d: missing '->': %q", lineNo+1, stmt)
		}

		nt := strings.TrimSpace(stmt[:arrowIdx])
		if nt == "" {
			return nil, cerrors.GrammarMalformed("statement %d: empty non-terminal name", lineNo+1)
		}

		rhsPart := stmt[arrowIdx+2:]
		alts := strings.Split(rhsPart, "|")

		var prods []Production
		for _, alt := range alts {
			alt = strings.TrimSpace(alt)
			if alt == "" || alt == Epsilon || strings.EqualFold(alt, "epsilon") {
				prods = append(prods, Production{})
				continue
			}
			symbols := strings.Fields(alt)
			prods = append(prods, Production(symbols))
		}

		g.AddRule(nt, prods...)
	}

	if err := g.Validate(); err != nil {
		return nil, err
	}

	return g, nil
}

// MustParse is like Parse but panics on error, for grammars embedded as Go
// string literals (package cgrammar) where a parse failure is a
// programming error rather than user input.
func MustParse(src string) *Grammar {
	g, err := Parse(src)
	if err != nil {
		panic(err.Error())
	}
	return g
}

// splitStatements splits src on ';' while respecting that a semicolon never
// appears inside a symbol name in this grammar notation, so a naive split
// is sufficient.
func splitStatements(src string) ([]string, error) {
	parts := strings.Split(src, ";")
	// trailing content after the last ';' must be blank (or a comment)
	if strings.TrimSpace(stripComments(parts[len(parts)-1])) != "" {
		return nil, cerrors.GrammarMalformed("grammar source has trailing content after final ';'")
	}
	out := make([]string, 0, len(parts)-1)
	for _, p := range parts[:len(parts)-1] {
		out = append(out, stripComments(p))
	}
	return out, nil
}

// stripComments removes '#'-to-end-of-line comments from a grammar
// statement, so grammar authors can annotate rules the way the embedded
// C11 grammar (ported from a commented Python source) does.
func stripComments(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if idx := strings.Index(line, "#"); idx >= 0 {
			lines[i] = line[:idx]
		}
	}
	return strings.Join(lines, "\n")
}

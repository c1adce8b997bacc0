package conflict

// BuiltinChains are the three precedence chains ported from the original
// Python reference implementation's ItemComparison class, plus a fourth,
// supplemented chain for the classic dangling-else ambiguity that the
// original resolved by grammar shape rather than an explicit rule.
//
// The first two chains settle the conflict between reducing a completed
// declaration-specifier (or specifier-qualifier) sequence and shifting the
// Identifier that follows it as a typedefName: the reduce wins, so the
// Identifier is parsed as the declarator name ("int x;" declares x). The
// third also rules against typedefName, at an expression position: an Identifier standing alone reduces as a
// primaryExpression, not a typedefName, so "Example(x);" parses as a call
// rather than a cast. Together they resolve the C typedef-name-vs-identifier
// ambiguity in each direction without a symbol table.
var BuiltinChains = []Chain{
	{
		Name:   "declaration-specifiers-vs-typedef-name",
		Winner: Pattern{NonTerminal: "declarationSpecifiers", After: []string{}},
		Loser:  Pattern{NonTerminal: "typedefName"},
	},
	{
		Name:   "specifier-qualifier-list-vs-typedef-name",
		Winner: Pattern{NonTerminal: "specifierQualifierList", After: []string{}},
		Loser:  Pattern{NonTerminal: "typedefName"},
	},
	{
		Name:   "primary-expression-vs-typedef-name",
		Winner: Pattern{NonTerminal: "primaryExpression"},
		Loser:  Pattern{NonTerminal: "typedefName"},
	},
	{
		Name:   "dangling-else",
		Winner: Pattern{NonTerminal: "selectionStatement", After: []string{"Else"}},
		Loser:  Pattern{NonTerminal: "selectionStatement"},
	},
}

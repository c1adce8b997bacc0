// Package cgrammar embeds the C11-subset grammar the CLI builds a table
// from by default: the expression/statement/declaration productions of
// C11's phrase grammar, without preprocessor directives (the lexer
// discards those before the grammar ever sees a token) and with
// EnumerationConstant folded into Identifier, since distinguishing them
// requires a symbol table this generator doesn't keep.
package cgrammar

import "github.com/corvidae/redfish/internal/grammar"

// Source is the C11-subset grammar in the textual notation grammar.Parse
// accepts. Terminal names match the classes internal/lex's C11Lexer
// produces (e.g. "Star" for '*', "_Alignas" for the _Alignas keyword), not
// the reference grammar's own naming, so a table built from this source
// can drive a parse directly off the lexer's token stream.
const Source = `
compilationUnit -> translationUnit | ε ;

translationUnit -> externalDeclaration
                  | translationUnit externalDeclaration ;

externalDeclaration -> functionDefinition
                      | declaration ;

functionDefinition -> declarationSpecifiers declarator declarationList compoundStatement
                     | declarationSpecifiers declarator compoundStatement ;

declarationList -> declaration
                  | declarationList declaration ;

primaryExpression -> Identifier
                    | Constant
                    | StringLiteral
                    | LeftParen expression RightParen
                    | genericSelection ;

genericSelection -> _Generic LeftParen assignmentExpression Comma genericAssocList RightParen ;

genericAssocList -> genericAssociation
                   | genericAssocList Comma genericAssociation ;

genericAssociation -> typeName Colon assignmentExpression
                     | Default Colon assignmentExpression ;

postfixExpression -> primaryExpression
                    | postfixExpression LeftBracket expression RightBracket
                    | postfixExpression LeftParen argumentExpressionList RightParen
                    | postfixExpression LeftParen RightParen
                    | postfixExpression Dot Identifier
                    | postfixExpression Arrow Identifier
                    | postfixExpression PlusPlus
                    | postfixExpression MinusMinus
                    | LeftParen typeName RightParen LeftBrace initializerList RightBrace
                    | LeftParen typeName RightParen LeftBrace initializerList Comma RightBrace ;

argumentExpressionList -> assignmentExpression
                         | argumentExpressionList Comma assignmentExpression ;

unaryExpression -> postfixExpression
                  | PlusPlus unaryExpression
                  | MinusMinus unaryExpression
                  | unaryOperator castExpression
                  | Sizeof unaryExpression
                  | Sizeof LeftParen typeName RightParen
                  | _Alignof LeftParen typeName RightParen ;

unaryOperator -> Ampersand | Star | Plus | Minus | Tilde | Bang ;

castExpression -> unaryExpression
                 | LeftParen typeName RightParen castExpression ;

multiplicativeExpression -> castExpression
                           | multiplicativeExpression Star castExpression
                           | multiplicativeExpression Slash castExpression
                           | multiplicativeExpression Percent castExpression ;

additiveExpression -> multiplicativeExpression
                     | additiveExpression Plus multiplicativeExpression
                     | additiveExpression Minus multiplicativeExpression ;

shiftExpression -> additiveExpression
                  | shiftExpression LeftShift additiveExpression
                  | shiftExpression RightShift additiveExpression ;

relationalExpression -> shiftExpression
                       | relationalExpression LessThan shiftExpression
                       | relationalExpression GreaterThan shiftExpression
                       | relationalExpression LessEqual shiftExpression
                       | relationalExpression GreaterEqual shiftExpression ;

equalityExpression -> relationalExpression
                     | equalityExpression EqualEqual relationalExpression
                     | equalityExpression NotEqual relationalExpression ;

andExpression -> equalityExpression
                | andExpression Ampersand equalityExpression ;

exclusiveOrExpression -> andExpression
                        | exclusiveOrExpression Caret andExpression ;

inclusiveOrExpression -> exclusiveOrExpression
                        | inclusiveOrExpression Pipe exclusiveOrExpression ;

logicalAndExpression -> inclusiveOrExpression
                       | logicalAndExpression AndAnd inclusiveOrExpression ;

logicalOrExpression -> logicalAndExpression
                      | logicalOrExpression OrOr logicalAndExpression ;

conditionalExpression -> logicalOrExpression
                        | logicalOrExpression Question expression Colon conditionalExpression ;

assignmentExpression -> conditionalExpression
                       | unaryExpression assignmentOperator assignmentExpression ;

assignmentOperator -> Equal | StarEqual | SlashEqual | PercentEqual | PlusEqual
                     | MinusEqual | LeftShiftEqual | RightShiftEqual
                     | AmpersandEqual | CaretEqual | PipeEqual ;

expression -> assignmentExpression
             | expression Comma assignmentExpression ;

constantExpression -> conditionalExpression ;

declaration -> declarationSpecifiers initDeclaratorList SemiColon
              | declarationSpecifiers SemiColon
              | staticAssertDeclaration ;

declarationSpecifiers -> storageClassSpecifier
                        | storageClassSpecifier declarationSpecifiers
                        | typeSpecifier
                        | typeSpecifier declarationSpecifiers
                        | typeQualifier
                        | typeQualifier declarationSpecifiers
                        | functionSpecifier
                        | functionSpecifier declarationSpecifiers
                        | alignmentSpecifier
                        | alignmentSpecifier declarationSpecifiers ;

initDeclaratorList -> initDeclarator
                     | initDeclaratorList Comma initDeclarator ;

initDeclarator -> declarator
                 | declarator Equal initializer ;

storageClassSpecifier -> Typedef | Extern | Static | _Thread_local | Auto | Register ;

typeSpecifier -> Void | Char | Short | Int | Long | Float | Double | Signed
                | Unsigned | _Bool | _Complex
                | atomicTypeSpecifier
                | structOrUnionSpecifier
                | enumSpecifier
                | typedefName ;

structOrUnionSpecifier -> structOrUnion Identifier LeftBrace structDeclarationList RightBrace
                          | structOrUnion LeftBrace structDeclarationList RightBrace
                          | structOrUnion Identifier ;

structOrUnion -> Struct | Union ;

structDeclarationList -> structDeclaration
                        | structDeclarationList structDeclaration ;

structDeclaration -> specifierQualifierList structDeclaratorList SemiColon
                    | specifierQualifierList SemiColon
                    | staticAssertDeclaration ;

specifierQualifierList -> typeSpecifier
                         | typeSpecifier specifierQualifierList
                         | typeQualifier
                         | typeQualifier specifierQualifierList ;

structDeclaratorList -> structDeclarator
                       | structDeclaratorList Comma structDeclarator ;

structDeclarator -> declarator
                   | declarator Colon constantExpression
                   | Colon constantExpression ;

enumSpecifier -> Enum Identifier LeftBrace enumeratorList RightBrace
                | Enum Identifier LeftBrace enumeratorList Comma RightBrace
                | Enum LeftBrace enumeratorList RightBrace
                | Enum LeftBrace enumeratorList Comma RightBrace
                | Enum Identifier ;

enumeratorList -> enumerator
                 | enumeratorList Comma enumerator ;

enumerator -> Identifier
             | Identifier Equal constantExpression ;

atomicTypeSpecifier -> _Atomic LeftParen typeName RightParen ;

typeQualifier -> Const | Restrict | Volatile | _Atomic ;

functionSpecifier -> Inline | _Noreturn ;

alignmentSpecifier -> _Alignas LeftParen typeName RightParen
                     | _Alignas LeftParen constantExpression RightParen ;

declarator -> pointer directDeclarator
             | directDeclarator ;

directDeclarator -> Identifier
                   | LeftParen declarator RightParen
                   | directDeclarator LeftBracket typeQualifierList assignmentExpression RightBracket
                   | directDeclarator LeftBracket typeQualifierList RightBracket
                   | directDeclarator LeftBracket assignmentExpression RightBracket
                   | directDeclarator LeftBracket RightBracket
                   | directDeclarator LeftBracket Static typeQualifierList assignmentExpression RightBracket
                   | directDeclarator LeftBracket Static assignmentExpression RightBracket
                   | directDeclarator LeftBracket typeQualifierList Static assignmentExpression RightBracket
                   | directDeclarator LeftBracket typeQualifierList Star RightBracket
                   | directDeclarator LeftBracket Star RightBracket
                   | directDeclarator LeftParen parameterTypeList RightParen
                   | directDeclarator LeftParen identifierList RightParen
                   | directDeclarator LeftParen RightParen ;

pointer -> Star typeQualifierList
          | Star typeQualifierList pointer
          | Star pointer
          | Star ;

typeQualifierList -> typeQualifier
                    | typeQualifierList typeQualifier ;

parameterTypeList -> parameterList
                    | parameterList Comma Ellipsis ;

parameterList -> parameterDeclaration
                | parameterList Comma parameterDeclaration ;

parameterDeclaration -> declarationSpecifiers declarator
                       | declarationSpecifiers abstractDeclarator
                       | declarationSpecifiers ;

identifierList -> Identifier
                 | identifierList Comma Identifier ;

typeName -> specifierQualifierList abstractDeclarator
           | specifierQualifierList ;

abstractDeclarator -> pointer
                     | pointer directAbstractDeclarator
                     | directAbstractDeclarator ;

directAbstractDeclarator -> LeftParen abstractDeclarator RightParen
                           | directAbstractDeclarator LeftBracket typeQualifierList assignmentExpression RightBracket
                           | directAbstractDeclarator LeftBracket typeQualifierList RightBracket
                           | directAbstractDeclarator LeftBracket assignmentExpression RightBracket
                           | LeftBracket typeQualifierList assignmentExpression RightBracket
                           | directAbstractDeclarator LeftBracket RightBracket
                           | LeftBracket typeQualifierList RightBracket
                           | LeftBracket assignmentExpression RightBracket
                           | LeftBracket RightBracket
                           | directAbstractDeclarator LeftBracket Static typeQualifierList assignmentExpression RightBracket
                           | directAbstractDeclarator LeftBracket Static assignmentExpression RightBracket
                           | LeftBracket Static typeQualifierList assignmentExpression RightBracket
                           | LeftBracket Static assignmentExpression RightBracket
                           | directAbstractDeclarator LeftBracket typeQualifierList Static assignmentExpression RightBracket
                           | LeftBracket typeQualifierList Static assignmentExpression RightBracket
                           | directAbstractDeclarator LeftBracket Star RightBracket
                           | LeftBracket Star RightBracket
                           | directAbstractDeclarator LeftParen parameterTypeList RightParen
                           | directAbstractDeclarator LeftParen RightParen
                           | LeftParen parameterTypeList RightParen
                           | LeftParen RightParen ;

typedefName -> Identifier ;

initializer -> assignmentExpression
              | LeftBrace initializerList RightBrace
              | LeftBrace initializerList Comma RightBrace ;

initializerList -> designation initializer
                   | initializer
                   | initializerList Comma designation initializer
                   | initializerList Comma initializer ;

designation -> designatorList Equal ;

designatorList -> designator
                 | designatorList designator ;

designator -> LeftBracket constantExpression RightBracket
             | Dot Identifier ;

staticAssertDeclaration -> _Static_assert LeftParen constantExpression Comma StringLiteral RightParen SemiColon ;

statement -> labeledStatement
            | compoundStatement
            | expressionStatement
            | selectionStatement
            | iterationStatement
            | jumpStatement ;

labeledStatement -> Identifier Colon statement
                    | Case constantExpression Colon statement
                    | Default Colon statement ;

compoundStatement -> LeftBrace blockItemList RightBrace
                     | LeftBrace RightBrace ;

blockItemList -> blockItem
                | blockItemList blockItem ;

blockItem -> declaration | statement ;

expressionStatement -> expression SemiColon | SemiColon ;

selectionStatement -> If LeftParen expression RightParen statement
                     | If LeftParen expression RightParen statement Else statement
                     | Switch LeftParen expression RightParen statement ;

iterationStatement -> While LeftParen expression RightParen statement
                     | Do statement While LeftParen expression RightParen SemiColon
                     | For LeftParen expression SemiColon expression SemiColon expression RightParen statement
                     | For LeftParen expression SemiColon expression SemiColon RightParen statement
                     | For LeftParen expression SemiColon SemiColon expression RightParen statement
                     | For LeftParen SemiColon expression SemiColon expression RightParen statement
                     | For LeftParen expression SemiColon SemiColon RightParen statement
                     | For LeftParen SemiColon expression SemiColon RightParen statement
                     | For LeftParen SemiColon SemiColon expression RightParen statement
                     | For LeftParen SemiColon SemiColon RightParen statement
                     | For LeftParen declaration expression SemiColon expression RightParen statement
                     | For LeftParen declaration expression SemiColon RightParen statement
                     | For LeftParen declaration SemiColon expression RightParen statement
                     | For LeftParen declaration SemiColon RightParen statement ;

jumpStatement -> Goto Identifier SemiColon
                | Continue SemiColon
                | Break SemiColon
                | Return expression SemiColon
                | Return SemiColon ;
`

// Load parses Source into a ready-to-use Grammar, panicking on a malformed
// embedded grammar since Source is a compile-time constant, not user input.
func Load() *grammar.Grammar {
	return grammar.MustParse(Source)
}

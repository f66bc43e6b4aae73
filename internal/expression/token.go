package expression

import "fmt"

type TokenKind int

const (
	IntegerLiteralToken TokenKind = iota
	IdentifierToken
	OperatorToken
	LeftParenToken
	RightParenToken
)

func (k TokenKind) String() string {
	switch k {
	case IntegerLiteralToken:
		return "IntegerLiteral"
	case IdentifierToken:
		return "Identifier"
	case OperatorToken:
		return "Operator"
	case LeftParenToken:
		return "LeftParen"
	case RightParenToken:
		return "RightParen"
	default:
		return fmt.Sprintf("TokenKind(%d)", int(k))
	}
}

// Token is a lexeme of a postfix expression. BeginsPos and EndsPos are
// byte offsets into the expression source.
type Token struct {
	Kind      TokenKind
	Literal   string
	BeginsPos int
	EndsPos   int
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%s)@%d", t.Kind, t.Literal, t.BeginsPos)
}

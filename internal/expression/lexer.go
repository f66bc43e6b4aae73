package expression

import (
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/karupanerura/configlang/internal/defaults"
	"github.com/karupanerura/configlang/internal/types"
)

type lexer struct {
	source string
	index  int
}

func newLexer(source string) *lexer {
	return &lexer{source: source}
}

// Tokenize splits a postfix expression into tokens. Words are maximal runs
// of letters, digits and underscores; a word is an operator only when the
// whole word is a keyword, so "moderate" stays a single identifier.
func Tokenize(source string) ([]Token, error) {
	lex := newLexer(source)

	var tokens []Token
	for {
		tok, err := lex.consume()
		if err == io.EOF {
			return tokens, nil
		} else if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
	}
}

func (l *lexer) consume() (Token, error) {
	for l.index != len(l.source) {
		switch c := l.source[l.index]; c {
		case ' ', '\t':
			l.index++ // just skip white spaces
		case '+', '-':
			l.index++
			return l.token(OperatorToken, l.index-1), nil
		case '(':
			l.index++
			return l.token(LeftParenToken, l.index-1), nil
		case ')':
			l.index++
			return l.token(RightParenToken, l.index-1), nil
		default:
			if !isWordChar(c) {
				r, _ := utf8.DecodeRuneInString(l.source[l.index:])
				return Token{}, &types.Error{
					Tag: types.UnknownTokenErrorTag,
					Err: fmt.Errorf("unexpected character %q at %d", r, l.index),
					Extra: map[string]any{
						"token":    string(r),
						"position": l.index,
					},
				}
			}

			begins := l.index
			for l.index != len(l.source) && isWordChar(l.source[l.index]) {
				l.index++
			}
			return l.token(classifyWord(l.source[begins:l.index]), begins), nil
		}
	}

	return Token{}, io.EOF
}

func (l *lexer) token(kind TokenKind, begins int) Token {
	return Token{
		Kind:      kind,
		Literal:   l.source[begins:l.index],
		BeginsPos: begins,
		EndsPos:   l.index,
	}
}

func classifyWord(word string) TokenKind {
	if _, isOP := defaults.LookupOperator(word); isOP {
		return OperatorToken
	}
	if IsIntegerLiteral(word) {
		return IntegerLiteralToken
	}
	return IdentifierToken
}

func isWordChar(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9') || c == '_'
}

// IsIntegerLiteral reports whether s is a non-empty run of ASCII digits.
func IsIntegerLiteral(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || '9' < s[i] {
			return false
		}
	}
	return true
}

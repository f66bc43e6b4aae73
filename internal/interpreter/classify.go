package interpreter

import (
	"fmt"
	"strings"
)

type LineKind int

const (
	BlankLine LineKind = iota
	CommentLine
	DeclarationLine
	ExpressionLine
	ArrayLiteralLine
	InvalidLine
)

func (k LineKind) String() string {
	switch k {
	case BlankLine:
		return "Blank"
	case CommentLine:
		return "Comment"
	case DeclarationLine:
		return "Declaration"
	case ExpressionLine:
		return "Expression"
	case ArrayLiteralLine:
		return "ArrayLiteral"
	case InvalidLine:
		return "Invalid"
	default:
		return fmt.Sprintf("LineKind(%d)", int(k))
	}
}

const (
	reservedOperator  = "<"
	commentPrefix     = `"`
	declarationPrefix = "def "
	expressionPrefix  = "!"
	arrayBegins       = "{"
	arrayEnds         = "}"
)

// ClassifyLine maps an already trimmed line to its kind. It does not look
// for the reserved operator; see HasReservedOperator.
func ClassifyLine(line string) LineKind {
	switch {
	case line == "":
		return BlankLine
	case strings.HasPrefix(line, commentPrefix):
		return CommentLine
	case strings.HasPrefix(line, declarationPrefix):
		return DeclarationLine
	case strings.HasPrefix(line, expressionPrefix):
		return ExpressionLine
	case strings.HasPrefix(line, arrayBegins) && strings.HasSuffix(line, arrayEnds):
		return ArrayLiteralLine
	default:
		return InvalidLine
	}
}

// HasReservedOperator reports whether line uses "<", which is reserved for
// future versions of the language anywhere in a document, comments included.
func HasReservedOperator(line string) bool {
	return strings.Contains(line, reservedOperator)
}

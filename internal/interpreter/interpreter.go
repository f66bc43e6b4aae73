package interpreter

import (
	"fmt"
	"io"
	"log"
	"os"
	"regexp"
	"strings"

	"github.com/k0kubun/pp"
	"github.com/karupanerura/configlang/internal/expression"
	"github.com/karupanerura/configlang/internal/types"
)

var lineBreakRegexp = regexp.MustCompile(`\r\n|\r|\n`)

// Interpreter parses documents of the configuration language. Constants
// declared by one Parse call stay visible to the following calls on the
// same instance. An Interpreter must not be used concurrently.
type Interpreter struct {
	constants *types.ConstantTable
	Debug     bool
}

func New() *Interpreter {
	return &Interpreter{constants: types.NewConstantTable()}
}

// NewWithPredefined returns an interpreter whose documents can refer to
// predefined constants. Declarations shadow them without modifying them.
func NewWithPredefined(predefined *types.ConstantTable) *Interpreter {
	return &Interpreter{constants: types.NewConstantTableWithParent(predefined)}
}

// Constants exposes the table of declared constants.
func (in *Interpreter) Constants() *types.ConstantTable {
	return in.constants
}

// Parse declares constants line by line and returns as soon as it reaches
// an expression or an array literal. A document with neither yields the
// empty mapping.
func (in *Interpreter) Parse(source string) (types.Result, error) {
	for i, rawLine := range lineBreakRegexp.Split(source, -1) {
		lineNumber := i + 1
		line := strings.TrimSpace(rawLine)

		if HasReservedOperator(line) {
			return types.Result{}, lineError(lineNumber, line, &types.Error{
				Tag: types.ReservedOperatorErrorTag,
				Err: fmt.Errorf("Operator '<' is reserved for future use: %s", line),
			})
		}

		kind := ClassifyLine(line)
		if in.debug() {
			in.logf("line %d: %s: %s", lineNumber, kind, line)
		}

		switch kind {
		case BlankLine, CommentLine:
			continue

		case DeclarationLine:
			if err := in.declare(line); err != nil {
				return types.Result{}, lineError(lineNumber, line, err)
			}

		case ExpressionLine:
			e := expression.Evaluator{ConstantTable: in.constants, Debug: in.Debug}
			v, err := e.EvaluateString(strings.TrimSpace(strings.TrimPrefix(line, expressionPrefix)))
			if err != nil {
				return types.Result{}, lineError(lineNumber, line, err)
			}
			return types.ScalarInteger(v), nil

		case ArrayLiteralLine:
			vs, err := in.parseArray(line)
			if err != nil {
				return types.Result{}, lineError(lineNumber, line, err)
			}
			return types.IntegerSequence(vs), nil

		case InvalidLine:
			return types.Result{}, lineError(lineNumber, line, &types.Error{
				Tag: types.InvalidSyntaxErrorTag,
				Err: fmt.Errorf("invalid syntax: %s", line),
			})

		default:
			panic(fmt.Sprintf("should not reach here: kind=%s", kind))
		}
	}

	if in.debug() {
		in.logf("no expression or array literal, declared constants: %v", in.constants.Names())
		pp.Fprintln(os.Stderr, in.constants.Flatten())
	}
	return types.EmptyMapping(), nil
}

func (in *Interpreter) ParseReader(r io.Reader) (types.Result, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return types.Result{}, fmt.Errorf("io.ReadAll: %w", err)
	}
	return in.Parse(string(b))
}

func (in *Interpreter) debug() bool {
	return in.Debug || expression.DebugLog
}

func (in *Interpreter) logf(format string, args ...any) {
	log.Printf("[configlang] "+format, args...)
}

func lineError(lineNumber int, line string, err error) error {
	err = types.WithExtra(err, "line", line)
	err = types.WithExtra(err, "lineNumber", lineNumber)
	return fmt.Errorf("line %d: %w", lineNumber, err)
}

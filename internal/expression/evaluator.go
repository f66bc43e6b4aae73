package expression

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/edwingeng/deque"
	"github.com/k0kubun/pp"
	"github.com/karupanerura/configlang/internal/defaults"
	"github.com/karupanerura/configlang/internal/types"
)

// Evaluator runs postfix expressions against a constant table. It only
// reads the table, so repeated evaluation of the same source is stable.
type Evaluator struct {
	ConstantTable *types.ConstantTable
	Debug         bool
}

func (e *Evaluator) debug() bool {
	return e.Debug || DebugLog
}

// EvaluateString tokenizes source and evaluates it.
func (e *Evaluator) EvaluateString(source string) (int64, error) {
	tokens, err := Tokenize(source)
	if err != nil {
		return 0, err
	}
	if e.debug() {
		pp.Fprintln(os.Stderr, source)
		pp.Fprintln(os.Stderr, tokens)
	}

	return e.Evaluate(tokens)
}

// Evaluate consumes tokens strictly left to right. Parentheses are accepted
// but carry no grouping: input order is evaluation order.
func (e *Evaluator) Evaluate(tokens []Token) (int64, error) {
	stack := deque.NewDeque()
	for _, tok := range tokens {
		switch tok.Kind {
		case IntegerLiteralToken:
			v, err := strconv.ParseInt(tok.Literal, 10, 64)
			if err != nil {
				return 0, &types.Error{
					Tag:   types.InvalidValueErrorTag,
					Err:   fmt.Errorf("integer literal %s at %d: %w", tok.Literal, tok.BeginsPos, err),
					Extra: map[string]any{"token": tok.Literal},
				}
			}
			stack.PushBack(v)

		case IdentifierToken:
			v, ok := e.lookup(tok.Literal)
			if !ok {
				return 0, &types.Error{
					Tag:   types.UnknownTokenErrorTag,
					Err:   fmt.Errorf("unknown token %s at %d, ensure all constants are defined", tok.Literal, tok.BeginsPos),
					Extra: map[string]any{"token": tok.Literal},
				}
			}
			stack.PushBack(v)

		case OperatorToken:
			op, ok := defaults.LookupOperator(tok.Literal)
			if !ok {
				return 0, &types.Error{
					Tag:   types.UnknownTokenErrorTag,
					Err:   fmt.Errorf("unknown operator %s at %d", tok.Literal, tok.BeginsPos),
					Extra: map[string]any{"token": tok.Literal},
				}
			}
			if stack.Len() < 2 {
				return 0, &types.Error{
					Tag:   types.InsufficientOperandsErrorTag,
					Err:   fmt.Errorf("not enough operands for operator %s at %d", tok.Literal, tok.BeginsPos),
					Extra: map[string]any{"token": tok.Literal, "stack": drain(stack)},
				}
			}

			right := stack.PopBack().(int64)
			left := stack.PopBack().(int64)
			ret, err := op.Apply(left, right)
			if err != nil {
				return 0, types.WithExtra(fmt.Errorf("operator %s at %d: %w", tok.Literal, tok.BeginsPos, err), "token", tok.Literal)
			}
			stack.PushBack(ret)

		case LeftParenToken, RightParenToken:
			// no grouping in postfix notation

		default:
			panic(fmt.Sprintf("should not reach here: token=%v", tok))
		}

		if e.debug() {
			log.Printf("%s -> stack depth %d", tok, stack.Len())
		}
	}

	if stack.Len() != 1 {
		remaining := drain(stack)
		return 0, &types.Error{
			Tag:   types.InvalidExpressionErrorTag,
			Err:   fmt.Errorf("expression must leave exactly one value, remaining stack: %v", remaining),
			Extra: map[string]any{"stack": remaining},
		}
	}
	return stack.PopBack().(int64), nil
}

func (e *Evaluator) lookup(name string) (int64, bool) {
	if e.ConstantTable == nil {
		return 0, false
	}
	return e.ConstantTable.Get(name)
}

// drain empties the stack and returns its contents bottom first.
func drain(stack deque.Deque) []int64 {
	values := make([]int64, 0, stack.Len())
	for stack.Len() != 0 {
		values = append(values, stack.PopFront().(int64))
	}
	return values
}

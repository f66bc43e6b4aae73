package defaults

import (
	"errors"
	"fmt"

	"github.com/karupanerura/configlang/internal/types"
)

var Operators = aggregateOperatorsToMap(
	types.NewOperator("+", func(left, right int64) (int64, error) {
		return left + right, nil
	}),
	types.NewOperator("-", func(left, right int64) (int64, error) {
		return left - right, nil
	}),
	types.NewOperator("min", func(left, right int64) (int64, error) {
		if right < left {
			return right, nil
		}
		return left, nil
	}),
	types.NewOperator("mod", FlooredMod),
)

// FlooredMod returns left modulo right with the sign of right, so that
// -7 mod 3 == 2 and 7 mod -3 == -2.
func FlooredMod(left, right int64) (int64, error) {
	if right == 0 {
		return 0, &types.Error{
			Tag: types.DivisionByZeroErrorTag,
			Err: errors.New("integer modulo by zero"),
		}
	}
	if right == -1 {
		return 0, nil // avoids MinInt64 % -1 overflow trap
	}

	m := left % right
	if m != 0 && (m < 0) != (right < 0) {
		m += right
	}
	return m, nil
}

func LookupOperator(name string) (types.Operator, bool) {
	op, ok := Operators[name]
	return op, ok
}

func aggregateOperatorsToMap(ops ...types.Operator) map[string]types.Operator {
	m := make(map[string]types.Operator, len(ops))
	for _, op := range ops {
		name := op.Name()
		if _, duplicated := m[name]; duplicated {
			panic(fmt.Sprintf("duplicated operator name: %s", name))
		}
		m[name] = op
	}
	return m
}

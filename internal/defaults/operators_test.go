package defaults_test

import (
	"testing"

	"github.com/karupanerura/configlang/internal/defaults"
	"github.com/karupanerura/configlang/internal/types"
)

func TestOperators(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		op          string
		left, right int64
		expected    int64
		expectedTag types.ErrorTag
	}{
		{op: "+", left: 10, right: 5, expected: 15},
		{op: "+", left: -3, right: 1, expected: -2},
		{op: "-", left: 10, right: 5, expected: 5},
		{op: "-", left: 5, right: 10, expected: -5},
		{op: "min", left: 5, right: 3, expected: 3},
		{op: "min", left: 3, right: 5, expected: 3},
		{op: "min", left: -4, right: -4, expected: -4},
		{op: "mod", left: 10, right: 3, expected: 1},
		{op: "mod", left: 9, right: 3, expected: 0},
		{op: "mod", left: -7, right: 3, expected: 2},
		{op: "mod", left: 7, right: -3, expected: -2},
		{op: "mod", left: -7, right: -3, expected: -1},
		{op: "mod", left: -9223372036854775808, right: -1, expected: 0},
		{op: "mod", left: 1, right: 0, expectedTag: types.DivisionByZeroErrorTag},
	} {
		tt := tt
		op, ok := defaults.LookupOperator(tt.op)
		if !ok {
			t.Fatalf("operator %q is not defined", tt.op)
		}

		ret, err := op.Apply(tt.left, tt.right)
		if tt.expectedTag != "" {
			if !types.IsTag(err, tt.expectedTag) {
				t.Errorf("%d %d %s: expect %s error but got %v", tt.left, tt.right, tt.op, tt.expectedTag, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("%d %d %s: unexpected error: %v", tt.left, tt.right, tt.op, err)
			continue
		}
		if ret != tt.expected {
			t.Errorf("%d %d %s: expect to %d but got %d", tt.left, tt.right, tt.op, tt.expected, ret)
		}
	}
}

func TestLookupOperatorUnknown(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"*", "/", "max", "<", ""} {
		if _, ok := defaults.LookupOperator(name); ok {
			t.Errorf("%q should not be an operator", name)
		}
	}
}

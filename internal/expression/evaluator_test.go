package expression_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/karupanerura/configlang/internal/expression"
	"github.com/karupanerura/configlang/internal/types"
)

func TestEvaluateString(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		constants   map[string]int64
		source      string
		expected    int64
		expectedTag types.ErrorTag
	}{
		{
			constants: map[string]int64{"a": 10},
			source:    "(a 5 +)",
			expected:  15,
		},
		{
			source:   "(5 3 min)",
			expected: 3,
		},
		{
			source:   "(10 3 mod)",
			expected: 1,
		},
		{
			source:   "10 3 -",
			expected: 7,
		},
		{
			source:   "3 10 -",
			expected: -7,
		},
		{
			source:   "1 2 + 3 +",
			expected: 6,
		},
		{
			source:   "1 2 3 + -",
			expected: -4,
		},
		{
			source:   "((((7",
			expected: 7,
		},
		{
			source:   ")1 2 +(",
			expected: 3,
		},
		{
			constants: map[string]int64{"moderate": 4},
			source:    "moderate 3 mod",
			expected:  1,
		},
		{
			constants: map[string]int64{"max_value": 100, "min_value": 5},
			source:    "max_value min_value min",
			expected:  5,
		},
		{
			source:      "(1 2)",
			expectedTag: types.InvalidExpressionErrorTag,
		},
		{
			source:      "()",
			expectedTag: types.InvalidExpressionErrorTag,
		},
		{
			source:      "",
			expectedTag: types.InvalidExpressionErrorTag,
		},
		{
			source:      "(x 1 +)",
			expectedTag: types.UnknownTokenErrorTag,
		},
		{
			source:      "(1 +)",
			expectedTag: types.InsufficientOperandsErrorTag,
		},
		{
			source:      "min",
			expectedTag: types.InsufficientOperandsErrorTag,
		},
		{
			source:      "(1 0 mod)",
			expectedTag: types.DivisionByZeroErrorTag,
		},
		{
			source:      "99999999999999999999 1 +",
			expectedTag: types.InvalidValueErrorTag,
		},
		{
			source:      "1 2 <",
			expectedTag: types.UnknownTokenErrorTag,
		},
	} {
		tt := tt
		t.Run(tt.source, func(t *testing.T) {
			t.Parallel()

			ct := types.NewConstantTable()
			for name, value := range tt.constants {
				ct.Set(name, value)
			}

			e := expression.Evaluator{ConstantTable: ct}
			ret, err := e.EvaluateString(tt.source)
			if tt.expectedTag != "" {
				if !types.IsTag(err, tt.expectedTag) {
					t.Fatalf("should be %s error but got %v", tt.expectedTag, err)
				}
				t.Logf("expected error: %v", err)
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if ret != tt.expected {
				t.Errorf("expect to %d but got %d", tt.expected, ret)
			}
		})
	}
}

func TestEvaluateReportsRemainingStack(t *testing.T) {
	t.Parallel()

	e := expression.Evaluator{}
	_, err := e.EvaluateString("(1 2 3 + 4)")

	var exception *types.Error
	if !errors.As(err, &exception) {
		t.Fatalf("unexpected error: %v", err)
	}
	if exception.Tag != types.InvalidExpressionErrorTag {
		t.Fatalf("unexpected tag: %s", exception.Tag)
	}
	if diff := cmp.Diff([]int64{1, 5, 4}, exception.Extra["stack"]); diff != "" {
		t.Errorf("(-expected, +got)\n%s", diff)
	}
}

func TestEvaluateIsIdempotent(t *testing.T) {
	t.Parallel()

	ct := types.NewConstantTable()
	ct.Set("a", 10)
	ct.Set("b", 4)
	before := ct.Flatten()

	e := expression.Evaluator{ConstantTable: ct}
	for _, source := range []string{"(a b mod)", "a b - 1 +", "(a b min)"} {
		first, err := e.EvaluateString(source)
		if err != nil {
			t.Fatal(err)
		}
		for i := 0; i < 3; i++ {
			ret, err := e.EvaluateString(source)
			if err != nil {
				t.Fatal(err)
			}
			if ret != first {
				t.Errorf("%s: expect to %d but got %d", source, first, ret)
			}
		}
	}

	if diff := cmp.Diff(before, ct.Flatten()); diff != "" {
		t.Errorf("constant table was mutated (-before, +after)\n%s", diff)
	}
}

func TestEvaluateTokens(t *testing.T) {
	t.Parallel()

	e := expression.Evaluator{ConstantTable: types.NewConstantTable()}
	ret, err := e.Evaluate([]expression.Token{
		{Kind: expression.IntegerLiteralToken, Literal: "8"},
		{Kind: expression.IntegerLiteralToken, Literal: "3"},
		{Kind: expression.OperatorToken, Literal: "mod"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if ret != 2 {
		t.Errorf("expect to 2 but got %d", ret)
	}
}

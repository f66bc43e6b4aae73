package types

import "fmt"

// Operator is a binary integer operator usable in postfix expressions.
type Operator interface {
	Name() string
	Apply(left, right int64) (int64, error)
}

type binaryOperator struct {
	name string
	fn   func(left, right int64) (int64, error)
}

func (o *binaryOperator) Name() string {
	return o.name
}

func (o *binaryOperator) Apply(left, right int64) (int64, error) {
	ret, err := o.fn(left, right)
	if err != nil {
		return 0, fmt.Errorf("%s(%d, %d): %w", o.name, left, right, err)
	}
	return ret, nil
}

func (o *binaryOperator) String() string {
	return o.name
}

func NewOperator(name string, fn func(left, right int64) (int64, error)) Operator {
	if name == "" {
		panic("operator name must not be empty")
	}
	return &binaryOperator{name: name, fn: fn}
}

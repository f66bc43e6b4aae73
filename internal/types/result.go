package types

import "fmt"

type ResultKind int

const (
	EmptyMappingResult ResultKind = iota
	ScalarIntegerResult
	IntegerSequenceResult
)

func (k ResultKind) String() string {
	switch k {
	case EmptyMappingResult:
		return "EmptyMapping"
	case ScalarIntegerResult:
		return "ScalarInteger"
	case IntegerSequenceResult:
		return "IntegerSequence"
	default:
		return fmt.Sprintf("ResultKind(%d)", int(k))
	}
}

// Result is the outcome of parsing a whole document.
type Result struct {
	Kind     ResultKind
	Scalar   int64
	Sequence []int64
}

func EmptyMapping() Result {
	return Result{Kind: EmptyMappingResult}
}

func ScalarInteger(v int64) Result {
	return Result{Kind: ScalarIntegerResult, Scalar: v}
}

func IntegerSequence(vs []int64) Result {
	if vs == nil {
		vs = []int64{}
	}
	return Result{Kind: IntegerSequenceResult, Sequence: vs}
}

// Value converts the result into a plain value ready for serialization:
// an empty map, an int64 or a slice of int64.
func (r Result) Value() any {
	switch r.Kind {
	case ScalarIntegerResult:
		return r.Scalar
	case IntegerSequenceResult:
		return r.Sequence
	default:
		return map[string]any{}
	}
}

func (r Result) String() string {
	switch r.Kind {
	case ScalarIntegerResult:
		return fmt.Sprint(r.Scalar)
	case IntegerSequenceResult:
		return fmt.Sprint(r.Sequence)
	default:
		return "{}"
	}
}

package interpreter

import (
	"fmt"
	"strconv"

	"github.com/karupanerura/configlang/internal/expression"
	"github.com/karupanerura/configlang/internal/types"
)

// resolve turns a literal or a constant name into its integer value.
func (in *Interpreter) resolve(text string) (int64, error) {
	if expression.IsIntegerLiteral(text) {
		v, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return 0, &types.Error{
				Tag:   types.InvalidValueErrorTag,
				Err:   fmt.Errorf("invalid value %s: %w", text, err),
				Extra: map[string]any{"token": text},
			}
		}
		return v, nil
	}
	if v, ok := in.constants.Get(text); ok {
		return v, nil
	}

	return 0, &types.Error{
		Tag:   types.InvalidValueErrorTag,
		Err:   fmt.Errorf("invalid value %q", text),
		Extra: map[string]any{"token": text},
	}
}

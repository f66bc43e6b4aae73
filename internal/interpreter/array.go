package interpreter

import (
	"fmt"
	"strings"
)

const arraySeparator = "."

// parseArray resolves the elements of a "{ v1. v2. }" literal in order.
// Empty pieces left by trailing or doubled separators are dropped.
func (in *Interpreter) parseArray(line string) ([]int64, error) {
	body := strings.TrimSuffix(strings.TrimPrefix(line, arrayBegins), arrayEnds)

	values := []int64{}
	for i, piece := range strings.Split(body, arraySeparator) {
		piece = strings.TrimSpace(piece)
		if piece == "" {
			continue
		}

		v, err := in.resolve(piece)
		if err != nil {
			return nil, fmt.Errorf("element[%d]: %w", i, err)
		}
		values = append(values, v)
	}
	return values, nil
}

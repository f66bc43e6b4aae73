package interpreter

import (
	"fmt"
	"regexp"

	"github.com/karupanerura/configlang/internal/types"
)

var declarationRegexp = regexp.MustCompile(`^def\s+([_a-z]+)\s*=\s*([^\s;]+)\s*;$`)

// declare binds the constant of a "def <name> = <value>;" line.
func (in *Interpreter) declare(line string) error {
	m := declarationRegexp.FindStringSubmatch(line)
	if m == nil {
		return &types.Error{
			Tag: types.InvalidDeclarationErrorTag,
			Err: fmt.Errorf("invalid constant declaration: %s", line),
		}
	}

	name, valueText := m[1], m[2]
	value, err := in.resolve(valueText)
	if err != nil {
		return fmt.Errorf("constant %s: %w", name, err)
	}

	if in.debug() {
		if _, exists := in.constants.Get(name); exists {
			in.logf("redeclare %s = %d", name, value)
		} else {
			in.logf("declare %s = %d", name, value)
		}
	}
	in.constants.Set(name, value)
	return nil
}

var constantNameRegexp = regexp.MustCompile(`^[_a-z]+$`)

// IsValidConstantName reports whether name can be bound by a declaration.
func IsValidConstantName(name string) bool {
	return constantNameRegexp.MatchString(name)
}

package types

import (
	"sort"

	"github.com/samber/lo"
)

// ConstantTable holds the constants declared by one interpreter instance.
// It is not safe for concurrent mutation.
type ConstantTable struct {
	Constants map[string]int64
	Parent    *ConstantTable
}

func NewConstantTable() *ConstantTable {
	return &ConstantTable{
		Constants: map[string]int64{},
	}
}

// NewConstantTableWithParent returns an empty table whose lookups fall
// through to parent. Declarations never write into parent.
func NewConstantTableWithParent(parent *ConstantTable) *ConstantTable {
	return &ConstantTable{
		Constants: map[string]int64{},
		Parent:    parent,
	}
}

func (ct *ConstantTable) Get(name string) (int64, bool) {
	v, ok := ct.Constants[name]
	if ok {
		return v, true
	}
	if ct.Parent != nil {
		return ct.Parent.Get(name)
	}
	return 0, false
}

// Set binds name to value, overwriting any previous binding.
func (ct *ConstantTable) Set(name string, value int64) {
	ct.Constants[name] = value
}

// Names returns every visible constant name in sorted order.
func (ct *ConstantTable) Names() []string {
	names := lo.Keys(ct.Flatten())
	sort.Strings(names)
	return names
}

// Flatten merges the table with its parents; own bindings shadow parents.
func (ct *ConstantTable) Flatten() map[string]int64 {
	if ct.Parent == nil {
		return lo.Assign(map[string]int64{}, ct.Constants)
	}
	return lo.Assign(ct.Parent.Flatten(), ct.Constants)
}

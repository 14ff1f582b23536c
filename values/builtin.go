/*
File    : suji/values/builtin.go
Author  : The Suji Authors
*/
package values

import (
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// CallbackFunc is the signature of native functions. The Runtime handle
// lets a builtin call back into user closures and reach the interpreter's
// current standard streams.
type CallbackFunc func(rt Runtime, args []SujiValue) SujiValue

// Builtin represents a native function exposed to Suji code. MinArgs and
// MaxArgs bound the accepted arity; MaxArgs of -1 means variadic.
type Builtin struct {
	Name     string
	MinArgs  int
	MaxArgs  int
	Callback CallbackFunc
}

// GetType returns BuiltinType.
func (b *Builtin) GetType() SujiType { return BuiltinType }

// ToString renders the builtin by name.
func (b *Builtin) ToString() string { return "builtin(" + b.Name + ")" }

// ToObject returns the inspection form of the builtin.
func (b *Builtin) ToObject() string { return "<builtin[" + b.Name + "]>" }

// CheckArity reports whether the builtin accepts n arguments.
func (b *Builtin) CheckArity(n int) bool {
	if n < b.MinArgs {
		return false
	}
	return b.MaxArgs < 0 || n <= b.MaxArgs
}

// Module is a named collection of bindings produced by an import: either a
// standard-library module or the exports of a .si source file. Member order
// follows export order.
type Module struct {
	Name    string
	Members *orderedmap.OrderedMap[string, SujiValue]
}

// NewModule builds an empty module with the given name.
func NewModule(name string) *Module {
	return &Module{Name: name, Members: orderedmap.New[string, SujiValue]()}
}

// GetType returns ModuleType.
func (m *Module) GetType() SujiType { return ModuleType }

// ToString renders the module by name.
func (m *Module) ToString() string { return "module(" + m.Name + ")" }

// ToObject lists the module's members.
func (m *Module) ToObject() string {
	var names []string
	for pair := m.Members.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}
	return "<module[" + m.Name + "]{" + strings.Join(names, ", ") + "}>"
}

// Get looks up a member by name.
func (m *Module) Get(name string) (SujiValue, bool) {
	return m.Members.Get(name)
}

// Set binds a member.
func (m *Module) Set(name string, v SujiValue) {
	m.Members.Set(name, v)
}

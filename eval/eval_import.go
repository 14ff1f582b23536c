/*
File    : suji/eval/eval_import.go
Author  : The Suji Authors
*/
package eval

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/suji-lang/suji/diag"
	"github.com/suji-lang/suji/parser"
	"github.com/suji-lang/suji/scope"
	"github.com/suji-lang/suji/std"
	"github.com/suji-lang/suji/values"
)

// evalImport resolves import a:b:c and binds the resolved value under the
// last segment's name. Resolution order: the __builtins__ prefix injects a
// named builtin, std: delegates to the standard-library registry, anything
// else is a file-system path relative to the importing file. Modules load
// lazily on first import and are cached; re-imports return the cached
// Module value.
func (e *Evaluator) evalImport(n *parser.ImportStatementNode) values.SujiValue {
	name := n.Segments[len(n.Segments)-1]

	var resolved values.SujiValue
	switch n.Segments[0] {
	case "__builtins__":
		if len(n.Segments) != 2 {
			return errorAt(n, diag.ImportError,
				"__builtins__ imports name a single builtin")
		}
		builtin, ok := e.Builtins[n.Segments[1]]
		if !ok {
			return errorAt(n, diag.ImportError, "no builtin named %q", n.Segments[1])
		}
		resolved = builtin
	case "std":
		v, errV := e.resolveStd(n)
		if errV != nil {
			return errV
		}
		resolved = v
	default:
		v, errV := e.importFile(n)
		if errV != nil {
			return errV
		}
		resolved = v
	}

	e.Scp.Assign(name, resolved)
	return values.NIL
}

// resolveStd resolves the std: segment chain through the registry, then
// descends any remaining segments as module members.
func (e *Evaluator) resolveStd(n *parser.ImportStatementNode) (values.SujiValue, values.SujiValue) {
	if len(n.Segments) == 1 {
		return std.RootModule(), nil
	}
	module, ok := std.Lookup(n.Segments[1])
	if !ok {
		return nil, errorAt(n, diag.ImportError, "no std module named %q", n.Segments[1])
	}
	var current values.SujiValue = module
	for _, segment := range n.Segments[2:] {
		mod, ok := current.(*values.Module)
		if !ok {
			return nil, errorAt(n, diag.ImportError,
				"%s has no member %q", current.ToString(), segment)
		}
		member, ok := mod.Get(segment)
		if !ok {
			return nil, errorAt(n, diag.ImportError,
				"module %s has no member %q", mod.Name, segment)
		}
		current = member
	}
	return current, nil
}

// importFile resolves a colon path against the importing file's directory,
// descending segments as directories and stopping at a .si (or legacy .nn)
// file. The module's source parses once; its exports become the Module.
func (e *Evaluator) importFile(n *parser.ImportStatementNode) (values.SujiValue, values.SujiValue) {
	base := filepath.Join(append([]string{e.ScriptDir}, n.Segments...)...)
	var path string
	for _, ext := range []string{".si", ".nn"} {
		candidate := base + ext
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			path = candidate
			break
		}
	}
	if path == "" {
		return nil, errorAt(n, diag.ImportError,
			"no module found for %q", strings.Join(n.Segments, ":"))
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	if cached, ok := e.moduleCache[abs]; ok {
		return cached, nil
	}

	source, err := os.ReadFile(abs)
	if err != nil {
		return nil, errorAt(n, diag.ImportError, "cannot read module %s: %v", abs, err)
	}

	par := parser.NewParser(string(source))
	root := par.Parse()
	if par.HasErrors() {
		first := par.Errors[0]
		return nil, errorAt(n, diag.ImportError,
			"module %s failed to parse: %s", abs, first.Error())
	}

	name := n.Segments[len(n.Segments)-1]
	module := values.NewModule(name)

	sub := e.withStreams(nil, nil, nil)
	sub.Scp = scope.NewScope(nil)
	sub.ScriptDir = filepath.Dir(abs)
	sub.currentModule = module

	if result := sub.EvalProgram(root); values.IsError(result) {
		return nil, spanned(result, n)
	}

	e.moduleCache[abs] = module
	return module, nil
}

// evalExport records exports into the module under evaluation. Outside a
// module source file there is nothing to export into.
func (e *Evaluator) evalExport(n *parser.ExportStatementNode) values.SujiValue {
	if e.currentModule == nil {
		return errorAt(n, diag.InvalidOperation, "export outside of a module")
	}
	for i, key := range n.Keys {
		v := e.Eval(n.Values[i])
		if values.IsError(v) {
			return v
		}
		e.currentModule.Set(key, v)
	}
	return values.NIL
}

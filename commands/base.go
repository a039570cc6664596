// Package commands holds the interpreter's builtin commands.
//
// Each builtin lives in its own file and registers itself during init. The
// registry is immutable once the process is running: lookups are exact,
// case-sensitive matches and names are unique.
package commands

import (
	"fmt"
	"sort"

	"github.com/abircic/aash/core/sys"
)

// Name is the interpreter's name, used to prefix diagnostics.
const Name = "aash"

// AllBuiltins maps builtin names to their implementations.
var AllBuiltins = make(map[string]sys.CommandFunc)

// mustAddBuiltin registers a builtin, panicking on duplicates so a bad
// registration fails at startup instead of shadowing another command.
func mustAddBuiltin(name string, cmd sys.CommandFunc) {
	if _, ok := AllBuiltins[name]; ok {
		panic(fmt.Sprintf("duplicate builtin: %q", name))
	}
	AllBuiltins[name] = cmd
}

// Lookup resolves a builtin by exact name match.
func Lookup(name string) (sys.CommandFunc, bool) {
	cmd, ok := AllBuiltins[name]
	return cmd, ok
}

// Names returns the registered builtin names in lexicographic order.
func Names() []string {
	names := make([]string, 0, len(AllBuiltins))
	for name := range AllBuiltins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Errorf writes a diagnostic to the command's stderr with the interpreter
// name prefix.
func Errorf(sysOS sys.OS, format string, a ...interface{}) {
	fmt.Fprintf(sysOS.Stderr(), Name+": "+format+"\n", a...)
}

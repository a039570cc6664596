package commands

import (
	"github.com/abircic/aash/core/sys"
)

// Exit ends the read-eval loop. It does no work of its own; the terminate
// signal is the entire contract.
func Exit(sysOS sys.OS) sys.Signal {
	return sys.Terminate
}

var _ sys.CommandFunc = Exit

func init() {
	mustAddBuiltin("exit", Exit)
}

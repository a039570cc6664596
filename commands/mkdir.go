package commands

import (
	"github.com/abircic/aash/core/sys"
)

// Mkdir creates a single directory with mode 0755.
//
// Only the first argument is used; anything after it is ignored.
func Mkdir(sysOS sys.OS) sys.Signal {
	args := sysOS.Args()
	if len(args) < 2 {
		Errorf(sysOS, `expected argument to "mkdir"`)
		return sys.Continue
	}

	if err := sysOS.Mkdir(args[1], 0755); err != nil {
		Errorf(sysOS, "%v", err)
	}

	return sys.Continue
}

var _ sys.CommandFunc = Mkdir

func init() {
	mustAddBuiltin("mkdir", Mkdir)
}

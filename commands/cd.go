package commands

import (
	"github.com/abircic/aash/core/sys"
)

// Cd changes the working directory through the OS chdir primitive, so the
// change is visible to every later relative-path operation and launched
// program.
//
// Unlike a login shell there is no fallback to $HOME; a missing argument is
// an error and leaves the directory untouched.
func Cd(sysOS sys.OS) sys.Signal {
	args := sysOS.Args()
	if len(args) < 2 {
		Errorf(sysOS, `expected argument to "cd"`)
		return sys.Continue
	}

	if err := sysOS.Chdir(args[1]); err != nil {
		Errorf(sysOS, "%v", err)
	}

	return sys.Continue
}

var _ sys.CommandFunc = Cd

func init() {
	mustAddBuiltin("cd", Cd)
}

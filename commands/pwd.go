package commands

import (
	"fmt"

	"github.com/abircic/aash/core/sys"
)

// Pwd prints the current working directory.
//
// Lookup failures are not reported; whatever Getwd returned is printed
// best-effort.
func Pwd(sysOS sys.OS) sys.Signal {
	wd, _ := sysOS.Getwd()
	fmt.Fprintln(sysOS.Stdout(), wd)

	return sys.Continue
}

var _ sys.CommandFunc = Pwd

func init() {
	mustAddBuiltin("pwd", Pwd)
}

package commands

import (
	"fmt"

	"github.com/abircic/aash/core/sys"
)

// Ls lists the current directory, one entry per line.
//
// The conventional "." and ".." entries come first, then the directory's
// entries in whatever order the filesystem returns them. There is no flag
// handling and no sorting.
func Ls(sysOS sys.OS) sys.Signal {
	dir, err := sysOS.Open(".")
	if err != nil {
		Errorf(sysOS, "%v", err)
		return sys.Continue
	}
	defer dir.Close()

	names, err := dir.Readdirnames(-1)
	if err != nil {
		Errorf(sysOS, "%v", err)
		return sys.Continue
	}

	w := sysOS.Stdout()
	fmt.Fprintln(w, ".")
	fmt.Fprintln(w, "..")
	for _, name := range names {
		fmt.Fprintln(w, name)
	}

	return sys.Continue
}

var _ sys.CommandFunc = Ls

func init() {
	mustAddBuiltin("ls", Ls)
}

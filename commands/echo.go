package commands

import (
	"fmt"

	"github.com/abircic/aash/core/sys"
)

// Echo prints its arguments back to standard output.
//
// Every argument is followed by a single space and the line ends with one
// newline, so `echo a b c` produces "a b c \n". There are no flags; an
// argument like --help is printed literally.
func Echo(sysOS sys.OS) sys.Signal {
	w := sysOS.Stdout()
	for _, arg := range sysOS.Args()[1:] {
		fmt.Fprintf(w, "%s ", arg)
	}
	fmt.Fprintln(w)

	return sys.Continue
}

var _ sys.CommandFunc = Echo

func init() {
	mustAddBuiltin("echo", Echo)
}

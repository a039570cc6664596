package commands

import (
	"fmt"

	"github.com/abircic/aash/core/sys"
)

// Help prints the usage banner and the builtin command names, one per line.
func Help(sysOS sys.OS) sys.Signal {
	w := sysOS.Stdout()
	fmt.Fprintln(w, "Ante Bircic's AASH")
	fmt.Fprintln(w, "Type program names and arguments, and hit enter.")
	fmt.Fprintln(w, "The following are built in:")

	for _, name := range Names() {
		fmt.Fprintf(w, "  %s\n", name)
	}

	fmt.Fprintln(w, "Use the man command for information on other programs.")

	return sys.Continue
}

var _ sys.CommandFunc = Help

func init() {
	mustAddBuiltin("help", Help)
}

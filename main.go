package main

import "github.com/abircic/aash/cmd"

func main() {
	cmd.Execute()
}

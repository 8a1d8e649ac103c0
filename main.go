package main

import "github.com/tabsplit/tabsplit/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/lukman83/brandscope/cmd"

func main() {
	cmd.Execute()
}

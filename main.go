package main

import "github.com/gaurav-prasanna/markpress/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/lepinkainen/isbncheck/cmd"

var execute = cmd.Execute

func main() {
	execute()
}

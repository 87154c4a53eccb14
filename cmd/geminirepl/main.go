package main

import "github.com/diogo/geminirepl/internal/commands"

func main() {
	commands.Execute()
}

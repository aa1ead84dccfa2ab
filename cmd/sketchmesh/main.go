package main

import "github.com/lamdangelo/sketchmesh/internal/cli"

func main() {
	cli.Execute()
}

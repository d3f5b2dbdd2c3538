package main

import "github.com/entitymeta/wikiparse/internal/cli"

func main() {
	cli.Execute()
}

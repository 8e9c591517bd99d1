package main

import "healthrag/internal/cli"

func main() {
	cli.Execute()
}

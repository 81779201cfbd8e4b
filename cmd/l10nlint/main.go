package main

import "l10nlint/internal/cli"

func main() {
	cli.Execute()
}

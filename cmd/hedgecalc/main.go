package main

import "github.com/quantrlabs/hedgecalc/cli"

func main() {
	cli.Execute()
}

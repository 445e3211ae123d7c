package main

import "github.com/thrive-belize/deckbuild/internal/cli"

func main() {
	cli.Main()
}

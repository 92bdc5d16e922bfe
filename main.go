// Package main provides the gnpokedex CLI application.
// gnpokedex resolves Pokédex species into species cards.
package main

import "github.com/gnames/gnpokedex/cmd"

func main() {
	cmd.Execute()
}

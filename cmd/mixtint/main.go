// Mixtint - colour mixture decomposition
//
// Mixtint samples colours from images and determines whether target
// colours can be mixed from a set of base colours, and in what
// proportions.
//
// Copyright (c) 2026 John Mylchreest
// Licensed under the MIT License
package main

import (
	"github.com/jmylchreest/mixtint/internal/cli"
)

func main() {
	cli.Execute()
}

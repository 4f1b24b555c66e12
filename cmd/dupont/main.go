// Copyright (c) 2023 Colin McRae

// Command dupont evaluates the Dupont contraction of simplicial and cubical
// forms: transferred products, binary trees and differential matrices.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// SPDX-License-Identifier: MIT
// Command tmm: Transfer Matrix Method spectrum calculator.

package main

import "github.com/optikon/spectra/cmd/tmm/cmd"

func main() {
	cmd.Execute()
}

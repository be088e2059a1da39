package main

import (
	"github.com/spf13/cobra"

	"datum/src/cmd/datum/scancmd"
)

// newScanCmd creates the "scan" command for bulk decoding of files or stdin.
func newScanCmd() *cobra.Command { return scancmd.New() }

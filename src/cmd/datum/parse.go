package main

import (
	"github.com/spf13/cobra"

	"datum/src/cmd/datum/parsecmd"
)

// newParseCmd creates the "parse" command to decode a single text.
func newParseCmd() *cobra.Command { return parsecmd.New() }

package main

import (
	"datum/src/cmd/datum/monthscmd"

	"github.com/spf13/cobra"
)

// newMonthsCmd creates the "months" command listing the name catalogue.
func newMonthsCmd() *cobra.Command { return monthscmd.New() }

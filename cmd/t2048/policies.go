package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/t2048/internal/autoplay"
)

var policiesCmd = &cobra.Command{
	Use:   "policies",
	Short: "List autoplay policies",
	Long:  `Shows the autoplay policies available to 't2048 sim'.`,
	Args:  cobra.NoArgs,
	Run:   runPolicies,
}

func runPolicies(_ *cobra.Command, _ []string) {
	names := autoplay.List()

	if len(names) == 0 {
		fmt.Println("No policies available.")
		return
	}

	fmt.Println("Available policies:")
	fmt.Println()
	for _, name := range names {
		fmt.Printf("  %s\n", name)
	}

	fmt.Println()
	fmt.Println("Run 't2048 sim --policy <name>' to use one.")
}

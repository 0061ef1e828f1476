package main

import (
	"github.com/spf13/cobra"

	"github.com/orgviz/orgviz/internal/summary"
	"github.com/orgviz/orgviz/pkg/graph"
)

var hybridCmd = &cobra.Command{
	Use:   "hybrid",
	Short: "Build the hybrid graph (organization hubs plus person nodes)",
	Long: `Build the hybrid view: one hub node per organization sized by member
count, every original person node sized by mentions and colored by status,
a membership edge from each person to their organization, and the original
person-to-person edges re-emitted unchanged.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTransform(cmd, summary.VariantHybrid, graph.BuildHybrid)
	},
}

func init() {
	addTransformFlags(hybridCmd)
	rootCmd.AddCommand(hybridCmd)
}

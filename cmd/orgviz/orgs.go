package main

import (
	"github.com/spf13/cobra"

	"github.com/orgviz/orgviz/internal/summary"
	"github.com/orgviz/orgviz/pkg/graph"
)

var orgsCmd = &cobra.Command{
	Use:   "orgs",
	Short: "Build the organization-centric graph",
	Long: `Build the organization-centric view: one node per organization carrying
the full member roster, and directed inter-org edges aggregating every
person-to-person edge that crosses two organizations, weighted by count
with a sample of the contributing person pairs.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTransform(cmd, summary.VariantOrgs, graph.BuildOrgs)
	},
}

func init() {
	addTransformFlags(orgsCmd)
	rootCmd.AddCommand(orgsCmd)
}

package main

import (
	"github.com/spf13/cobra"

	"github.com/orgviz/orgviz/internal/util"
	"github.com/orgviz/orgviz/pkg/logger"
)

var rootCmd = &cobra.Command{
	Use:   "orgviz",
	Short: "Derive organization-centric views from relationship graphs",
	Long: `orgviz rewrites a person-centric relationship graph into views built
around organizations.

The hybrid view keeps every person and adds organization hub nodes with
membership edges; the orgs view collapses people into their organizations
and aggregates person-to-person edges into weighted inter-org edges.

Inputs and outputs are JSON documents, referenced by local path or
s3://bucket/key. S3 access is configured through AWS_REGION, AWS_ENDPOINT,
AWS_ACCESS_KEY and AWS_SECRET_KEY (a .env file is honored).`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		util.LoadEnv()
		debug, _ := cmd.Flags().GetBool("debug")
		logger.Init(debug || util.GetEnvBool("DEBUG", false))
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
}

func addTransformFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("input", "i", "", "source graph document (path or s3://bucket/key)")
	cmd.Flags().StringP("output", "o", "", "destination for the built document (path or s3://bucket/key)")
	cmd.MarkFlagRequired("input")
	cmd.MarkFlagRequired("output")
}

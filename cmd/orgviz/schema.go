package main

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
	"github.com/spf13/cobra"

	"github.com/orgviz/orgviz/pkg/common"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema of the graph documents",
	Long: `Print the JSON Schema of the output document produced by the hybrid and
orgs commands, for downstream consumers. With --source, print the schema
of the expected input document instead.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		source, _ := cmd.Flags().GetBool("source")

		reflector := jsonschema.Reflector{
			AllowAdditionalProperties: false,
			DoNotReference:            true,
		}

		var schema *jsonschema.Schema
		if source {
			schema = reflector.Reflect(&common.SourceGraph{})
		} else {
			schema = reflector.Reflect(&common.SigmaGraph{})
		}

		data, err := json.MarshalIndent(schema, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode schema: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	},
}

func init() {
	schemaCmd.Flags().Bool("source", false, "print the input document schema instead")
	rootCmd.AddCommand(schemaCmd)
}

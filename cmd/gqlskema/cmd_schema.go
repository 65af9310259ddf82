package main

import (
	"fmt"

	j "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	gqlskema "github.com/reoring/gqlskema"
	js "github.com/reoring/gqlskema/jsonschema"
)

func schemaCommand(c *cli) *cobra.Command {
	var typeName string
	cmd := &cobra.Command{
		Use:   "schema <schema.graphql>",
		Short: "Export compiled types as JSON Schema",
		Long: `The schema subcommand prints a JSON Schema document. Without --type every
compiled type is emitted under $defs; with --type the document validates
that type.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			types, err := c.compile(args[0])
			if err != nil {
				return err
			}
			var s *js.Schema
			if typeName == "" {
				s, err = gqlskema.ExportJSONSchemas(types)
			} else {
				d, ok := types[typeName]
				if !ok {
					return fmt.Errorf("type %q not found", typeName)
				}
				s, err = gqlskema.ExportJSONSchema(d)
			}
			if err != nil {
				return err
			}
			out, err := j.MarshalIndent(s, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
	cmd.Flags().StringVar(&typeName, "type", "", "Export only this type")
	return cmd
}

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/reoring/gqlskema/graphql"
)

func compileCommand(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "compile <schema.graphql>",
		Short: "Compile a schema and print the resulting types",
		Long: `The compile subcommand compiles a schema and prints every compiled
type with its kind. Models list their fields with the descriptor name;
the identifier field is marked with "@id".`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			types, err := c.compile(args[0])
			if err != nil {
				return err
			}
			printTypes(cmd.OutOrStdout(), types)
			return nil
		},
	}
}

func printTypes(w io.Writer, types graphql.Types) {
	for _, name := range types.Names() {
		d := types[name]
		fmt.Fprintf(w, "%s %s\n", d.Kind(), name)
		if m, ok := types.Model(name); ok {
			for _, f := range m.Fields() {
				mark := ""
				if f.Name == m.IdentifierField() {
					mark = " @id"
				}
				fmt.Fprintf(w, "  %s: %s%s\n", f.Name, f.Type.Name(), mark)
			}
		}
		if e, ok := types.Enum(name); ok {
			for _, v := range e.Values() {
				fmt.Fprintf(w, "  %s\n", v)
			}
		}
		if u, ok := types.Union(name); ok {
			for _, m := range u.Alternatives() {
				fmt.Fprintf(w, "  | %s\n", m.Name())
			}
		}
	}
}

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	gqlskema "github.com/reoring/gqlskema"
)

func validateCommand(c *cli) *cobra.Command {
	var typeName string
	cmd := &cobra.Command{
		Use:   "validate <schema.graphql> [instance.json]",
		Short: "Validate a JSON instance against a compiled type",
		Long: `The validate subcommand reads a JSON document (from a file, or stdin when
omitted or "-") and checks it against the type selected with --type.
Every issue is printed as "<path> <code> <message>".`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if typeName == "" {
				return errors.New("--type is required")
			}
			types, err := c.compile(args[0])
			if err != nil {
				return err
			}
			d, ok := types[typeName]
			if !ok {
				return fmt.Errorf("type %q not found", typeName)
			}
			data, err := readInstance(cmd.InOrStdin(), args[1:])
			if err != nil {
				return err
			}
			_, err = gqlskema.ParseJSON(cmd.Context(), d, data)
			if err == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "ok")
				return nil
			}
			if iss, ok := gqlskema.AsIssues(err); ok {
				for _, it := range iss {
					fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", it.Path, it.Code, it.Message)
				}
			}
			return err
		},
	}
	cmd.Flags().StringVar(&typeName, "type", "", "Type to validate against")
	return cmd
}

func readInstance(stdin io.Reader, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(args[0])
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reoring/declschema"
	"github.com/reoring/declschema/catalog"
)

func newSchemaCommand(f *rootFlags) *cobra.Command {
	var (
		format string
		strict bool
	)
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Build the schema rooted at the top-level receiver and print it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			scope, err := loadScope(cmd, f)
			if err != nil {
				return err
			}
			if strict {
				if iss := scope.Lint(); len(iss) > 0 {
					return iss
				}
			}
			s, err := scope.Schema()
			if err != nil {
				return err
			}
			out, err := declschema.Describe(s).Encode(catalog.Format(format))
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
	cmd.Flags().StringVarP(&format, "format", "o", string(catalog.FormatYAML), "output format: yaml or json")
	cmd.Flags().BoolVar(&strict, "strict", false, "fail when lint reports findings")
	return cmd
}

func newDiscoverCommand(f *rootFlags) *cobra.Command {
	var from string
	cmd := &cobra.Command{
		Use:   "discover",
		Short: "List the types admitted from an accessor container",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			scope, err := loadScope(cmd, f)
			if err != nil {
				return err
			}
			if from == "" {
				from = f.root
			}
			ts, err := scope.Discover(from)
			if err != nil {
				return err
			}
			for _, t := range ts {
				fmt.Fprintln(cmd.OutOrStdout(), t.Name)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "starting type (defaults to --root)")
	return cmd
}

func newLintCommand(f *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "lint",
		Short: "Report non-fatal findings about accessor types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			scope, err := loadScope(cmd, f)
			if err != nil {
				return err
			}
			iss := scope.Lint()
			for _, is := range iss {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", is.Code, is.Type, is.Message)
			}
			if len(iss) > 0 {
				return iss
			}
			return nil
		},
	}
}

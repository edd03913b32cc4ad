package main

import (
	"fmt"
	"io"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
	"github.com/spf13/cobra"

	"github.com/reoring/declschema"
	"github.com/reoring/declschema/catalog"
	"github.com/reoring/declschema/projects"
)

type rootFlags struct {
	catalog   string
	root      string
	namespace string
	verbosity int
}

func main() {
	if err := newRootCommand(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	var f rootFlags
	cmd := &cobra.Command{
		Use:          "declschema",
		Short:        "Inspect the declarative DSL schema of a type catalog",
		SilenceUsage: true,
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	pf := cmd.PersistentFlags()
	pf.StringVarP(&f.catalog, "catalog", "c", "", "type catalog file (.yaml, .yml or .json)")
	pf.StringVar(&f.root, "root", projects.DefaultRootAccessor, "qualified name of the root project accessor")
	pf.StringVar(&f.namespace, "namespace", projects.DefaultNamespace, "namespace of generated accessor containers")
	pf.IntVarP(&f.verbosity, "verbosity", "v", 0, "log verbosity")
	_ = cmd.MarkPersistentFlagRequired("catalog")

	cmd.AddCommand(newSchemaCommand(&f), newDiscoverCommand(&f), newLintCommand(&f))
	return cmd
}

func newLogger(w io.Writer, verbosity int) logr.Logger {
	return funcr.New(func(prefix, args string) {
		if prefix != "" {
			fmt.Fprintf(w, "%s: %s\n", prefix, args)
			return
		}
		fmt.Fprintln(w, args)
	}, funcr.Options{Verbosity: verbosity})
}

func loadScope(cmd *cobra.Command, f *rootFlags) (*declschema.Scope, error) {
	cat, err := catalog.ReadFile(f.catalog)
	if err != nil {
		return nil, err
	}
	log := newLogger(cmd.ErrOrStderr(), f.verbosity)
	return declschema.NewScope(cat.Types, declschema.Options{
		Projects: projects.Options{RootAccessor: f.root, Namespace: f.namespace},
		Logger:   log,
	})
}

// Package cli provides the root command of field-inspector.
package cli

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"field-inspector/internal/analyze"
	"field-inspector/internal/config"
	"field-inspector/internal/inspect"
	"field-inspector/internal/report"
	"field-inspector/internal/schema"
)

// loadConfig is replaced in tests.
var loadConfig = config.LoadFromEnv

const rootLongDescription = `field-inspector discovers every type deriving from a root marker type and
prints the fields tagged as editable, grouped by their group label.

For each field it lists the values a property panel could offer: the
constants of an enum type, or the types deriving from the field's type.

The scan scope is configured through the environment:
  FIELD_INSPECTOR_PACKAGES  comma separated Go package patterns
  FIELD_INSPECTOR_SCHEMA    YAML schema file, replaces the package scope
  FIELD_INSPECTOR_ROOT      root marker type, pkg/path.Name
  FIELD_INSPECTOR_TAG       struct tag key of the editable marker (editor)
  FIELD_INSPECTOR_FORMAT    text or table`

// NewRootCmd creates the field-inspector command.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "field-inspector",
		Short:         "Print the editable fields of types deriving from a marker type",
		Long:          rootLongDescription,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			logger := log.New(cmd.ErrOrStderr(), "field-inspector: ", 0)

			return Run(cmd.Context(), cfg, cmd.OutOrStdout(), logger)
		},
	}

	return cmd
}

// Execute runs the root command and exits non-zero on failure.
// This is called by main.main().
func Execute() {
	cmd := NewRootCmd()

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		log.New(cmd.ErrOrStderr(), "field-inspector: ", 0).Print(err)
		os.Exit(1)
	}
}

// Run loads the scope described by cfg, inspects it and writes the report
// to out. Diagnostics are logged once the report has been written.
func Run(ctx context.Context, cfg config.Config, out io.Writer, logger *log.Logger) error {
	graph, err := LoadScope(ctx, cfg)
	if err != nil {
		return err
	}

	renderer, err := report.New(cfg.Format)
	if err != nil {
		return err
	}

	in := inspect.NewInspector(graph, inspect.Config{TagKey: cfg.TagKey})

	rep, err := in.Inspect(graph.Resolve(cfg.Root))
	if err != nil {
		return err
	}

	if err := renderer.Render(out, rep); err != nil {
		return fmt.Errorf("render report: %w", err)
	}

	rep.Diagnostics.Log(logger)
	if rep.Diagnostics.HasErrors() {
		skipped := len(rep.Diagnostics.Errors)
		logger.Printf("%d of %d participants skipped", skipped, skipped+len(rep.Types))
	}

	return nil
}

// LoadScope builds the type graph from the schema file or the packages.
func LoadScope(ctx context.Context, cfg config.Config) (*analyze.TypeGraph, error) {
	if cfg.UsesSchema() {
		f, err := schema.LoadFile(cfg.Schema)
		if err != nil {
			return nil, err
		}

		return schema.Build(f, cfg.TagKey), nil
	}

	return analyze.Load(ctx, cfg.Packages...)
}

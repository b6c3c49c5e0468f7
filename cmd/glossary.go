package cmd

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"

	"github.com/zjrosen/berth/internal/config"
	"github.com/zjrosen/berth/internal/glossary"
	"github.com/zjrosen/berth/internal/log"
	"github.com/zjrosen/berth/internal/presentation"
	"github.com/zjrosen/berth/internal/tracing"
)

var glossaryFormat string

var glossaryCmd = &cobra.Command{
	Use:   "glossary [query...]",
	Short: "Search the glossary of port terms",
	Long: `Search the glossary and print matching terms in term order.

The query matches terms and definitions case-insensitively. Multiple
arguments are joined with a single space. Without a query every term is
printed. The configured glossary file, when set, is merged over the
built-in terms.

Examples:
  # Print the whole glossary
  berth glossary

  # Terms mentioning arrival
  berth glossary arrival

  # Aligned table instead of JSON
  berth glossary "estimated time" --format table`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cleanup := initLogging(cmd)
		defer cleanup()

		if glossaryFormat != presentation.FormatJSON && glossaryFormat != presentation.FormatTable {
			return fmt.Errorf("unsupported format %q: must be %s or %s",
				glossaryFormat, presentation.FormatJSON, presentation.FormatTable)
		}

		runCfg, err := loadedConfig()
		if err != nil {
			return err
		}

		terms, err := loadGlossary(contentFS(&runCfg))
		if err != nil {
			return err
		}
		if runCfg.Glossary.File != "" {
			overlay, err := glossary.LoadFile(config.ExpandHome(runCfg.Glossary.File))
			if err != nil {
				return fmt.Errorf("loading glossary file: %w", err)
			}
			terms = glossary.Merge(terms, overlay)
		}

		sessionID := uuid.NewString()
		log.SetSession(sessionID)
		provider, err := newTracingProvider(runCfg.Tracing, sessionID, cmd.ErrOrStderr())
		if err != nil {
			return fmt.Errorf("starting tracing: %w", err)
		}
		defer shutdownTracing(provider)

		query := strings.Join(args, " ")
		_, span := tracing.Start(cmd.Context(), provider.Tracer(), tracing.SpanFilter,
			attribute.String(tracing.AttrQuery, query),
			attribute.Int(tracing.AttrTermCount, len(terms)),
		)
		found := glossary.Search(terms, query)
		span.SetAttributes(attribute.Int(tracing.AttrMatchCount, len(found.Entries)))
		tracing.End(span, nil)

		result := presentation.FromGlossaryResult(found)
		formatter := presentation.NewFormatter(cmd.OutOrStdout())
		if glossaryFormat == presentation.FormatTable {
			return formatter.FormatGlossaryTable(result)
		}
		return formatter.FormatGlossary(result)
	},
}

func init() {
	glossaryCmd.Flags().StringVarP(&glossaryFormat, "format", "f", presentation.FormatJSON, "Output format (json or table)")
	rootCmd.AddCommand(glossaryCmd)
}

package stagehand

import (
	"context"

	"github.com/cuebox/stagehand/internal/sources/tables"
	"github.com/cuebox/stagehand/internal/tabular"
	"github.com/cuebox/stagehand/pkg/errors"
	"github.com/cuebox/stagehand/pkg/logging"
	"github.com/cuebox/stagehand/pkg/tagmap"
	"github.com/cuebox/stagehand/pkg/tagreport"
	"github.com/cuebox/stagehand/pkg/validate"
)

// TagReport counts distinct patrons per canonical tag over the raw
// constituent export. The pass runs on the file as shipped, without
// patron ID deduplication, so counts match what the customer sent.
func (p *pipeline) TagReport(ctx context.Context) ([]tagreport.Count, error) {
	if p.options.constituentsPath == "" {
		return nil, errors.NewConfigError("tags", "constituents file is required", nil)
	}
	ctx = logging.WithLogger(ctx, p.options.logger)
	ctx = logging.WithOperation(ctx, "tags")

	aliases, err := tabular.LoadAliases(p.options.aliasesPath)
	if err != nil {
		return nil, err
	}

	srcCtx := logging.WithSource(ctx, "constituents")
	table, err := tabular.Read(srcCtx, p.options.constituentsPath, tabular.WithAliases(aliases))
	if err != nil {
		return nil, errors.WrapSource("constituents", p.options.constituentsPath, err)
	}
	sources, err := tables.Constituents(table)
	if err != nil {
		return nil, errors.WrapSource("constituents", p.options.constituentsPath, err)
	}

	mapping := p.tagClient().Load(ctx)
	resolver := tagmap.NewResolver(mapping)

	report := tagreport.Build(sources, resolver)

	logging.FromContext(ctx).Info().
		Int("rows", len(sources)).
		Int("tags", len(report)).
		Int("tag_mappings", resolver.Len()).
		Msg("Tag report built")

	return report, nil
}

// ValidateOutput re-checks a previously written constituents file. The
// records are decoded as-is and run through the same QA scan Onboard
// applies, so a hand-edited file can be verified before import.
func (p *pipeline) ValidateOutput(ctx context.Context, path string) ([]validate.Issue, error) {
	if path == "" {
		return nil, errors.NewConfigError("validate", "constituents file is required", nil)
	}
	ctx = logging.WithLogger(ctx, p.options.logger)
	ctx = logging.WithOperation(ctx, "validate")

	table, err := tabular.Read(logging.WithSource(ctx, "output"), path)
	if err != nil {
		return nil, errors.WrapSource("output", path, err)
	}
	records, err := tables.Canonical(table)
	if err != nil {
		return nil, errors.WrapSource("output", path, err)
	}

	issues := validate.Constituents(records)

	logging.FromContext(ctx).Info().
		Str("path", path).
		Int("constituents", len(records)).
		Int("issues", len(issues)).
		Msg("Output validated")

	return issues, nil
}

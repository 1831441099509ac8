package stagehand

import (
	"context"

	"github.com/cheggaaa/pb/v3"
	"golang.org/x/sync/errgroup"

	"github.com/cuebox/stagehand/internal/sources/tables"
	"github.com/cuebox/stagehand/internal/tabular"
	"github.com/cuebox/stagehand/pkg/constants"
	"github.com/cuebox/stagehand/pkg/constituents"
	"github.com/cuebox/stagehand/pkg/donations"
	"github.com/cuebox/stagehand/pkg/emails"
	"github.com/cuebox/stagehand/pkg/errors"
	"github.com/cuebox/stagehand/pkg/logging"
	"github.com/cuebox/stagehand/pkg/tagmap"
	"github.com/cuebox/stagehand/pkg/validate"
)

// Onboard runs the full reconciliation: load the three exports, build
// the per-run lookups, produce the canonical records, and validate them.
func (p *pipeline) Onboard(ctx context.Context) (*Result, error) {
	if err := p.options.requireInputs(); err != nil {
		return nil, err
	}
	ctx = logging.WithLogger(ctx, p.options.logger)
	ctx = logging.WithOperation(ctx, "onboard")

	aliases, err := tabular.LoadAliases(p.options.aliasesPath)
	if err != nil {
		return nil, err
	}

	var (
		sources         []constituents.Source
		emailRecords    []emails.Record
		donationRecords []donations.Record
		statusPresent   bool
	)

	// The three exports are independent, so they load concurrently.
	// Each goroutine owns its result variable; Wait orders the reads.
	var g errgroup.Group
	g.SetLimit(constants.MaxSourceFiles)

	g.Go(func() error {
		srcCtx := logging.WithSource(ctx, "constituents")
		table, err := tabular.Read(srcCtx, p.options.constituentsPath, tabular.WithAliases(aliases))
		if err == nil {
			sources, err = tables.Constituents(table)
		}
		return errors.WrapSource("constituents", p.options.constituentsPath, err)
	})
	g.Go(func() error {
		srcCtx := logging.WithSource(ctx, "emails")
		table, err := tabular.Read(srcCtx, p.options.emailsPath, tabular.WithAliases(aliases))
		if err == nil {
			emailRecords, err = tables.Emails(table)
		}
		return errors.WrapSource("emails", p.options.emailsPath, err)
	})
	g.Go(func() error {
		srcCtx := logging.WithSource(ctx, "donations")
		table, err := tabular.Read(srcCtx, p.options.donationsPath, tabular.WithAliases(aliases))
		if err == nil {
			donationRecords, statusPresent, err = tables.Donations(table)
		}
		return errors.WrapSource("donations", p.options.donationsPath, err)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	mapping := p.tagClient().Load(ctx)
	resolver := tagmap.NewResolver(mapping)
	index := emails.BuildIndex(emailRecords)
	aggregates := donations.Aggregate(donationRecords, statusPresent)

	deduped := constituents.Dedupe(sources)
	builder := constituents.NewBuilder(index, aggregates, resolver)

	log := logging.FromContext(ctx)
	log.Debug().
		Int("profiles", len(sources)).
		Int("deduped", len(deduped)).
		Int("emails", len(emailRecords)).
		Int("donations", len(donationRecords)).
		Int("tag_mappings", resolver.Len()).
		Bool("status_column", statusPresent).
		Msg("Inputs loaded")

	var bar *pb.ProgressBar
	if p.options.progress {
		bar = pb.StartNew(len(deduped))
	}

	records := make([]constituents.Canonical, 0, len(deduped))
	for _, src := range deduped {
		records = append(records, builder.Build(src))
		if bar != nil {
			bar.Increment()
		}
	}
	if bar != nil {
		bar.Finish()
	}

	issues := validate.Constituents(records)

	log.Info().
		Int("constituents", len(records)).
		Int("issues", len(issues)).
		Int("duplicates_dropped", len(sources)-len(deduped)).
		Msg("Reconciliation complete")

	return &Result{
		Constituents:      records,
		Issues:            issues,
		DuplicatesDropped: len(sources) - len(deduped),
		TagMappings:       resolver.Len(),
	}, nil
}

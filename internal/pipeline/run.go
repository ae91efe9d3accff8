// Package pipeline provides the high-level orchestration for article
// generation: a 10-step flow from SERP fetch through quality validation
// to the persisted result.
package pipeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/seo-content-engine/internal/analysis"
	"github.com/jonathan/seo-content-engine/internal/content"
	"github.com/jonathan/seo-content-engine/internal/db"
	"github.com/jonathan/seo-content-engine/internal/llm"
	"github.com/jonathan/seo-content-engine/internal/outline"
	"github.com/jonathan/seo-content-engine/internal/quality"
	"github.com/jonathan/seo-content-engine/internal/seo"
	"github.com/jonathan/seo-content-engine/internal/serp"
	"github.com/jonathan/seo-content-engine/internal/types"
)

// Store is the persistence surface the pipeline needs. *db.DB satisfies
// it; tests substitute an in-memory fake.
type Store interface {
	UpdateStatus(ctx context.Context, jobID uuid.UUID, status db.JobStatus) error
	SaveSERPData(ctx context.Context, jobID uuid.UUID, data any) error
	SaveOutlineData(ctx context.Context, jobID uuid.UUID, data any) error
	SaveResult(ctx context.Context, jobID uuid.UUID, result any) error
	SaveError(ctx context.Context, jobID uuid.UUID, message, kind string) error
}

// Orchestrator coordinates the specialized agents across the 10-step
// pipeline. Each instance is safe for concurrent runs.
type Orchestrator struct {
	store  Store
	source serp.Source

	analyzer  *analysis.Analyzer
	outliner  *outline.Generator
	writer    *content.Generator
	seoWriter *seo.Generator
}

// New creates an orchestrator wired to the given store, LLM client, and
// SERP source.
func New(store Store, client llm.Client, source serp.Source) *Orchestrator {
	return &Orchestrator{
		store:     store,
		source:    source,
		analyzer:  analysis.NewAnalyzer(client),
		outliner:  outline.NewGenerator(client),
		writer:    content.NewGenerator(client),
		seoWriter: seo.NewGenerator(client),
	}
}

// Run executes the full pipeline for a job. On success the result is
// persisted and the job marked completed; on failure the error and its
// kind are persisted and the job marked failed. Checkpoint and status
// writes are best-effort: losing a breadcrumb never aborts a run.
func (o *Orchestrator) Run(ctx context.Context, jobID uuid.UUID, req types.GenerateRequest) (*types.ArticleOutput, error) {
	fmt.Printf("Starting article generation: job=%s topic=%q target=%d words\n",
		jobID, req.Topic, req.TargetWordCount)

	_ = o.store.UpdateStatus(ctx, jobID, db.StatusRunning)

	output, err := o.generate(ctx, jobID, req)
	if err != nil {
		kind := KindUpstreamUnavailable
		var perr *Error
		if errors.As(err, &perr) {
			kind = perr.Kind
		}
		_ = o.store.SaveError(ctx, jobID, err.Error(), kind)
		return nil, err
	}

	if err := o.store.SaveResult(ctx, jobID, output); err != nil {
		err = &Error{Step: 10, Kind: KindPersistenceFailed, Err: err}
		_ = o.store.SaveError(ctx, jobID, err.Error(), KindPersistenceFailed)
		return nil, err
	}

	fmt.Printf("Article generation completed: job=%s score=%.1f%% words=%d\n",
		jobID, output.QualityReport.Percentage, output.Article.WordCount)

	return output, nil
}

func (o *Orchestrator) generate(ctx context.Context, jobID uuid.UUID, req types.GenerateRequest) (*types.ArticleOutput, error) {
	var warnings []string
	warn := func(step string) {
		warnings = append(warnings, step+" used fallback output")
	}

	// Step 1: fetch the top search results. A failed fetch falls back to
	// canned results so generation can proceed offline.
	fmt.Printf("Step 1/10: Fetching SERP results...\n")
	serpResults, err := o.source.Search(ctx, req.Topic, serp.DefaultResultCount)
	if err != nil {
		fmt.Printf("Warning: SERP fetch failed: %v. Falling back to mock data.\n", err)
		serpResults, _ = serp.NewMockSource().Search(ctx, req.Topic, serp.DefaultResultCount)
		warn("serp fetch")
	}

	if err := o.store.SaveSERPData(ctx, jobID, serpResults); err != nil {
		fmt.Printf("Warning: failed to save serp_data checkpoint: %v\n", err)
	}

	// Step 2: extract competitive intelligence.
	fmt.Printf("Step 2/10: Analyzing SERP data...\n")
	serpAnalysis, outcome, err := o.analyzer.Analyze(ctx, serpResults, req.Topic)
	if err != nil {
		return nil, &Error{Step: 2, Kind: KindUpstreamUnavailable, Err: err}
	}
	if outcome == types.OutcomeFallback {
		warn("serp analysis")
	}

	// Step 3: plan the article structure.
	fmt.Printf("Step 3/10: Generating article outline...\n")
	articleOutline, outcome, err := o.outliner.Generate(ctx, serpAnalysis, req.Topic, req.TargetWordCount)
	if err != nil {
		return nil, &Error{Step: 3, Kind: KindUpstreamUnavailable, Err: err}
	}
	if outcome == types.OutcomeFallback {
		warn("outline")
	}

	if err := o.store.SaveOutlineData(ctx, jobID, articleOutline); err != nil {
		fmt.Printf("Warning: failed to save outline_data checkpoint: %v\n", err)
	}

	// Step 4: write the article. The longest step by far.
	fmt.Printf("Step 4/10: Generating article content...\n")
	article, outcome, err := o.writer.Generate(ctx, articleOutline, serpAnalysis)
	if err != nil {
		return nil, &Error{Step: 4, Kind: KindUpstreamUnavailable, Err: err}
	}
	if outcome == types.OutcomeFallback {
		warn("content")
	}

	primaryKeyword := serpAnalysis.PrimaryKeyword
	if primaryKeyword == "" {
		primaryKeyword = req.Topic
	}

	// Steps 5-7 are independent of each other, so they run in parallel.
	fmt.Printf("Steps 5-7/10: Generating SEO metadata, internal links, and references in parallel...\n")

	var (
		metadata      types.SEOMetadata
		internalLinks []types.InternalLink
		externalRefs  []types.ExternalReference

		metadataOutcome types.StepOutcome
		linksOutcome    types.StepOutcome
		refsOutcome     types.StepOutcome
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		metadata, metadataOutcome, err = o.seoWriter.GenerateMetadata(gCtx, article.FullText, article.H1, primaryKeyword)
		if err != nil {
			return &Error{Step: 5, Kind: KindUpstreamUnavailable, Err: err}
		}
		return nil
	})

	g.Go(func() error {
		var err error
		internalLinks, linksOutcome, err = o.seoWriter.GenerateInternalLinks(gCtx, article.FullText, req.Topic)
		if err != nil {
			return &Error{Step: 6, Kind: KindUpstreamUnavailable, Err: err}
		}
		return nil
	})

	g.Go(func() error {
		var err error
		externalRefs, refsOutcome, err = o.seoWriter.GenerateExternalReferences(gCtx, article.FullText, req.Topic)
		if err != nil {
			return &Error{Step: 7, Kind: KindUpstreamUnavailable, Err: err}
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if metadataOutcome == types.OutcomeFallback {
		warn("seo metadata")
	}
	if linksOutcome == types.OutcomeFallback {
		warn("internal links")
	}
	if refsOutcome == types.OutcomeFallback {
		warn("external references")
	}

	// Step 8: keyword density analysis. Pure text measurement, no LLM.
	fmt.Printf("Step 8/10: Analyzing keyword usage...\n")
	keywordAnalysis := seo.AnalyzeKeywords(article.FullText, primaryKeyword, serpAnalysis.SecondaryKeywords)

	// Step 9: rule-based quality validation.
	fmt.Printf("Step 9/10: Validating quality...\n")
	qualityReport := quality.Validate(article, metadata, req.TargetWordCount)

	// Step 10: assemble the final output.
	fmt.Printf("Step 10/10: Packaging results...\n")
	return &types.ArticleOutput{
		Article:            article,
		SEOMetadata:        metadata,
		KeywordAnalysis:    keywordAnalysis,
		InternalLinks:      internalLinks,
		ExternalReferences: externalRefs,
		SERPResults:        serpResults,
		QualityReport:      qualityReport,
		Warnings:           warnings,
	}, nil
}

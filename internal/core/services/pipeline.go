package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/MullaAhmed/claude-skill-generator/internal/core/domain"
	"github.com/MullaAhmed/claude-skill-generator/internal/core/ports/driven"
	"github.com/MullaAhmed/claude-skill-generator/internal/core/ports/driving"
	"github.com/MullaAhmed/claude-skill-generator/internal/logger"
)

// DefaultConcurrency is the default number of parallel pipeline workers.
const DefaultConcurrency = 4

// ResearchFileName is where a worker stores scraped documentation inside
// its working directory, for the content collaborator to consume.
const ResearchFileName = "codewiki.md"

// Ensure Pipeline implements the interface.
var _ driving.Pipeline = (*Pipeline)(nil)

// Pipeline runs repository locators through parse, verify and the optional
// enhanced fetch. Each locator gets an independent worker with an exclusive
// working directory; the hosting API rate-limit budget is the only shared
// resource, guarded by the client's rate limiter.
type Pipeline struct {
	verifier    *Verifier
	scraper     driven.Scraper
	baseDir     string
	concurrency int
}

// NewPipeline creates a pipeline. baseDir is where worker directories are
// created; concurrency values below one fall back to the default.
func NewPipeline(verifier *Verifier, scraper driven.Scraper, baseDir string, concurrency int) *Pipeline {
	if concurrency < 1 {
		concurrency = DefaultConcurrency
	}
	return &Pipeline{
		verifier:    verifier,
		scraper:     scraper,
		baseDir:     baseDir,
		concurrency: concurrency,
	}
}

// Process runs a single locator through the sequential stages. A stage
// only starts after its predecessor succeeded; the first failure stops the
// run and is recorded on the result.
func (p *Pipeline) Process(ctx context.Context, locator string) *driving.RunResult {
	result := &driving.RunResult{
		ID:      uuid.NewString(),
		Locator: locator,
	}

	ref, err := domain.ParseReference(locator)
	if err != nil {
		return fail(result, err)
	}
	result.Reference = &ref

	metadata, err := p.verifier.Verify(ctx, ref)
	if err != nil {
		return fail(result, err)
	}
	result.Metadata = metadata

	workDir, err := p.makeWorkDir(ref, result.ID)
	if err != nil {
		return fail(result, err)
	}
	result.WorkDir = workDir

	p.scrape(ctx, ref, workDir)

	return result
}

// ProcessAll runs each locator in its own worker, at most concurrency at a
// time. Results come back in input order; one locator failing does not
// cancel the others.
func (p *Pipeline) ProcessAll(ctx context.Context, locators []string) []*driving.RunResult {
	results := make([]*driving.RunResult, len(locators))

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(p.concurrency)

	for i, locator := range locators {
		i, locator := i, locator
		group.Go(func() error {
			results[i] = p.Process(ctx, locator)
			return nil
		})
	}

	// Workers never return errors; failures live on their results.
	_ = group.Wait()

	return results
}

// makeWorkDir creates the worker's exclusive working directory. The run ID
// suffix keeps concurrent runs of the same repository apart.
func (p *Pipeline) makeWorkDir(ref domain.RepositoryReference, runID string) (string, error) {
	dir := filepath.Join(p.baseDir, fmt.Sprintf("%s-%s-%s", ref.Owner, ref.Name, runID[:8]))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create work dir: %w", err)
	}
	return dir, nil
}

// scrape fetches the repository's generated documentation into the work
// dir. Scrape failures are logged and otherwise ignored: the run proceeds
// with API metadata only.
func (p *Pipeline) scrape(ctx context.Context, ref domain.RepositoryReference, workDir string) {
	if p.scraper == nil || !p.scraper.Available() {
		logger.Debug("Enhanced fetch not configured, skipping scrape for %s", ref.FullName())
		return
	}

	scraped, err := p.scraper.Scrape(ctx, ref.CodewikiURL())
	if err != nil {
		logger.Warn("Enhanced fetch failed for %s: %v", ref.FullName(), err)
		return
	}

	target := filepath.Join(workDir, ResearchFileName)
	if err := os.WriteFile(target, []byte(scraped.Markdown), 0o644); err != nil {
		logger.Warn("Failed to store scraped content for %s: %v", ref.FullName(), err)
		return
	}
	logger.Info("Stored scraped documentation for %s (%d bytes, truncated=%t)",
		ref.FullName(), len(scraped.Markdown), scraped.Truncated)
}

// fail records err on the result in both error and string form.
func fail(result *driving.RunResult, err error) *driving.RunResult {
	result.Err = err
	result.Error = err.Error()
	return result
}

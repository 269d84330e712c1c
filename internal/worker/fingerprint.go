package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"gemflush/pkg/domain"
	"gemflush/pkg/llm"
	"gemflush/pkg/logger"
	"gemflush/pkg/serrors"
	"gemflush/pkg/storage"

	"go.uber.org/zap"
)

const (
	// maxContentChars bounds how much crawled content is embedded in the prompt.
	maxContentChars = 6000

	fingerprintSystemPrompt = `You are evaluating how well large language models know a specific business.
Answer from your own knowledge only. The provided website excerpt identifies the business, do not treat it as proof of anything beyond the business's existence.
Respond with a single JSON object and nothing else.`
)

type modelAnswer struct {
	Known       bool     `json:"known"`
	Sentiment   int      `json:"sentiment"`
	Detail      int      `json:"detail"`
	Summary     string   `json:"summary"`
	Competitors []string `json:"competitors"`
}

// runFingerprint queries every configured model about the business, computes
// the visibility score and stores a fingerprint for each business that still
// needs one. It returns the businesses with refreshed stage flags.
func (w *PipelineWorker) runFingerprint(ctx context.Context,
	url string,
	businesses []domain.Business) ([]domain.Business, error) {
	pending := make([]*domain.Business, 0, len(businesses))
	for i := range businesses {
		if !businesses[i].Stages.FingerprintDone {
			pending = append(pending, &businesses[i])
		}
	}
	if len(pending) == 0 {
		return businesses, nil
	}

	if err := w.storage.UpdateBusinessesByURL(ctx, url, storage.BusinessUpdates{
		Status:         domain.BusinessStatusFingerprinting,
		OnlyIncomplete: true,
	}); err != nil {
		return nil, fmt.Errorf("could not mark businesses fingerprinting: %w", err)
	}

	// the crawled content is identical for every business of the URL, so the
	// models are queried once and the result is fanned out.
	crawl, err := w.storage.LatestCrawlResult(ctx, pending[0].ID)
	if err != nil {
		return nil, fmt.Errorf("could not load crawl result: %w", err)
	}

	start := time.Now()
	results, err := w.queryModels(ctx, pending[0], crawl)
	w.metrics.ObserveStage(ctx, "fingerprint", time.Since(start), err)
	if err != nil {
		return nil, err
	}

	score := visibilityScore(results)
	summary := fingerprintSummary(results)

	for _, b := range pending {
		fp := domain.Fingerprint{
			BusinessID:      b.ID,
			VisibilityScore: score,
			ModelResults:    results,
			Summary:         summary,
		}
		if _, err := w.storage.StoreFingerprint(ctx, fp); err != nil {
			return nil, fmt.Errorf("could not store fingerprint: %w", err)
		}

		if err := w.storage.ReplaceCompetitors(ctx, b.ID, aggregateCompetitors(b, results)); err != nil {
			return nil, fmt.Errorf("could not store competitors: %w", err)
		}

		stages := b.Stages
		stages.FingerprintDone = true
		updated, err := w.storage.UpdateBusinessByID(ctx, b.ID, storage.BusinessUpdates{
			Status: domain.BusinessStatusFingerprinting,
			Stages: &stages,
		})
		if err != nil {
			return nil, fmt.Errorf("could not update business stages: %w", err)
		}
		if updated != nil {
			*b = *updated
		}
	}

	logger.Info(ctx, "fingerprint stage completed", zap.Int("score", score))

	return businesses, nil
}

// queryModels asks every configured model about the business concurrently.
// Individual model failures are recorded in the result set; the stage only
// fails when no model answered at all.
func (w *PipelineWorker) queryModels(ctx context.Context,
	b *domain.Business,
	crawl *domain.CrawlResult) ([]domain.ModelResult, error) {
	if len(w.options.Models) == 0 {
		return nil, serrors.With(serrors.ErrInternal, "no models configured")
	}

	prompt := fingerprintPrompt(b, crawl)
	results := make([]domain.ModelResult, len(w.options.Models))

	group, groupCtx := errgroup.WithContext(ctx)
	for i, model := range w.options.Models {
		group.Go(func() error {
			results[i] = w.queryModel(groupCtx, model, prompt)

			return nil
		})
	}
	// the workers only report through the results slice.
	_ = group.Wait()

	answered := 0
	for _, res := range results {
		if res.Err == "" {
			answered++
		}
	}
	if answered == 0 {
		return nil, serrors.With(serrors.ErrUnavailable, "all %d models failed", len(results))
	}

	return results, nil
}

func (w *PipelineWorker) queryModel(ctx context.Context, model string, prompt string) domain.ModelResult {
	result := domain.ModelResult{Model: model}

	raw, err := w.llm.Complete(ctx, llm.Request{
		Model:     model,
		System:    fingerprintSystemPrompt,
		Prompt:    prompt,
		MaxTokens: w.options.MaxTokens,
		JSONOnly:  true,
	})
	w.metrics.ObserveModelCall(ctx, model, err)
	if err != nil {
		logger.Warn(ctx, "model call failed", zap.String("model", model), zap.Error(err))
		result.Err = err.Error()

		return result
	}

	var answer modelAnswer
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &answer); err != nil {
		logger.Warn(ctx, "model returned invalid JSON", zap.String("model", model), zap.Error(err))
		result.Err = fmt.Sprintf("invalid JSON answer: %s", err)

		return result
	}

	result.Known = answer.Known
	result.Sentiment = clampScore(answer.Sentiment)
	result.Detail = clampScore(answer.Detail)
	result.Summary = answer.Summary
	for _, name := range answer.Competitors {
		if name = strings.TrimSpace(name); name != "" {
			result.Competitors = append(result.Competitors, name)
		}
	}

	return result
}

// fingerprintPrompt builds the question sent to every model. The crawl
// excerpt identifies the business so models do not confuse same-named ones.
func fingerprintPrompt(b *domain.Business, crawl *domain.CrawlResult) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Business: %s\nWebsite: %s\n", b.Name, b.URL)
	if b.Category != "" {
		fmt.Fprintf(&sb, "Category: %s\n", b.Category)
	}
	if b.City != "" || b.Country != "" {
		fmt.Fprintf(&sb, "Location: %s\n", strings.TrimSpace(strings.Join([]string{b.City, b.Country}, " ")))
	}

	if crawl != nil && crawl.Content != "" {
		content := crawl.Content
		if len(content) > maxContentChars {
			content = content[:maxContentChars]
		}
		fmt.Fprintf(&sb, "\nWebsite excerpt:\n%s\n", content)
	}

	sb.WriteString(`
Report what you know about this business from your training data as JSON with these fields:
known (boolean): whether you know this business beyond the excerpt above.
sentiment (integer 0-10): how favorably you would describe it, 0 if unknown.
detail (integer 0-10): how much concrete, accurate detail you can give, 0 if unknown.
summary (string): one paragraph describing the business, empty if unknown.
competitors (array of strings): names of competing businesses you associate with it.`)

	return sb.String()
}

// visibilityScore aggregates per-model answers into a 0..100 score. A model
// that knows the business contributes a base of 0.5 plus up to 0.25 each for
// sentiment and detail; an unknown business contributes 0. Failed models are
// excluded from the average.
func visibilityScore(results []domain.ModelResult) int {
	var sum float64
	counted := 0

	for _, res := range results {
		if res.Err != "" {
			continue
		}
		counted++

		if !res.Known {
			continue
		}
		sum += 0.5 + 0.25*float64(res.Sentiment)/10 + 0.25*float64(res.Detail)/10
	}

	if counted == 0 {
		return 0
	}

	return int(math.Round(100 * sum / float64(counted)))
}

// fingerprintSummary picks the most detailed summary among the models that
// know the business.
func fingerprintSummary(results []domain.ModelResult) string {
	best := ""
	bestDetail := -1

	for _, res := range results {
		if res.Err != "" || !res.Known || res.Summary == "" {
			continue
		}
		if res.Detail > bestDetail {
			best = res.Summary
			bestDetail = res.Detail
		}
	}

	return best
}

// aggregateCompetitors merges competitor names across models, counting how
// many models mentioned each. Matching is case-insensitive, the first seen
// spelling wins. The business itself is excluded.
func aggregateCompetitors(b *domain.Business, results []domain.ModelResult) []domain.Competitor {
	type entry struct {
		name     string
		mentions int
	}

	byKey := make(map[string]*entry)
	for _, res := range results {
		seen := make(map[string]bool)
		for _, name := range res.Competitors {
			key := strings.ToLower(name)
			if key == strings.ToLower(b.Name) || seen[key] {
				continue
			}
			seen[key] = true

			if e, ok := byKey[key]; ok {
				e.mentions++
			} else {
				byKey[key] = &entry{name: name, mentions: 1}
			}
		}
	}

	competitors := make([]domain.Competitor, 0, len(byKey))
	for _, e := range byKey {
		competitors = append(competitors, domain.Competitor{
			BusinessID: b.ID,
			Name:       e.name,
			Mentions:   e.mentions,
		})
	}

	sort.Slice(competitors, func(i, j int) bool {
		if competitors[i].Mentions != competitors[j].Mentions {
			return competitors[i].Mentions > competitors[j].Mentions
		}

		return competitors[i].Name < competitors[j].Name
	})

	return competitors
}

func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 10 {
		return 10
	}

	return v
}

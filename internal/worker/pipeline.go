package worker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"gemflush/internal/billing"
	"gemflush/internal/config"
	"gemflush/internal/pipeline"
	"gemflush/pkg/crawler"
	"gemflush/pkg/domain"
	"gemflush/pkg/llm"
	"gemflush/pkg/logger"
	"gemflush/pkg/metrics"
	"gemflush/pkg/serrors"
	"gemflush/pkg/storage"
	"gemflush/pkg/wikidata"
)

// publishSnooze is how long a run is deferred when the wiki API rate limits
// us. The wiki does not report a reset time, so a fixed backoff is used.
const publishSnooze = 5 * time.Minute

// Options configure the pipeline worker.
type Options struct {
	// Models lists the LLM gateway models queried per fingerprint.
	Models []string
	// MaxTokens caps the completion size per model call; 0 uses the client default.
	MaxTokens int
	// MaxAttempts is the job retry budget; once exhausted the affected
	// businesses are marked failed.
	MaxAttempts int
	// PublishEnabled gates the Wikidata publish stage globally, independent of
	// team plans. Disabled in development.
	PublishEnabled bool
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Models:         cfg.Models(),
		MaxTokens:      cfg.LLM.MaxTokens,
		MaxAttempts:    cfg.Pipeline.MaxAttempts,
		PublishEnabled: cfg.Wikidata.Enabled,
	}
}

// PipelineWorker is a River worker that runs the crawl, fingerprint and
// publish stages for a normalized URL. It embeds River's WorkerDefaults to
// integrate with the job runtime and provides its own cooperative rate
// limiting for the crawl provider. The rate limiting logic ensures that we
// never exceed the provider's rate limits while still allowing maximal
// concurrency when budget remains.
//
// # Rate limiting overview
//
// The worker tracks the last known upstream rate-limit status (lastRLStatus)
// and the number of requests currently in flight (inFlightRequests). Before
// starting a crawl, reserveRL is called to "reserve" a slot from the current
// budget. The effective remaining budget is computed as:
//
//	remaining := lastRLStatus.Remaining
//	if now > lastRLStatus.ResetAt { remaining = lastRLStatus.Limit }
//
// A request is allowed to start if remaining - inFlightRequests > 0. This
// allows multiple concurrent requests as long as they do not exceed the
// Remaining budget. When there is no budget left, reserveRL waits until
// either:
//   - the ResetAt time is reached (budget replenishes to Limit), or
//   - another in-flight request finishes and signals requestFinishedChan.
//
// After a request completes, requestFinished is called with the server
// provided crawler.RateLimitStatus gathered from the response. It decrements
// the inFlightRequests counter, notifies any goroutines waiting in reserveRL
// by sending a message on requestFinishedChan (non-blocking), and updates
// lastRLStatus. The update strategy prefers the freshest ResetAt and the
// lowest Remaining to avoid optimistic races when multiple concurrent
// requests report slightly different views of the budget.
//
// Bootstrap behavior: At startup, before any API call has returned a
// rate-limit status, lastRLStatus is initialized to a synthetic status with
// Limit=1, Remaining=1, and a far-future ResetAt. This permits exactly one
// request to go through so we can obtain real rate-limit headers from the
// provider. Subsequent requests use actual data.
//
// # Stage resumption
//
// Stage completion flags are persisted per business after each stage, so a
// retried job resumes at the first incomplete stage instead of redoing
// finished work. When no live business remains for the URL the job is
// canceled.
type PipelineWorker struct {
	river.WorkerDefaults[pipeline.JobArgs]

	// storage persists businesses and pipeline artifacts.
	storage storage.Storage
	// crawler fetches website content and reports provider rate-limit status.
	crawler crawler.Client
	// llm is the model gateway used for fingerprinting.
	llm llm.Client
	// publisher pushes entities to the wiki; nil when publishing is disabled.
	publisher wikidata.Publisher
	// metrics records stage and model call observations; may be nil in tests.
	metrics *metrics.Pipeline
	// options holds worker configuration.
	options Options

	// mu protects all fields below it: inFlightRequests and lastRLStatus.
	mu sync.Mutex
	// inFlightRequests counts how many crawls are currently running. It is used
	// in conjunction with lastRLStatus.Remaining to decide if another request
	// may start.
	inFlightRequests int
	// lastRLStatus stores the most recent view of the crawl provider rate-limit
	// headers. It is updated after each request, preferring newer ResetAt and
	// lower Remaining to avoid optimistic races between concurrent requests.
	lastRLStatus *crawler.RateLimitStatus
	// requestFinishedChan is a non-buffered notification channel used to wake up
	// goroutines waiting in reserveRL when any in-flight request completes.
	requestFinishedChan chan struct{}
}

// NewPipelineWorker constructs a PipelineWorker with the provided
// dependencies. The returned worker enforces cooperative rate limiting for
// the crawl provider across its concurrent jobs.
func NewPipelineWorker(st storage.Storage,
	crawlerClient crawler.Client,
	llmClient llm.Client,
	publisher wikidata.Publisher,
	pipelineMetrics *metrics.Pipeline,
	options Options) *PipelineWorker {
	return &PipelineWorker{
		storage:             st,
		crawler:             crawlerClient,
		llm:                 llmClient,
		publisher:           publisher,
		metrics:             pipelineMetrics,
		options:             options,
		requestFinishedChan: make(chan struct{}),
	}
}

// Work executes a single pipeline run. It loads the live businesses tracking
// the URL, runs the stages they still need, and maps errors to appropriate
// River actions.
func (w *PipelineWorker) Work(ctx context.Context, job *river.Job[pipeline.JobArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID), zap.String("URL", job.Args.URL))

	businesses, err := w.storage.LiveBusinessesByURL(ctx, job.Args.URL)
	if err != nil {
		return fmt.Errorf("could not load businesses: %w", err)
	}

	// every business for this URL was deleted while the job was queued.
	if len(businesses) == 0 {
		logger.Info(ctx, "no live businesses for URL, canceling job")

		return river.JobCancel(serrors.With(serrors.ErrConflict, "no live businesses for URL")) //nolint: wrapcheck
	}

	businesses, err = w.runCrawl(ctx, job.Args.URL, businesses)
	if err != nil {
		return w.stageError(ctx, job.Args.URL, "crawl", err)
	}

	businesses, err = w.runFingerprint(ctx, job.Args.URL, businesses)
	if err != nil {
		return w.stageError(ctx, job.Args.URL, "fingerprint", err)
	}

	if err := w.runPublish(ctx, job.Args.URL, businesses); err != nil {
		return w.stageError(ctx, job.Args.URL, "publish", err)
	}

	if err := w.storage.UpdateBusinessesByURL(ctx, job.Args.URL, storage.BusinessUpdates{
		Status:    domain.BusinessStatusCompleted,
		LastError: new(string),
	}); err != nil {
		return fmt.Errorf("could not mark businesses completed: %w", err)
	}

	logger.Info(ctx, "pipeline run completed")

	return nil
}

// stageError records the failure on every live business for the URL and maps
// the error to the proper River action. Rate limited runs are snoozed instead
// of retried so the retry budget is not spent on provider backpressure.
func (w *PipelineWorker) stageError(ctx context.Context, url string, stage string, err error) error {
	logger.Error(ctx, "pipeline stage failed", zap.String("stage", stage), zap.Error(err))

	var snooze snoozeError
	if errors.As(err, &snooze) {
		return river.JobSnooze(snooze.dur) //nolint: wrapcheck
	}

	msg := fmt.Sprintf("%s: %s", stage, err.Error())
	if updateErr := w.storage.UpdateBusinessesByURL(ctx, url, storage.BusinessUpdates{
		Status:         domain.BusinessStatusFailed,
		LastError:      &msg,
		IncAttempts:    true,
		MaxAttempts:    w.options.MaxAttempts,
		OnlyIncomplete: true,
	}); updateErr != nil {
		logger.Error(ctx, "could not record stage failure", zap.Error(updateErr))
	}

	return fmt.Errorf("%s stage: %w", stage, err)
}

// snoozeError wraps a stage error that should defer the job instead of
// consuming a retry.
type snoozeError struct {
	err error
	dur time.Duration
}

func (e snoozeError) Error() string { return e.err.Error() }
func (e snoozeError) Unwrap() error { return e.err }

// runCrawl fetches the website once and stores the result for every business
// that still needs it. It returns the businesses with refreshed stage flags.
func (w *PipelineWorker) runCrawl(ctx context.Context,
	url string,
	businesses []domain.Business) ([]domain.Business, error) {
	pending := make([]domain.Business, 0, len(businesses))
	for _, b := range businesses {
		if !b.Stages.CrawlDone {
			pending = append(pending, b)
		}
	}
	if len(pending) == 0 {
		return businesses, nil
	}

	if err := w.storage.UpdateBusinessesByURL(ctx, url, storage.BusinessUpdates{
		Status:         domain.BusinessStatusCrawling,
		OnlyIncomplete: true,
	}); err != nil {
		return nil, fmt.Errorf("could not mark businesses crawling: %w", err)
	}

	// try to reserve a rate limit slot
	if err := w.reserveRL(ctx); err != nil {
		return nil, fmt.Errorf("could not reserve rate limit: %w", err)
	}

	start := time.Now()
	result, rlStatus, err := w.crawler.Scrape(ctx, url)
	w.requestFinished(ctx, rlStatus)
	w.metrics.ObserveStage(ctx, "crawl", time.Since(start), err)
	if err != nil {
		if errors.Is(err, serrors.ErrRateLimited) {
			dur := time.Until(rlStatus.ResetAt)
			if dur < 0 {
				dur = 0
			}

			return nil, snoozeError{err: err, dur: dur}
		}

		return nil, fmt.Errorf("could not crawl URL: %w", err)
	}

	for i := range businesses {
		b := &businesses[i]
		if b.Stages.CrawlDone {
			continue
		}

		clone := *result
		clone.BusinessID = b.ID
		if err := w.storage.StoreCrawlResult(ctx, clone); err != nil {
			return nil, fmt.Errorf("could not store crawl result: %w", err)
		}

		stages := b.Stages
		stages.CrawlDone = true
		updates := storage.BusinessUpdates{
			Status: domain.BusinessStatusCrawling,
			Stages: &stages,
		}
		if b.Description == "" && result.Description != "" {
			updates.Description = &result.Description
		}

		updated, err := w.storage.UpdateBusinessByID(ctx, b.ID, updates)
		if err != nil {
			return nil, fmt.Errorf("could not update business stages: %w", err)
		}
		if updated != nil {
			*b = *updated
		}
	}

	logger.Info(ctx, "crawl stage completed")

	return businesses, nil
}

// runPublish pushes a Wikidata entity for every business whose plan allows it
// and that has not been published yet. Businesses that cannot publish have
// the stage flagged done so the run can complete.
func (w *PipelineWorker) runPublish(ctx context.Context, url string, businesses []domain.Business) error {
	pending := make([]*domain.Business, 0, len(businesses))
	for i := range businesses {
		if !businesses[i].Stages.PublishDone {
			pending = append(pending, &businesses[i])
		}
	}
	if len(pending) == 0 {
		return nil
	}

	if err := w.storage.UpdateBusinessesByURL(ctx, url, storage.BusinessUpdates{
		Status:         domain.BusinessStatusPublishing,
		OnlyIncomplete: true,
	}); err != nil {
		return fmt.Errorf("could not mark businesses publishing: %w", err)
	}

	start := time.Now()
	err := w.publishPending(ctx, url, pending)
	w.metrics.ObserveStage(ctx, "publish", time.Since(start), err)

	return err
}

func (w *PipelineWorker) publishPending(ctx context.Context, url string, pending []*domain.Business) error {
	for _, b := range pending {
		publish, err := w.canPublish(ctx, b)
		if err != nil {
			return err
		}

		if !publish {
			// flag the stage done so the run can complete; nothing was pushed.
			if err := w.finishPublishStage(ctx, b, ""); err != nil {
				return err
			}

			continue
		}

		qid, err := w.publishEntity(ctx, url, b)
		if err != nil {
			if errors.Is(err, serrors.ErrRateLimited) {
				return snoozeError{err: err, dur: publishSnooze}
			}

			return fmt.Errorf("could not publish entity: %w", err)
		}

		if err := w.finishPublishStage(ctx, b, qid); err != nil {
			return err
		}

		logger.Info(ctx, "published entity",
			zap.String("businessID", uuid.UUID(b.ID).String()),
			zap.String("QID", qid))
	}

	return nil
}

// canPublish reports whether the business's team plan and the global switch
// allow pushing to the wiki.
func (w *PipelineWorker) canPublish(ctx context.Context, b *domain.Business) (bool, error) {
	if !w.options.PublishEnabled || w.publisher == nil {
		return false, nil
	}

	team, err := w.storage.TeamByID(ctx, b.TeamID)
	if err != nil {
		return false, fmt.Errorf("could not load team: %w", err)
	}
	if team == nil {
		return false, nil
	}

	return billing.PlanFor(team.EffectivePlan()).CanPublish, nil
}

// publishEntity creates or updates the wiki item for a business, reusing the
// QID of a previous publish when one exists.
func (w *PipelineWorker) publishEntity(ctx context.Context, url string, b *domain.Business) (string, error) {
	entity := domain.WikidataEntity{
		BusinessID: b.ID,
		QID:        b.WikidataQID,
		Labels:     map[string]string{"en": b.Name},
		Status:     domain.WikidataStatusPending,
	}
	if description := entityDescription(b); description != "" {
		entity.Descriptions = map[string]string{"en": description}
	}

	if existing, err := w.storage.WikidataEntityByBusiness(ctx, b.ID); err != nil {
		return "", fmt.Errorf("could not load existing entity: %w", err)
	} else if existing != nil && entity.QID == "" {
		entity.QID = existing.QID
	}

	qid, err := w.publisher.Publish(ctx, entity, url)
	if err != nil {
		entity.Status = domain.WikidataStatusFailed
		if storeErr := w.storage.UpsertWikidataEntity(ctx, entity); storeErr != nil {
			logger.Error(ctx, "could not record failed publish", zap.Error(storeErr))
		}

		return "", err
	}

	entity.QID = qid
	entity.Status = domain.WikidataStatusPublished
	entity.PublishedAt = time.Now().UTC()
	if err := w.storage.UpsertWikidataEntity(ctx, entity); err != nil {
		return "", fmt.Errorf("could not store published entity: %w", err)
	}

	return qid, nil
}

func (w *PipelineWorker) finishPublishStage(ctx context.Context, b *domain.Business, qid string) error {
	stages := b.Stages
	stages.PublishDone = true
	updates := storage.BusinessUpdates{
		Status: domain.BusinessStatusPublishing,
		Stages: &stages,
	}
	if qid != "" {
		updates.WikidataQID = &qid
	}

	updated, err := w.storage.UpdateBusinessByID(ctx, b.ID, updates)
	if err != nil {
		return fmt.Errorf("could not update business stages: %w", err)
	}
	if updated != nil {
		*b = *updated
	}

	return nil
}

// entityDescription picks a short English description for the wiki item.
func entityDescription(b *domain.Business) string {
	description := b.Description
	if description == "" {
		description = b.Category
	}
	// wiki descriptions are short phrases, not paragraphs.
	const maxLen = 250
	if len(description) > maxLen {
		description = description[:maxLen]
	}

	return description
}

// requestFinished is called after every crawl attempt. It decrements the
// in-flight counter, notifies any goroutines waiting to reserve rate limit,
// and updates the last known rate-limit status using a conservative merge
// strategy to avoid races between concurrent requests.
func (w *PipelineWorker) requestFinished(ctx context.Context, newRLStatus crawler.RateLimitStatus) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.inFlightRequests > 0 {
		w.inFlightRequests--
	} else {
		// Defensive clamp: avoid negative values in case of unexpected sequencing.
		w.inFlightRequests = 0
	}

	// If other goroutines are blocked in reserveRL, try to wake exactly one
	// without blocking this goroutine. If no one is waiting, the signal is dropped.
	select {
	case w.requestFinishedChan <- struct{}{}:
	default:
	}

	// If the call didn't return any RL info, don't change our view.
	if newRLStatus.ResetAt.IsZero() {
		return
	}

	log := func() {
		logger.Debug(ctx, "received rate limit status",
			zap.Int("limit", newRLStatus.Limit),
			zap.Int("remaining", newRLStatus.Remaining),
			zap.Time("resetAt", newRLStatus.ResetAt),
			zap.Int("inFlight", w.inFlightRequests))
	}

	// First observation: adopt it unconditionally.
	if w.lastRLStatus == nil {
		w.lastRLStatus = &newRLStatus
		log()

		return
	}

	// If ResetAt changed, always adopt the new window.
	if !w.lastRLStatus.ResetAt.Equal(newRLStatus.ResetAt) {
		w.lastRLStatus = &newRLStatus
		log()

		return
	}

	// Otherwise prefer the lower Remaining to stay conservative under concurrency.
	if newRLStatus.Remaining < w.lastRLStatus.Remaining {
		w.lastRLStatus = &newRLStatus
		log()
	}
}

// reserveRL reserves one unit from the rate-limit budget or blocks until a
// unit becomes available. It implements the cooperative rate limiting
// described in the type-level comment:
//  1. On first use, initialize a synthetic RL state to allow a single probe
//     request to gather real headers.
//  2. Compute effective remaining budget; if we've passed ResetAt, Remaining
//     is treated as Limit.
//  3. If remaining - inFlightRequests > 0, increment inFlightRequests and return.
//  4. Otherwise, wait until either ResetAt elapses or any in-flight request
//     completes (signaled via requestFinishedChan), then retry.
//
// If ctx is canceled while waiting, an error is returned.
func (w *PipelineWorker) reserveRL(ctx context.Context) error {
	for {
		w.mu.Lock()

		if w.lastRLStatus == nil {
			// At startup allow one request to get feedback from the API.
			w.lastRLStatus = &crawler.RateLimitStatus{
				Limit:     1,
				Remaining: 1,
				// Far-future reset so the first reservation doesn't
				// unblock due to a timer; we'll replace this with real headers soon.
				ResetAt: time.Now().Add(365 * 24 * time.Hour),
			}
		}

		remaining := w.lastRLStatus.Remaining
		// If the reset time has passed, treat the full limit as remaining.
		if time.Now().UTC().After(w.lastRLStatus.ResetAt) {
			remaining = w.lastRLStatus.Limit
		}

		// If budget remains once we account for in-flight requests, reserve and go.
		if remaining-w.inFlightRequests > 0 {
			logger.Debug(ctx, "reserved rate limit slot",
				zap.Int("remaining", remaining),
				zap.Int("limit", w.lastRLStatus.Limit),
				zap.Time("resetAt", w.lastRLStatus.ResetAt),
				zap.Int("inFlight", w.inFlightRequests))
			w.inFlightRequests++
			w.mu.Unlock()

			return nil
		}

		// Otherwise, wait for either the reset time (if in the future) or for any
		// request to finish, then retry.
		resetAt := w.lastRLStatus.ResetAt
		w.mu.Unlock()

		logger.Debug(ctx, "waiting for rate limit slot",
			zap.Int("remaining", remaining),
			zap.Time("resetAt", resetAt),
			zap.Int("inFlight", w.inFlightRequests))

		select {
		case <-ctx.Done():
			return fmt.Errorf("timeout waiting for rate limit: %w", ctx.Err())
		case <-w.requestFinishedChan:
			// loop to re-evaluate
			continue
		case <-time.After(time.Until(resetAt)):
			// Reset window elapsed; loop and try again.
			continue
		}
	}
}

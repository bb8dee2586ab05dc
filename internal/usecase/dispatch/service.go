package dispatch

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"post-scheduler/internal/domain/entity"
	"post-scheduler/internal/infra/publisher"
	"post-scheduler/internal/repository"
	"post-scheduler/internal/resilience/circuitbreaker"
	"post-scheduler/internal/usecase/notify"
)

// Dispatch cycle defaults.
const (
	DefaultConcurrency    = 5
	DefaultAttemptTimeout = 30 * time.Second
	DefaultStuckAfter     = 10 * time.Minute
)

// CycleStats summarizes one dispatch cycle for logging and tests.
type CycleStats struct {
	Due       int
	Claimed   int
	Succeeded int
	Retried   int
	Failed    int
	Skipped   int
	Reclaimed int64
}

// Service runs the dispatch cycle. It is safe to run cycles from overlapping
// schedulers; the conditional claim transition serializes item ownership.
type Service struct {
	Items     repository.ScheduledItemRepository
	Contents  repository.ContentRepository
	Pages     repository.PageRepository
	Logs      repository.PublishLogRepository
	Publisher publisher.Publisher
	Notifier  *notify.Service
	Retry     RetryPolicy

	// Breaker protects the external publish API; nil disables it.
	Breaker *circuitbreaker.CircuitBreaker

	// Concurrency bounds parallel publishes per cycle; AttemptTimeout bounds
	// a single publish call; StuckAfter is how long an item may sit in
	// publishing before a later cycle reclaims it. Zero values select the
	// defaults.
	Concurrency    int
	AttemptTimeout time.Duration
	StuckAfter     time.Duration

	// Now is injectable for tests; defaults to time.Now.
	Now func() time.Time
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *Service) concurrency() int {
	if s.Concurrency > 0 {
		return s.Concurrency
	}
	return DefaultConcurrency
}

func (s *Service) attemptTimeout() time.Duration {
	if s.AttemptTimeout > 0 {
		return s.AttemptTimeout
	}
	return DefaultAttemptTimeout
}

func (s *Service) stuckAfter() time.Duration {
	if s.StuckAfter > 0 {
		return s.StuckAfter
	}
	return DefaultStuckAfter
}

// RunCycle executes one dispatch pass: reclaim stuck items, prune old
// notifications, list due items and publish them with bounded concurrency.
// Item-level failures are absorbed into the stats; only infrastructure
// failures (listing, reclaiming) surface as errors.
func (s *Service) RunCycle(ctx context.Context) (CycleStats, error) {
	now := s.now()
	stats := CycleStats{}

	reclaimed, err := s.Items.ReclaimStuck(ctx, now.Add(-s.stuckAfter()))
	if err != nil {
		return stats, fmt.Errorf("reclaim stuck items: %w", err)
	}
	stats.Reclaimed = reclaimed
	if reclaimed > 0 {
		itemsReclaimedTotal.Add(float64(reclaimed))
		slog.Warn("reclaimed stuck publishing items", slog.Int64("count", reclaimed))
	}

	if _, err := s.Notifier.Prune(ctx, 0); err != nil {
		// pruning is housekeeping; the cycle goes on
		slog.Error("notification pruning failed", slog.Any("error", err))
	}

	due, err := s.Items.ListDue(ctx, now)
	if err != nil {
		return stats, fmt.Errorf("list due items: %w", err)
	}
	stats.Due = len(due)
	dispatchDueItems.Set(float64(len(due)))

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency())
	for _, item := range due {
		g.Go(func() error {
			outcome := s.processItem(gctx, item)
			mu.Lock()
			defer mu.Unlock()
			switch outcome {
			case outcomeSuccess:
				stats.Claimed++
				stats.Succeeded++
			case outcomeRetried:
				stats.Claimed++
				stats.Retried++
			case outcomeFailed:
				stats.Claimed++
				stats.Failed++
			case outcomeSkipped:
				stats.Skipped++
			}
			return nil
		})
	}
	_ = g.Wait()

	dispatchCyclesTotal.Inc()
	slog.Info("dispatch cycle finished",
		slog.Int("due", stats.Due),
		slog.Int("claimed", stats.Claimed),
		slog.Int("succeeded", stats.Succeeded),
		slog.Int("retried", stats.Retried),
		slog.Int("failed", stats.Failed),
		slog.Int("skipped", stats.Skipped),
		slog.Int64("reclaimed", stats.Reclaimed))
	return stats, nil
}

type outcome int

const (
	outcomeSkipped outcome = iota
	outcomeSuccess
	outcomeRetried
	outcomeFailed
)

// processItem claims one due item and drives it to success, a scheduled
// retry, or terminal failure. Losing the claim race is not an error; the
// winner owns the item.
func (s *Service) processItem(ctx context.Context, item *entity.ScheduledItem) outcome {
	claimed, err := s.Items.Transition(ctx, item.ID, entity.ItemPending, entity.ItemPublishing, repository.TransitionFields{})
	if err != nil {
		slog.Error("claim transition failed", slog.Int64("item_id", item.ID), slog.Any("error", err))
		return outcomeSkipped
	}
	if !claimed {
		publishAttemptsTotal.WithLabelValues("skipped").Inc()
		return outcomeSkipped
	}

	page, content, account, loadErr := s.loadDeliveryContext(ctx, item)
	if loadErr != nil {
		// Nothing was attempted; a broken delivery context is permanent.
		return s.fail(ctx, item, loadErr.Error())
	}
	if page == nil {
		// Page went inactive after ListDue; release the claim and let a
		// later cycle pick the item up once the page is active again.
		if _, err := s.Items.Transition(ctx, item.ID, entity.ItemPublishing, entity.ItemPending, repository.TransitionFields{}); err != nil {
			slog.Error("release transition failed", slog.Int64("item_id", item.ID), slog.Any("error", err))
		}
		publishAttemptsTotal.WithLabelValues("skipped").Inc()
		return outcomeSkipped
	}

	postID, pubErr := s.publish(ctx, publisher.Request{
		PageExternalID: page.ExternalID,
		AccessToken:    account.CredentialRef,
		Message:        content.Body,
		MediaRefs:      content.MediaRefs,
	})

	s.logAttempt(ctx, item, postID, pubErr)

	if pubErr == nil {
		return s.succeed(ctx, item, postID)
	}
	if delay, retry := s.Retry.NextAttempt(item.RetryCount, item.MaxRetries, publisher.IsTransient(pubErr)); retry {
		return s.scheduleRetry(ctx, item, pubErr, delay)
	}
	return s.fail(ctx, item, pubErr.Error())
}

// loadDeliveryContext resolves the page, content and primary account for an
// item. A nil page with nil error means the page is inactive (release, don't
// fail); every other missing piece is a permanent failure.
func (s *Service) loadDeliveryContext(ctx context.Context, item *entity.ScheduledItem) (*entity.Page, *entity.Content, *entity.Account, error) {
	page, err := s.Pages.Get(ctx, item.PageID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load page %d: %v", item.PageID, err)
	}
	if page == nil {
		return nil, nil, nil, fmt.Errorf("page %d no longer exists", item.PageID)
	}
	if !page.Active {
		return nil, nil, nil, nil
	}

	content, err := s.Contents.Get(ctx, item.ContentID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load content %d: %v", item.ContentID, err)
	}
	if content == nil {
		return nil, nil, nil, fmt.Errorf("content %d no longer exists", item.ContentID)
	}

	account, err := s.Pages.GetPrimaryAccount(ctx, item.PageID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load primary account for page %d: %v", item.PageID, err)
	}
	if account == nil {
		return nil, nil, nil, fmt.Errorf("page %d has no primary account", item.PageID)
	}

	return page, content, account, nil
}

func (s *Service) publish(ctx context.Context, req publisher.Request) (string, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, s.attemptTimeout())
	defer cancel()

	start := time.Now()
	defer func() { publishDuration.Observe(time.Since(start).Seconds()) }()

	if s.Breaker == nil {
		return s.Publisher.Publish(attemptCtx, req)
	}
	result, err := s.Breaker.Execute(func() (interface{}, error) {
		return s.Publisher.Publish(attemptCtx, req)
	})
	if err != nil {
		return "", err
	}
	return result.(string), nil
}

func (s *Service) succeed(ctx context.Context, item *entity.ScheduledItem, postID string) outcome {
	ok, err := s.Items.Transition(ctx, item.ID, entity.ItemPublishing, entity.ItemSuccess, repository.TransitionFields{
		ExternalPostID: &postID,
	})
	if err != nil || !ok {
		slog.Error("success transition failed",
			slog.Int64("item_id", item.ID),
			slog.Bool("won", ok),
			slog.Any("error", err))
		return outcomeSkipped
	}

	if _, err := s.Contents.MarkPublished(ctx, item.ContentID); err != nil {
		slog.Error("mark content published failed",
			slog.Int64("content_id", item.ContentID),
			slog.Any("error", err))
	}

	s.Notifier.EmitPublishSucceeded(ctx, item, postID)
	publishAttemptsTotal.WithLabelValues("success").Inc()
	slog.Info("item published",
		slog.Int64("item_id", item.ID),
		slog.Int64("page_id", item.PageID),
		slog.String("external_post_id", postID))
	return outcomeSuccess
}

func (s *Service) scheduleRetry(ctx context.Context, item *entity.ScheduledItem, pubErr error, delay time.Duration) outcome {
	nextRetry := item.RetryCount + 1
	nextTime := s.now().Add(delay)
	lastError := pubErr.Error()

	ok, err := s.Items.Transition(ctx, item.ID, entity.ItemPublishing, entity.ItemPending, repository.TransitionFields{
		RetryCount:    &nextRetry,
		ScheduledTime: &nextTime,
		LastError:     &lastError,
	})
	if err != nil || !ok {
		slog.Error("retry transition failed",
			slog.Int64("item_id", item.ID),
			slog.Bool("won", ok),
			slog.Any("error", err))
		return outcomeSkipped
	}

	publishAttemptsTotal.WithLabelValues("retried").Inc()
	slog.Warn("publish failed, retry scheduled",
		slog.Int64("item_id", item.ID),
		slog.Int("retry_count", nextRetry),
		slog.Time("next_attempt", nextTime),
		slog.String("error", lastError))
	return outcomeRetried
}

func (s *Service) fail(ctx context.Context, item *entity.ScheduledItem, lastError string) outcome {
	ok, err := s.Items.Transition(ctx, item.ID, entity.ItemPublishing, entity.ItemFailed, repository.TransitionFields{
		LastError: &lastError,
	})
	if err != nil || !ok {
		slog.Error("failure transition failed",
			slog.Int64("item_id", item.ID),
			slog.Bool("won", ok),
			slog.Any("error", err))
		return outcomeSkipped
	}

	s.Notifier.EmitPublishFailed(ctx, item, lastError)
	publishAttemptsTotal.WithLabelValues("failed").Inc()
	slog.Error("item failed terminally",
		slog.Int64("item_id", item.ID),
		slog.Int64("page_id", item.PageID),
		slog.String("error", lastError))
	return outcomeFailed
}

// logAttempt writes one publish_logs row per attempt, success or failure.
func (s *Service) logAttempt(ctx context.Context, item *entity.ScheduledItem, postID string, pubErr error) {
	log := &entity.PublishLog{
		ScheduledItemID: item.ID,
		ContentID:       item.ContentID,
		PageID:          item.PageID,
		Status:          "success",
		ExternalPostID:  postID,
		AttemptedAt:     s.now(),
	}
	if pubErr != nil {
		log.Status = "failed"
		log.ErrorMessage = pubErr.Error()
	}
	if err := s.Logs.Create(ctx, log); err != nil {
		slog.Error("failed to write publish log",
			slog.Int64("item_id", item.ID),
			slog.Any("error", err))
	}
}

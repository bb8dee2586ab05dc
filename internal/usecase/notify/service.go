package notify

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"post-scheduler/internal/domain/entity"
	"post-scheduler/internal/repository"
)

// DefaultRetention is how long notifications are kept before pruning.
const DefaultRetention = 30 * 24 * time.Hour

// Service provides notification emission and inbox management use cases.
// Emission is best-effort: a failed notification write is logged but must
// never fail the operation that triggered it.
type Service struct {
	Repo repository.NotificationRepository
}

// EmitPublishSucceeded records a success notification for a delivered item.
func (s *Service) EmitPublishSucceeded(ctx context.Context, item *entity.ScheduledItem, externalPostID string) {
	itemID := item.ID
	pageID := item.PageID
	n := &entity.Notification{
		Kind:            entity.NotifyPublishSucceeded,
		Title:           "Post published",
		Message:         fmt.Sprintf("content %d was published to page %d (post %s)", item.ContentID, item.PageID, externalPostID),
		PageID:          &pageID,
		ScheduledItemID: &itemID,
		CreatedAt:       time.Now(),
	}
	s.emit(ctx, n)
}

// EmitPublishFailed records a failure notification once an item has exhausted
// its retry budget or failed permanently.
func (s *Service) EmitPublishFailed(ctx context.Context, item *entity.ScheduledItem, lastError string) {
	itemID := item.ID
	pageID := item.PageID
	n := &entity.Notification{
		Kind:            entity.NotifyPublishFailed,
		Title:           "Post failed",
		Message:         fmt.Sprintf("content %d failed to publish to page %d after %d attempts: %s", item.ContentID, item.PageID, item.RetryCount+1, lastError),
		PageID:          &pageID,
		ScheduledItemID: &itemID,
		CreatedAt:       time.Now(),
	}
	s.emit(ctx, n)
}

// EmitPageDeactivated records a warning for one pending item stranded by a
// page deactivation. One notification is emitted per affected item.
func (s *Service) EmitPageDeactivated(ctx context.Context, page *entity.Page, item *entity.ScheduledItem) {
	itemID := item.ID
	pageID := page.ID
	n := &entity.Notification{
		Kind:            entity.NotifyPageDeactivated,
		Title:           "Page deactivated",
		Message:         fmt.Sprintf("page %q was deactivated; scheduled item %d will not be dispatched until it is reactivated", page.Name, item.ID),
		PageID:          &pageID,
		ScheduledItemID: &itemID,
		CreatedAt:       time.Now(),
	}
	s.emit(ctx, n)
}

func (s *Service) emit(ctx context.Context, n *entity.Notification) {
	if err := s.Repo.Create(ctx, n); err != nil {
		slog.Error("failed to write notification",
			slog.String("kind", n.Kind),
			slog.Any("error", err))
	}
}

// List returns notifications newest first with offset/limit paging.
func (s *Service) List(ctx context.Context, offset, limit int) ([]*entity.Notification, error) {
	notifications, err := s.Repo.List(ctx, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	return notifications, nil
}

// ListUnread returns up to limit unread notifications, newest first.
func (s *Service) ListUnread(ctx context.Context, limit int) ([]*entity.Notification, error) {
	notifications, err := s.Repo.ListUnread(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list unread notifications: %w", err)
	}
	return notifications, nil
}

// UnreadCount returns the number of unread notifications.
func (s *Service) UnreadCount(ctx context.Context) (int64, error) {
	count, err := s.Repo.UnreadCount(ctx)
	if err != nil {
		return 0, fmt.Errorf("count unread notifications: %w", err)
	}
	return count, nil
}

// MarkRead marks a single notification as read.
func (s *Service) MarkRead(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidNotificationID
	}
	if err := s.Repo.MarkRead(ctx, id); err != nil {
		return fmt.Errorf("mark notification read: %w", err)
	}
	return nil
}

// MarkAllRead marks every unread notification as read.
func (s *Service) MarkAllRead(ctx context.Context) error {
	if err := s.Repo.MarkAllRead(ctx); err != nil {
		return fmt.Errorf("mark all notifications read: %w", err)
	}
	return nil
}

// Prune deletes notifications older than the retention window and returns
// how many were removed. The dispatcher calls this once per cycle.
func (s *Service) Prune(ctx context.Context, retention time.Duration) (int64, error) {
	if retention <= 0 {
		retention = DefaultRetention
	}
	removed, err := s.Repo.DeleteOlderThan(ctx, time.Now().Add(-retention))
	if err != nil {
		return 0, fmt.Errorf("prune notifications: %w", err)
	}
	if removed > 0 {
		slog.Info("pruned old notifications", slog.Int64("removed", removed))
	}
	return removed, nil
}

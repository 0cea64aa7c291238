package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/hoangtien79/FunBuyPlace/internal/entity"
	"github.com/hoangtien79/FunBuyPlace/internal/platform/logger"
	"github.com/hoangtien79/FunBuyPlace/internal/platform/metrics"
)

// listingTransitions is the listing status machine. Flag and suspend
// apply to every non-terminal status, including the one already held,
// so repeating them is a legal no-change transition. Sold has no entry:
// it is reached only by the (out of scope) sale-completion flow and
// nothing leads out of it.
var listingTransitions = map[entity.ListingStatus]map[Action]entity.ListingStatus{
	entity.ListingStatusActive: {
		ActionFlag:    entity.ListingStatusFlagged,
		ActionSuspend: entity.ListingStatusSuspended,
	},
	entity.ListingStatusFlagged: {
		ActionFlag:    entity.ListingStatusFlagged,
		ActionApprove: entity.ListingStatusActive,
		ActionSuspend: entity.ListingStatusSuspended,
	},
	entity.ListingStatusSuspended: {
		ActionFlag:    entity.ListingStatusFlagged,
		ActionSuspend: entity.ListingStatusSuspended,
	},
}

// ListingModeration applies admin actions and viewer engagement toggles
// to listings.
type ListingModeration struct {
	repo    ListingRepository
	logger  *logger.Logger
	metrics *metrics.Manager
}

func NewListingModeration(repo ListingRepository, log *logger.Logger, m *metrics.Manager) *ListingModeration {
	return &ListingModeration{repo: repo, logger: log, metrics: m}
}

// Flag marks a listing for review.
func (uc *ListingModeration) Flag(ctx context.Context, id string) (entity.Listing, error) {
	return uc.apply(ctx, id, ActionFlag)
}

// Approve returns a flagged listing to active.
func (uc *ListingModeration) Approve(ctx context.Context, id string) (entity.Listing, error) {
	return uc.apply(ctx, id, ActionApprove)
}

// Suspend takes a listing off the marketplace.
func (uc *ListingModeration) Suspend(ctx context.Context, id string) (entity.Listing, error) {
	return uc.apply(ctx, id, ActionSuspend)
}

// ToggleFeatured flips the featured flag. Featuring is orthogonal to
// status but is refused on sold listings.
func (uc *ListingModeration) ToggleFeatured(ctx context.Context, id string) (entity.Listing, error) {
	listing, err := uc.repo.Get(ctx, id)
	if err != nil {
		return entity.Listing{}, fmt.Errorf("ListingModeration.ToggleFeatured: %w", err)
	}
	if listing.Terminal() {
		uc.metrics.RecordIllegal(string(KindListing), string(ActionFeature))
		return entity.Listing{}, &entity.IllegalTransitionError{
			Kind:    string(KindListing),
			Current: string(listing.Status),
			Action:  string(ActionFeature),
		}
	}

	updated, err := uc.repo.Update(ctx, id, func(l *entity.Listing) {
		l.Featured = !l.Featured
	})
	if err != nil {
		return entity.Listing{}, fmt.Errorf("ListingModeration.ToggleFeatured: %w", err)
	}

	uc.metrics.RecordAction(string(KindListing), string(ActionFeature))
	uc.logger.Info("listing featured flag toggled",
		zap.String("listing_id", id), zap.Bool("featured", updated.Featured))
	return updated, nil
}

// ToggleLike flips the viewer's like and adjusts the like counter. This
// is a viewer-side action, legal in any listing status.
func (uc *ListingModeration) ToggleLike(ctx context.Context, id string) (entity.Listing, error) {
	updated, err := uc.repo.Update(ctx, id, func(l *entity.Listing) {
		if l.Liked {
			l.Likes--
		} else {
			l.Likes++
		}
		l.Liked = !l.Liked
	})
	if err != nil {
		return entity.Listing{}, fmt.Errorf("ListingModeration.ToggleLike: %w", err)
	}
	uc.metrics.RecordAction(string(KindListing), string(ActionLike))
	return updated, nil
}

// ToggleSave flips the viewer's saved flag.
func (uc *ListingModeration) ToggleSave(ctx context.Context, id string) (entity.Listing, error) {
	updated, err := uc.repo.Update(ctx, id, func(l *entity.Listing) {
		l.Saved = !l.Saved
	})
	if err != nil {
		return entity.Listing{}, fmt.Errorf("ListingModeration.ToggleSave: %w", err)
	}
	uc.metrics.RecordAction(string(KindListing), string(ActionSave))
	return updated, nil
}

// CanApply reports whether the action is currently legal for the
// listing.
func (uc *ListingModeration) CanApply(ctx context.Context, id string, action Action) (bool, error) {
	listing, err := uc.repo.Get(ctx, id)
	if err != nil {
		return false, fmt.Errorf("ListingModeration.CanApply: %w", err)
	}
	switch action {
	case ActionFeature:
		return !listing.Terminal(), nil
	case ActionLike, ActionSave:
		return true, nil
	default:
		return transitionLegal(listingTransitions, listing.Status, action), nil
	}
}

func (uc *ListingModeration) apply(ctx context.Context, id string, action Action) (entity.Listing, error) {
	listing, err := uc.repo.Get(ctx, id)
	if err != nil {
		uc.logger.Warn("listing action target not found",
			zap.String("listing_id", id), zap.String("action", string(action)))
		return entity.Listing{}, fmt.Errorf("ListingModeration.apply: %w", err)
	}

	next, err := nextStatus(KindListing, listingTransitions, listing.Status, action)
	if err != nil {
		uc.metrics.RecordIllegal(string(KindListing), string(action))
		uc.logger.Warn("illegal listing transition rejected",
			zap.String("listing_id", id),
			zap.String("status", string(listing.Status)),
			zap.String("action", string(action)))
		return entity.Listing{}, err
	}

	updated, err := uc.repo.Update(ctx, id, func(l *entity.Listing) {
		l.Status = next
	})
	if err != nil {
		return entity.Listing{}, fmt.Errorf("ListingModeration.apply: %w", err)
	}

	uc.metrics.RecordAction(string(KindListing), string(action))
	uc.logger.Info("listing status updated",
		zap.String("listing_id", id),
		zap.String("action", string(action)),
		zap.String("from", string(listing.Status)),
		zap.String("to", string(next)))
	return updated, nil
}

package usecase

import (
	"context"
	"iter"

	"github.com/hoangtien79/FunBuyPlace/internal/entity"
)

// Repository interfaces consumed by the usecases. The in-memory stores
// in internal/repository/memory satisfy them; tests may substitute
// their own.

type UserRepository interface {
	Get(ctx context.Context, id string) (entity.User, error)
	Update(ctx context.Context, id string, mutate func(*entity.User)) (entity.User, error)
	All(ctx context.Context) iter.Seq[entity.User]
}

type ListingRepository interface {
	Get(ctx context.Context, id string) (entity.Listing, error)
	Update(ctx context.Context, id string, mutate func(*entity.Listing)) (entity.Listing, error)
	All(ctx context.Context) iter.Seq[entity.Listing]
}

type ReportRepository interface {
	Get(ctx context.Context, id string) (entity.Report, error)
	Update(ctx context.Context, id string, mutate func(*entity.Report)) (entity.Report, error)
	All(ctx context.Context) iter.Seq[entity.Report]
}

type ConversationRepository interface {
	Get(ctx context.Context, id string) (entity.Conversation, error)
	All(ctx context.Context) iter.Seq[entity.Conversation]
}

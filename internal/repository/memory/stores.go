package memory

import "github.com/hoangtien79/FunBuyPlace/internal/entity"

// Stores bundles one store per record kind. Cross-store references
// (Listing.SellerID, Report.ReportedUserID, ...) are weak: they are
// resolved with Get and may dangle.
type Stores struct {
	Users         *Store[entity.User]
	Listings      *Store[entity.Listing]
	Reports       *Store[entity.Report]
	Conversations *Store[entity.Conversation]
}

func NewStores() *Stores {
	return &Stores{
		Users:         NewStore(func(u entity.User) string { return u.ID }),
		Listings:      NewStore(func(l entity.Listing) string { return l.ID }),
		Reports:       NewStore(func(r entity.Report) string { return r.ID }),
		Conversations: NewStore(func(c entity.Conversation) string { return c.ID }),
	}
}

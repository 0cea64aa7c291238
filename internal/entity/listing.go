package entity

import "time"

type ListingStatus string

const (
	ListingStatusActive    ListingStatus = "active"
	ListingStatusFlagged   ListingStatus = "flagged"
	ListingStatusSuspended ListingStatus = "suspended"
	ListingStatusSold      ListingStatus = "sold"
)

// Listing is a marketplace item. SellerID is a weak reference into the
// user store and may dangle. Sold listings are terminal: the sale flow
// that produces them lives outside this module.
type Listing struct {
	ID        string
	Title     string
	Price     float64
	Image     string
	Seller    string
	SellerID  string
	Status    ListingStatus
	Category  string
	Condition string
	CreatedAt time.Time
	Views     int
	Likes     int
	Reports   int
	Featured  bool
	Liked     bool
	Saved     bool
}

// Terminal reports whether no moderation action can move the listing
// out of its current status.
func (l Listing) Terminal() bool {
	return l.Status == ListingStatusSold
}

package usecase

import (
	"context"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/hoangtien79/FunBuyPlace/internal/entity"
	"github.com/hoangtien79/FunBuyPlace/internal/platform/logger"
	"github.com/hoangtien79/FunBuyPlace/internal/platform/metrics"
)

// FilterAll is the identity value for a filter dimension; an empty
// string behaves the same way.
const FilterAll = "all"

// UserFilter narrows the user list. Query matches name or email,
// case-insensitively.
type UserFilter struct {
	Status string
	Role   string
	Query  string
}

// ListingFilter narrows the listing list. Query matches the title,
// case-insensitively.
type ListingFilter struct {
	Status   string
	Category string
	Query    string
}

// ReportFilter narrows the report list.
type ReportFilter struct {
	Status   string
	Priority string
}

// Search derives filtered views of the stores. Filtering never mutates
// the underlying records and result order always matches store order.
// Non-empty listing queries are remembered for the search screen's
// recent-searches list.
type Search struct {
	users    UserRepository
	listings ListingRepository
	reports  ReportRepository
	logger   *logger.Logger
	metrics  *metrics.Manager

	mu          sync.Mutex
	recent      []string
	recentLimit int
}

func NewSearch(
	users UserRepository,
	listings ListingRepository,
	reports ReportRepository,
	recentLimit int,
	log *logger.Logger,
	m *metrics.Manager,
) *Search {
	if recentLimit <= 0 {
		recentLimit = 10
	}
	return &Search{
		users:       users,
		listings:    listings,
		reports:     reports,
		logger:      log,
		metrics:     m,
		recentLimit: recentLimit,
	}
}

// Users returns the users matching every dimension of the filter, in
// store order.
func (s *Search) Users(ctx context.Context, f UserFilter) []entity.User {
	s.metrics.RecordSearch(string(KindUser))

	var out []entity.User
	for user := range s.users.All(ctx) {
		if !dimensionMatches(f.Status, string(user.Status)) {
			continue
		}
		if !dimensionMatches(f.Role, string(user.Role)) {
			continue
		}
		if !queryMatches(f.Query, user.Name, user.Email) {
			continue
		}
		out = append(out, user)
	}
	return out
}

// Listings returns the listings matching every dimension of the
// filter, in store order.
func (s *Search) Listings(ctx context.Context, f ListingFilter) []entity.Listing {
	s.metrics.RecordSearch(string(KindListing))
	s.rememberQuery(f.Query)

	var out []entity.Listing
	for listing := range s.listings.All(ctx) {
		if !dimensionMatches(f.Status, string(listing.Status)) {
			continue
		}
		if !dimensionMatches(f.Category, listing.Category) {
			continue
		}
		if !queryMatches(f.Query, listing.Title) {
			continue
		}
		out = append(out, listing)
	}
	return out
}

// Reports returns the reports matching every dimension of the filter,
// in store order.
func (s *Search) Reports(ctx context.Context, f ReportFilter) []entity.Report {
	s.metrics.RecordSearch(string(KindReport))

	var out []entity.Report
	for report := range s.reports.All(ctx) {
		if !dimensionMatches(f.Status, string(report.Status)) {
			continue
		}
		if !dimensionMatches(f.Priority, string(report.Priority)) {
			continue
		}
		out = append(out, report)
	}
	return out
}

// Recent returns the remembered listing queries, most recent first.
func (s *Search) Recent() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.recent))
	copy(out, s.recent)
	return out
}

func (s *Search) rememberQuery(query string) {
	query = strings.TrimSpace(query)
	if query == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, q := range s.recent {
		if strings.EqualFold(q, query) {
			s.recent = append(s.recent[:i], s.recent[i+1:]...)
			break
		}
	}
	s.recent = append([]string{query}, s.recent...)
	if len(s.recent) > s.recentLimit {
		s.recent = s.recent[:s.recentLimit]
	}

	s.logger.Debug("search query remembered", zap.String("query", query))
}

// dimensionMatches applies one closed-enumeration filter dimension.
// "all" and "" select everything.
func dimensionMatches(selected, value string) bool {
	return selected == "" || selected == FilterAll || selected == value
}

// queryMatches reports whether the free-text query is a
// case-insensitive substring of any of the fields. An empty query
// matches everything.
func queryMatches(query string, fields ...string) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return true
	}
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}

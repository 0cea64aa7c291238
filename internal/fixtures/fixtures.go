// Package fixtures seeds the in-memory stores with the prototype's
// static data. There are no creation flows in scope: everything the
// screens show starts here.
package fixtures

import (
	"context"
	"time"

	"github.com/hoangtien79/FunBuyPlace/internal/entity"
	"github.com/hoangtien79/FunBuyPlace/internal/repository/memory"
)

// Seed fills every store. Call once at startup, before any usecase
// runs.
func Seed(ctx context.Context, stores *memory.Stores) {
	for _, u := range Users() {
		stores.Users.Put(ctx, u)
	}
	for _, l := range Listings() {
		stores.Listings.Put(ctx, l)
	}
	for _, r := range Reports() {
		stores.Reports.Put(ctx, r)
	}
	for _, c := range Conversations() {
		stores.Conversations.Put(ctx, c)
	}
}

func Users() []entity.User {
	return []entity.User{
		{
			ID:       "1",
			Name:     "John Doe",
			Email:    "john@example.com",
			Avatar:   "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=100&h=100&fit=crop&crop=face",
			Status:   entity.UserStatusActive,
			Role:     entity.RoleUser,
			JoinedAt: time.Date(2023, 3, 15, 0, 0, 0, 0, time.UTC),
			Listings: 12,
			Sales:    8,
			Rating:   4.8,
		},
		{
			ID:       "2",
			Name:     "Jane Smith",
			Email:    "jane@example.com",
			Avatar:   "https://images.unsplash.com/photo-1494790108755-2616b612b786?w=100&h=100&fit=crop&crop=face",
			Status:   entity.UserStatusSuspended,
			Role:     entity.RoleUser,
			JoinedAt: time.Date(2023, 2, 20, 0, 0, 0, 0, time.UTC),
			Listings: 5,
			Sales:    3,
			Rating:   3.2,
			Reports:  3,
		},
		{
			ID:       "3",
			Name:     "Mike Johnson",
			Email:    "mike@example.com",
			Avatar:   "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=100&h=100&fit=crop&crop=face",
			Status:   entity.UserStatusActive,
			Role:     entity.RoleModerator,
			JoinedAt: time.Date(2023, 1, 10, 0, 0, 0, 0, time.UTC),
			Listings: 25,
			Sales:    20,
			Rating:   4.9,
		},
	}
}

func Listings() []entity.Listing {
	return []entity.Listing{
		{
			ID:        "1",
			Title:     "Vintage Camera Collection",
			Price:     450,
			Image:     "https://images.unsplash.com/photo-1606983340126-99ab4feaa64a?w=300&h=200&fit=crop",
			Seller:    "John Doe",
			SellerID:  "1",
			Status:    entity.ListingStatusActive,
			Category:  "Electronics",
			Condition: "Excellent",
			CreatedAt: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			Views:     234,
			Likes:     18,
		},
		{
			ID:        "2",
			Title:     "Designer Handbag - Authentic",
			Price:     1200,
			Image:     "https://images.unsplash.com/photo-1584917865442-de89df76afd3?w=300&h=200&fit=crop",
			Seller:    "Jane Smith",
			SellerID:  "2",
			Status:    entity.ListingStatusFlagged,
			Category:  "Fashion",
			Condition: "Like New",
			CreatedAt: time.Date(2024, 1, 14, 0, 0, 0, 0, time.UTC),
			Views:     89,
			Likes:     5,
			Reports:   2,
		},
		{
			ID:        "3",
			Title:     "Rare Vinyl Records Set",
			Price:     300,
			Image:     "https://images.unsplash.com/photo-1493225457124-a3eb161ffa5f?w=300&h=200&fit=crop",
			Seller:    "Mike Johnson",
			SellerID:  "3",
			Status:    entity.ListingStatusActive,
			Category:  "Music",
			Condition: "Good",
			CreatedAt: time.Date(2024, 1, 13, 0, 0, 0, 0, time.UTC),
			Views:     156,
			Likes:     23,
			Featured:  true,
		},
		// Sellers below have no account record; their SellerID is a
		// dangling weak reference, which lookups must tolerate.
		{
			ID:        "4",
			Title:     "Gaming Headset",
			Price:     89,
			Image:     "https://images.unsplash.com/photo-1599669454699-248893623440?w=400&h=400&fit=crop",
			Seller:    "TechGamer",
			SellerID:  "7",
			Status:    entity.ListingStatusActive,
			Category:  "Electronics",
			Condition: "Good",
			CreatedAt: time.Date(2024, 1, 12, 0, 0, 0, 0, time.UTC),
			Views:     120,
			Likes:     31,
		},
		{
			ID:        "5",
			Title:     "Leather Jacket",
			Price:     220,
			Image:     "https://images.unsplash.com/photo-1551028719-00167b16eac5?w=400&h=400&fit=crop",
			Seller:    "StyleIcon",
			SellerID:  "8",
			Status:    entity.ListingStatusActive,
			Category:  "Fashion",
			Condition: "Excellent",
			CreatedAt: time.Date(2024, 1, 11, 0, 0, 0, 0, time.UTC),
			Views:     98,
			Likes:     42,
			Liked:     true,
			Saved:     true,
		},
		{
			ID:        "6",
			Title:     "Succulent Plants",
			Price:     25,
			Image:     "https://images.unsplash.com/photo-1459411621453-7b03977f4bfc?w=400&h=400&fit=crop",
			Seller:    "GreenThumb",
			SellerID:  "9",
			Status:    entity.ListingStatusSold,
			Category:  "Home",
			Condition: "New",
			CreatedAt: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
			Views:     61,
			Likes:     8,
		},
	}
}

func Reports() []entity.Report {
	return []entity.Report{
		{
			ID:             "1",
			Type:           entity.ReportTypeListing,
			ReportedItemID: "123",
			ReportedUserID: "user789",
			ReporterID:     "user456",
			Reason:         "Counterfeit goods",
			Description:    "This listing appears to be selling counterfeit electronics. The price is suspiciously low and the images look stolen.",
			Evidence:       []string{"Screenshot of original listing", "Price comparison"},
			Priority:       entity.PriorityHigh,
			Status:         entity.ReportStatusPending,
			CreatedAt:      time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
		},
		{
			ID:             "2",
			Type:           entity.ReportTypeUser,
			ReportedUserID: "user654",
			ReporterID:     "user321",
			Reason:         "Harassment",
			Description:    "This user has been sending inappropriate messages and harassing other users in the chat.",
			Evidence:       []string{"Chat screenshots", "Multiple user complaints"},
			Priority:       entity.PriorityMedium,
			Status:         entity.ReportStatusInvestigating,
			CreatedAt:      time.Date(2024, 1, 14, 15, 45, 0, 0, time.UTC),
		},
		{
			ID:             "3",
			Type:           entity.ReportTypeListing,
			ReportedItemID: "456",
			ReportedUserID: "user147",
			ReporterID:     "user987",
			Reason:         "Inappropriate content",
			Description:    "This listing contains inappropriate images that violate community guidelines.",
			Evidence:       []string{"Content screenshots"},
			Priority:       entity.PriorityHigh,
			Status:         entity.ReportStatusResolved,
			Resolution:     "Listing removed and user warned",
			CreatedAt:      time.Date(2024, 1, 13, 9, 15, 0, 0, time.UTC),
		},
	}
}

func Conversations() []entity.Conversation {
	now := time.Now()
	return []entity.Conversation{
		{
			ID:               "1",
			CounterpartyID:   "7",
			CounterpartyName: "PhotoPro",
			Avatar:           "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=100&h=100&fit=crop&crop=face",
			Online:           true,
			UnreadCount:      1,
			Messages: []entity.Message{
				{
					ID:        "1",
					Text:      "Hi! I'm interested in the vintage camera you have listed.",
					Timestamp: now.Add(-60 * time.Minute),
					IsFromMe:  true,
				},
				{
					ID:        "2",
					Text:      "Hello! Thanks for your interest. It's in excellent condition and comes with the original case.",
					Timestamp: now.Add(-58 * time.Minute),
					IsFromMe:  false,
				},
				{
					ID:        "3",
					Text:      "That sounds great! Could you tell me more about its history? Any issues I should know about?",
					Timestamp: now.Add(-57 * time.Minute),
					IsFromMe:  true,
				},
				{
					ID:        "4",
					Text:      "I bought it from an estate sale about 2 years ago. The previous owner took great care of it. All the functions work perfectly - shutter, light meter, everything!",
					Timestamp: now.Add(-55 * time.Minute),
					IsFromMe:  false,
				},
				{
					ID:        "5",
					Text:      "Perfect! Would you be open to meeting in person so I can take a look at it?",
					Timestamp: now.Add(-30 * time.Minute),
					IsFromMe:  true,
				},
			},
		},
		{
			ID:               "2",
			CounterpartyID:   "8",
			CounterpartyName: "SneakerHead",
			Avatar:           "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=100&h=100&fit=crop&crop=face",
			Messages: []entity.Message{
				{
					ID:        "1",
					Text:      "Thanks for your interest! The sneakers are still available.",
					Timestamp: now.Add(-time.Hour),
					IsFromMe:  false,
				},
			},
		},
		{
			ID:               "3",
			CounterpartyID:   "9",
			CounterpartyName: "ArtisanCrafts",
			Avatar:           "https://images.unsplash.com/photo-1494790108755-2616b612b786?w=100&h=100&fit=crop&crop=face",
			Online:           true,
			Messages: []entity.Message{
				{
					ID:        "1",
					Text:      "Perfect! I'll package it carefully for shipping.",
					Timestamp: now.Add(-2 * time.Hour),
					IsFromMe:  false,
				},
			},
		},
		{
			ID:               "4",
			CounterpartyID:   "10",
			CounterpartyName: "TechGamer",
			Avatar:           "https://images.unsplash.com/photo-1535713875002-d1d0cf377fde?w=100&h=100&fit=crop&crop=face",
			Messages: []entity.Message{
				{
					ID:        "1",
					Text:      "Let me know if you have any other questions!",
					Timestamp: now.Add(-24 * time.Hour),
					IsFromMe:  false,
				},
			},
		},
	}
}

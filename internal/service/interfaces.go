// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/go-community-client/internal/adapter"
)

// BillingService defines the client-side contract for community billing.
// Every method issues exactly one request through the shared
// [adapter.Dispatcher] and returns its failures unmodified.
type BillingService interface {
	// GetCommunityPlans lists the active community billing plans.
	GetCommunityPlans(ctx context.Context) (*adapter.Response, error)

	// GetBillingInfo returns the billing information of a community. When
	// trials are disabled in the resolved configuration, trial_end_days is
	// removed from the payload.
	GetBillingInfo(ctx context.Context, communityID string) (*adapter.Response, error)

	// UpdateBillingInfo changes the plan and billing contact of a community.
	UpdateBillingInfo(ctx context.Context, communityID, planID, contactMemberID string) (*adapter.Response, error)

	// UpdateBillingCard replaces the payment card using a card token issued
	// by the payment processor.
	UpdateBillingCard(ctx context.Context, communityID, token string) (*adapter.Response, error)

	// CancelBillingCard cancels the account at the end of the billing period.
	CancelBillingCard(ctx context.Context, communityID string) (*adapter.Response, error)

	// CheckCoupon checks whether couponCode applies to the given plans and
	// returns the discounted plans payload. includeInactive asks for the
	// discount even if the coupon is not active.
	CheckCoupon(ctx context.Context, communityID string, planIDs map[string]string, couponCode string, includeInactive bool) (json.RawMessage, error)

	// SetCoupon applies couponCode to the community and returns the payload.
	SetCoupon(ctx context.Context, communityID, couponCode string) (json.RawMessage, error)
}

// CommunityService defines the client-side contract for communities, their
// bars and their members. Bar and member bodies are caller-supplied and
// sent as-is.
type CommunityService interface {
	GetUserCommunities(ctx context.Context, userID string) (*adapter.Response, error)
	CreateNewCommunity(ctx context.Context, name string) (*adapter.Response, error)
	GetCommunity(ctx context.Context, communityID string) (*adapter.Response, error)
	DeleteUserCommunity(ctx context.Context, communityID string) (*adapter.Response, error)

	GetCommunityBars(ctx context.Context, communityID string) (*adapter.Response, error)
	CreateCommunityBar(ctx context.Context, communityID string, bar any) (*adapter.Response, error)
	GetCommunityBar(ctx context.Context, communityID, barID string) (*adapter.Response, error)
	// SaveCommunityBar and UpdateCommunityBar are the same request.
	SaveCommunityBar(ctx context.Context, communityID, barID string, bar any) (*adapter.Response, error)
	UpdateCommunityBar(ctx context.Context, communityID, barID string, bar any) (*adapter.Response, error)
	DeleteCommunityBar(ctx context.Context, communityID, barID string) (*adapter.Response, error)

	GetCommunityMembers(ctx context.Context, communityID string) (*adapter.Response, error)
	AddCommunityMember(ctx context.Context, communityID string, member any) (*adapter.Response, error)
	GetCommunityMember(ctx context.Context, communityID, memberID string) (*adapter.Response, error)
	UpdateCommunityMember(ctx context.Context, communityID, memberID string, member any) (*adapter.Response, error)
	DeleteCommunityMember(ctx context.Context, communityID, memberID string) (*adapter.Response, error)
	// InviteCommunityMember emails an invitation for an existing member record.
	InviteCommunityMember(ctx context.Context, communityID, memberID, email string) (*adapter.Response, error)
}

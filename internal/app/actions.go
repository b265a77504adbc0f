// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// community client services and the CLI.
//
// All Action* constants are short human-readable labels attached to every
// outbound request. They appear in log entries and prefix error messages
// (e.g. "get billing info: not found: ...") so a failure can be traced back
// to the operation that caused it.
package app

// Billing actions.
const (
	ActionGetPlans          = "get plans"
	ActionGetBillingInfo    = "get billing info"
	ActionUpdateBillingInfo = "update billing info"
	ActionUpdateBillingCard = "update billing card"
	ActionCancelBillingCard = "cancel billing card"
	ActionCheckCoupon       = "check coupon"
	ActionSetCoupon         = "set coupon"
)

// Community actions.
const (
	ActionGetUserCommunities    = "get user communities"
	ActionCreateCommunity       = "create community"
	ActionGetCommunity          = "get community"
	ActionDeleteCommunity       = "delete community"
	ActionGetCommunityBars      = "get community bars"
	ActionCreateCommunityBar    = "create community bar"
	ActionGetCommunityBar       = "get community bar"
	ActionSaveCommunityBar      = "save community bar"
	ActionDeleteCommunityBar    = "delete community bar"
	ActionGetCommunityMembers   = "get community members"
	ActionAddCommunityMember    = "add community member"
	ActionGetCommunityMember    = "get community member"
	ActionUpdateCommunityMember = "update community member"
	ActionDeleteCommunityMember = "delete community member"
	ActionInviteCommunityMember = "invite community member"
)

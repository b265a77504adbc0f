package service

import (
	"context"

	"github.com/MKhiriev/go-community-client/internal/adapter"
	"github.com/MKhiriev/go-community-client/internal/app"
	"github.com/MKhiriev/go-community-client/internal/logger"
	"github.com/MKhiriev/go-community-client/models"
)

type communityService struct {
	dispatcher adapter.Dispatcher

	logger *logger.Logger
}

// NewCommunityService constructs a [CommunityService] that sends its requests
// through dispatcher.
func NewCommunityService(dispatcher adapter.Dispatcher, logger *logger.Logger) CommunityService {
	return &communityService{dispatcher: dispatcher, logger: logger}
}

func (s *communityService) GetUserCommunities(ctx context.Context, userID string) (*adapter.Response, error) {
	return s.dispatcher.Get(ctx, userCommunitiesPath(userID), adapter.WithAction(app.ActionGetUserCommunities))
}

func (s *communityService) CreateNewCommunity(ctx context.Context, name string) (*adapter.Response, error) {
	return s.dispatcher.Post(ctx, communitiesPath, models.NewCommunity{Name: name}, adapter.WithAction(app.ActionCreateCommunity))
}

func (s *communityService) GetCommunity(ctx context.Context, communityID string) (*adapter.Response, error) {
	return s.dispatcher.Get(ctx, communityPath(communityID), adapter.WithAction(app.ActionGetCommunity))
}

func (s *communityService) DeleteUserCommunity(ctx context.Context, communityID string) (*adapter.Response, error) {
	return s.dispatcher.Delete(ctx, communityPath(communityID), adapter.WithAction(app.ActionDeleteCommunity))
}

// ── bars ─────────────────────────────────────────────────────────────────────

func (s *communityService) GetCommunityBars(ctx context.Context, communityID string) (*adapter.Response, error) {
	return s.dispatcher.Get(ctx, communityPath(communityID, "bars"), adapter.WithAction(app.ActionGetCommunityBars))
}

func (s *communityService) CreateCommunityBar(ctx context.Context, communityID string, bar any) (*adapter.Response, error) {
	return s.dispatcher.Post(ctx, communityPath(communityID, "bars"), bar, adapter.WithAction(app.ActionCreateCommunityBar))
}

func (s *communityService) GetCommunityBar(ctx context.Context, communityID, barID string) (*adapter.Response, error) {
	return s.dispatcher.Get(ctx, communityPath(communityID, "bars", barID), adapter.WithAction(app.ActionGetCommunityBar))
}

func (s *communityService) SaveCommunityBar(ctx context.Context, communityID, barID string, bar any) (*adapter.Response, error) {
	return s.dispatcher.Put(ctx, communityPath(communityID, "bars", barID), bar, adapter.WithAction(app.ActionSaveCommunityBar))
}

func (s *communityService) UpdateCommunityBar(ctx context.Context, communityID, barID string, bar any) (*adapter.Response, error) {
	return s.SaveCommunityBar(ctx, communityID, barID, bar)
}

func (s *communityService) DeleteCommunityBar(ctx context.Context, communityID, barID string) (*adapter.Response, error) {
	return s.dispatcher.Delete(ctx, communityPath(communityID, "bars", barID), adapter.WithAction(app.ActionDeleteCommunityBar))
}

// ── members ──────────────────────────────────────────────────────────────────

func (s *communityService) GetCommunityMembers(ctx context.Context, communityID string) (*adapter.Response, error) {
	return s.dispatcher.Get(ctx, communityPath(communityID, "members"), adapter.WithAction(app.ActionGetCommunityMembers))
}

func (s *communityService) AddCommunityMember(ctx context.Context, communityID string, member any) (*adapter.Response, error) {
	return s.dispatcher.Post(ctx, communityPath(communityID, "members"), member, adapter.WithAction(app.ActionAddCommunityMember))
}

func (s *communityService) GetCommunityMember(ctx context.Context, communityID, memberID string) (*adapter.Response, error) {
	return s.dispatcher.Get(ctx, communityPath(communityID, "members", memberID), adapter.WithAction(app.ActionGetCommunityMember))
}

func (s *communityService) UpdateCommunityMember(ctx context.Context, communityID, memberID string, member any) (*adapter.Response, error) {
	return s.dispatcher.Put(ctx, communityPath(communityID, "members", memberID), member, adapter.WithAction(app.ActionUpdateCommunityMember))
}

func (s *communityService) DeleteCommunityMember(ctx context.Context, communityID, memberID string) (*adapter.Response, error) {
	return s.dispatcher.Delete(ctx, communityPath(communityID, "members", memberID), adapter.WithAction(app.ActionDeleteCommunityMember))
}

func (s *communityService) InviteCommunityMember(ctx context.Context, communityID, memberID, email string) (*adapter.Response, error) {
	body := models.Invitation{MemberID: memberID, Email: email}
	return s.dispatcher.Post(ctx, communityPath(communityID, "invitations"), body, adapter.WithAction(app.ActionInviteCommunityMember))
}

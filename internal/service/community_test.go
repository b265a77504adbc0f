package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-community-client/internal/adapter"
	"github.com/MKhiriev/go-community-client/internal/app"
	"github.com/MKhiriev/go-community-client/internal/config"
	"github.com/MKhiriev/go-community-client/internal/mock"
	"github.com/MKhiriev/go-community-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCommunityService_Requests(t *testing.T) {
	bar := map[string]any{"name": "Reading", "items": []any{}}
	member := map[string]any{"first_name": "Ada", "role": "member"}

	tests := []struct {
		name   string
		expect func(ctx context.Context, d *mock.MockDispatcherMockRecorder) *gomock.Call
		call   func(ctx context.Context, s CommunityService) (*adapter.Response, error)
	}{
		{
			name: "GetUserCommunities",
			expect: func(ctx context.Context, d *mock.MockDispatcherMockRecorder) *gomock.Call {
				return d.Get(ctx, "/v1/users/u1/communities", hasAction(app.ActionGetUserCommunities))
			},
			call: func(ctx context.Context, s CommunityService) (*adapter.Response, error) {
				return s.GetUserCommunities(ctx, "u1")
			},
		},
		{
			name: "CreateNewCommunity",
			expect: func(ctx context.Context, d *mock.MockDispatcherMockRecorder) *gomock.Call {
				return d.Post(ctx, "/v1/communities", models.NewCommunity{Name: "Library"}, hasAction(app.ActionCreateCommunity))
			},
			call: func(ctx context.Context, s CommunityService) (*adapter.Response, error) {
				return s.CreateNewCommunity(ctx, "Library")
			},
		},
		{
			name: "GetCommunity",
			expect: func(ctx context.Context, d *mock.MockDispatcherMockRecorder) *gomock.Call {
				return d.Get(ctx, "/v1/communities/abc-123", hasAction(app.ActionGetCommunity))
			},
			call: func(ctx context.Context, s CommunityService) (*adapter.Response, error) {
				return s.GetCommunity(ctx, "abc-123")
			},
		},
		{
			name: "DeleteUserCommunity",
			expect: func(ctx context.Context, d *mock.MockDispatcherMockRecorder) *gomock.Call {
				return d.Delete(ctx, "/v1/communities/c1", hasAction(app.ActionDeleteCommunity))
			},
			call: func(ctx context.Context, s CommunityService) (*adapter.Response, error) {
				return s.DeleteUserCommunity(ctx, "c1")
			},
		},
		{
			name: "GetCommunityBars",
			expect: func(ctx context.Context, d *mock.MockDispatcherMockRecorder) *gomock.Call {
				return d.Get(ctx, "/v1/communities/c1/bars", hasAction(app.ActionGetCommunityBars))
			},
			call: func(ctx context.Context, s CommunityService) (*adapter.Response, error) {
				return s.GetCommunityBars(ctx, "c1")
			},
		},
		{
			name: "CreateCommunityBar",
			expect: func(ctx context.Context, d *mock.MockDispatcherMockRecorder) *gomock.Call {
				return d.Post(ctx, "/v1/communities/c1/bars", bar, hasAction(app.ActionCreateCommunityBar))
			},
			call: func(ctx context.Context, s CommunityService) (*adapter.Response, error) {
				return s.CreateCommunityBar(ctx, "c1", bar)
			},
		},
		{
			name: "GetCommunityBar",
			expect: func(ctx context.Context, d *mock.MockDispatcherMockRecorder) *gomock.Call {
				return d.Get(ctx, "/v1/communities/c1/bars/b1", hasAction(app.ActionGetCommunityBar))
			},
			call: func(ctx context.Context, s CommunityService) (*adapter.Response, error) {
				return s.GetCommunityBar(ctx, "c1", "b1")
			},
		},
		{
			name: "SaveCommunityBar",
			expect: func(ctx context.Context, d *mock.MockDispatcherMockRecorder) *gomock.Call {
				return d.Put(ctx, "/v1/communities/c1/bars/b1", bar, hasAction(app.ActionSaveCommunityBar))
			},
			call: func(ctx context.Context, s CommunityService) (*adapter.Response, error) {
				return s.SaveCommunityBar(ctx, "c1", "b1", bar)
			},
		},
		{
			name: "UpdateCommunityBar",
			expect: func(ctx context.Context, d *mock.MockDispatcherMockRecorder) *gomock.Call {
				return d.Put(ctx, "/v1/communities/c1/bars/b1", bar, hasAction(app.ActionSaveCommunityBar))
			},
			call: func(ctx context.Context, s CommunityService) (*adapter.Response, error) {
				return s.UpdateCommunityBar(ctx, "c1", "b1", bar)
			},
		},
		{
			name: "DeleteCommunityBar",
			expect: func(ctx context.Context, d *mock.MockDispatcherMockRecorder) *gomock.Call {
				return d.Delete(ctx, "/v1/communities/c1/bars/b1", hasAction(app.ActionDeleteCommunityBar))
			},
			call: func(ctx context.Context, s CommunityService) (*adapter.Response, error) {
				return s.DeleteCommunityBar(ctx, "c1", "b1")
			},
		},
		{
			name: "GetCommunityMembers",
			expect: func(ctx context.Context, d *mock.MockDispatcherMockRecorder) *gomock.Call {
				return d.Get(ctx, "/v1/communities/c1/members", hasAction(app.ActionGetCommunityMembers))
			},
			call: func(ctx context.Context, s CommunityService) (*adapter.Response, error) {
				return s.GetCommunityMembers(ctx, "c1")
			},
		},
		{
			name: "AddCommunityMember",
			expect: func(ctx context.Context, d *mock.MockDispatcherMockRecorder) *gomock.Call {
				return d.Post(ctx, "/v1/communities/c1/members", member, hasAction(app.ActionAddCommunityMember))
			},
			call: func(ctx context.Context, s CommunityService) (*adapter.Response, error) {
				return s.AddCommunityMember(ctx, "c1", member)
			},
		},
		{
			name: "GetCommunityMember",
			expect: func(ctx context.Context, d *mock.MockDispatcherMockRecorder) *gomock.Call {
				return d.Get(ctx, "/v1/communities/c1/members/m1", hasAction(app.ActionGetCommunityMember))
			},
			call: func(ctx context.Context, s CommunityService) (*adapter.Response, error) {
				return s.GetCommunityMember(ctx, "c1", "m1")
			},
		},
		{
			name: "UpdateCommunityMember",
			expect: func(ctx context.Context, d *mock.MockDispatcherMockRecorder) *gomock.Call {
				return d.Put(ctx, "/v1/communities/c1/members/m1", member, hasAction(app.ActionUpdateCommunityMember))
			},
			call: func(ctx context.Context, s CommunityService) (*adapter.Response, error) {
				return s.UpdateCommunityMember(ctx, "c1", "m1", member)
			},
		},
		{
			name: "DeleteCommunityMember",
			expect: func(ctx context.Context, d *mock.MockDispatcherMockRecorder) *gomock.Call {
				return d.Delete(ctx, "/v1/communities/c1/members/m1", hasAction(app.ActionDeleteCommunityMember))
			},
			call: func(ctx context.Context, s CommunityService) (*adapter.Response, error) {
				return s.DeleteCommunityMember(ctx, "c1", "m1")
			},
		},
		{
			name: "InviteCommunityMember",
			expect: func(ctx context.Context, d *mock.MockDispatcherMockRecorder) *gomock.Call {
				return d.Post(ctx, "/v1/communities/c1/invitations",
					models.Invitation{MemberID: "m1", Email: "ada@example.org"},
					hasAction(app.ActionInviteCommunityMember))
			},
			call: func(ctx context.Context, s CommunityService) (*adapter.Response, error) {
				return s.InviteCommunityMember(ctx, "c1", "m1", "ada@example.org")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name+"/success", func(t *testing.T) {
			svc, dispatcher := newTestServices(t, config.Configuration{})
			ctx := context.Background()
			want := &adapter.Response{StatusCode: http.StatusOK, Data: json.RawMessage(`{"ok":true}`)}

			tt.expect(ctx, dispatcher.EXPECT()).Return(want, nil)

			got, err := tt.call(ctx, svc.CommunityService)
			require.NoError(t, err)
			assert.Same(t, want, got)
		})

		t.Run(tt.name+"/error", func(t *testing.T) {
			svc, dispatcher := newTestServices(t, config.Configuration{})
			ctx := context.Background()
			wantErr := errors.New("boom")

			tt.expect(ctx, dispatcher.EXPECT()).Return(nil, wantErr)

			got, err := tt.call(ctx, svc.CommunityService)
			assert.Nil(t, got)
			assert.Same(t, wantErr, err)
		})
	}
}

// TestCommunityService_IdentifiersAreVerbatim verifies that identifiers are
// inserted into paths exactly as given, including characters that would
// normally be escaped.
func TestCommunityService_IdentifiersAreVerbatim(t *testing.T) {
	tests := []struct {
		communityID string
		memberID    string
		want        string
	}{
		{"abc-123", "m1", "/v1/communities/abc-123/members/m1"},
		{"a/b", "c?d", "/v1/communities/a/b/members/c?d"},
		{"sp ace", "%20", "/v1/communities/sp ace/members/%20"},
		{"", "", "/v1/communities//members/"},
		{"../..", "#frag", "/v1/communities/../../members/#frag"},
	}

	for _, tt := range tests {
		svc, dispatcher := newTestServices(t, config.Configuration{})
		ctx := context.Background()

		dispatcher.EXPECT().
			Get(ctx, tt.want, hasAction(app.ActionGetCommunityMember)).
			Return(&adapter.Response{StatusCode: http.StatusOK}, nil)

		_, err := svc.CommunityService.GetCommunityMember(ctx, tt.communityID, tt.memberID)
		require.NoError(t, err, tt.want)
	}
}

func TestCommunityService_GetUserCommunitiesVerbatim(t *testing.T) {
	svc, dispatcher := newTestServices(t, config.Configuration{})
	ctx := context.Background()

	dispatcher.EXPECT().
		Get(ctx, "/v1/users/ü@x/communities", hasAction(app.ActionGetUserCommunities)).
		Return(&adapter.Response{}, nil)

	_, err := svc.CommunityService.GetUserCommunities(ctx, "ü@x")
	require.NoError(t, err)
}

package client

import (
	"fmt"

	"github.com/MKhiriev/go-community-client/internal/utils"
	"github.com/spf13/cobra"
)

func (a *App) communitiesCmd() *cobra.Command {
	communities := &cobra.Command{
		Use:     "communities",
		Aliases: []string{"community"},
		Short:   "Manage communities",
	}

	communities.AddCommand(
		&cobra.Command{
			Use:   "list [userId]",
			Short: "List the communities of a user (defaults to the token subject)",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				userID, err := a.userID(args)
				if err != nil {
					return err
				}
				resp, err := a.services.CommunityService.GetUserCommunities(cmd.Context(), userID)
				return printResponse(cmd.OutOrStdout(), resp, err)
			},
		},
		&cobra.Command{
			Use:   "create <name>",
			Short: "Create a community",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				resp, err := a.services.CommunityService.CreateNewCommunity(cmd.Context(), args[0])
				return printResponse(cmd.OutOrStdout(), resp, err)
			},
		},
		&cobra.Command{
			Use:   "get <communityId>",
			Short: "Show a community",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				resp, err := a.services.CommunityService.GetCommunity(cmd.Context(), args[0])
				return printResponse(cmd.OutOrStdout(), resp, err)
			},
		},
		&cobra.Command{
			Use:   "delete <communityId>",
			Short: "Delete a community",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				resp, err := a.services.CommunityService.DeleteUserCommunity(cmd.Context(), args[0])
				return printResponse(cmd.OutOrStdout(), resp, err)
			},
		},
	)

	return communities
}

// userID returns the explicit argument, or the subject of the configured
// bearer token.
func (a *App) userID(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}

	token := a.dispatcher.Token()
	if token == "" {
		return "", fmt.Errorf("user id required: pass it as an argument or set --token")
	}

	sub, err := utils.SubjectFromJWT(token)
	if err != nil {
		return "", fmt.Errorf("user id from token: %w", err)
	}
	return sub, nil
}

func (a *App) barsCmd() *cobra.Command {
	bars := &cobra.Command{
		Use:   "bars",
		Short: "Manage community bars",
	}

	bars.AddCommand(
		&cobra.Command{
			Use:   "list <communityId>",
			Short: "List bars",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				resp, err := a.services.CommunityService.GetCommunityBars(cmd.Context(), args[0])
				return printResponse(cmd.OutOrStdout(), resp, err)
			},
		},
		&cobra.Command{
			Use:   "get <communityId> <barId>",
			Short: "Show a bar",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				resp, err := a.services.CommunityService.GetCommunityBar(cmd.Context(), args[0], args[1])
				return printResponse(cmd.OutOrStdout(), resp, err)
			},
		},
		&cobra.Command{
			Use:   "create <communityId> <barJSON>",
			Short: "Create a bar",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				bar, err := parseBody(args[1])
				if err != nil {
					return err
				}
				resp, err := a.services.CommunityService.CreateCommunityBar(cmd.Context(), args[0], bar)
				return printResponse(cmd.OutOrStdout(), resp, err)
			},
		},
		&cobra.Command{
			Use:     "update <communityId> <barId> <barJSON>",
			Aliases: []string{"save"},
			Short:   "Replace a bar",
			Args:    cobra.ExactArgs(3),
			RunE: func(cmd *cobra.Command, args []string) error {
				bar, err := parseBody(args[2])
				if err != nil {
					return err
				}
				resp, err := a.services.CommunityService.UpdateCommunityBar(cmd.Context(), args[0], args[1], bar)
				return printResponse(cmd.OutOrStdout(), resp, err)
			},
		},
		&cobra.Command{
			Use:   "delete <communityId> <barId>",
			Short: "Delete a bar",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				resp, err := a.services.CommunityService.DeleteCommunityBar(cmd.Context(), args[0], args[1])
				return printResponse(cmd.OutOrStdout(), resp, err)
			},
		},
	)

	return bars
}

func (a *App) membersCmd() *cobra.Command {
	members := &cobra.Command{
		Use:   "members",
		Short: "Manage community members",
	}

	members.AddCommand(
		&cobra.Command{
			Use:   "list <communityId>",
			Short: "List members",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				resp, err := a.services.CommunityService.GetCommunityMembers(cmd.Context(), args[0])
				return printResponse(cmd.OutOrStdout(), resp, err)
			},
		},
		&cobra.Command{
			Use:   "get <communityId> <memberId>",
			Short: "Show a member",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				resp, err := a.services.CommunityService.GetCommunityMember(cmd.Context(), args[0], args[1])
				return printResponse(cmd.OutOrStdout(), resp, err)
			},
		},
		&cobra.Command{
			Use:   "add <communityId> <memberJSON>",
			Short: "Add a member",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				member, err := parseBody(args[1])
				if err != nil {
					return err
				}
				resp, err := a.services.CommunityService.AddCommunityMember(cmd.Context(), args[0], member)
				return printResponse(cmd.OutOrStdout(), resp, err)
			},
		},
		&cobra.Command{
			Use:   "update <communityId> <memberId> <memberJSON>",
			Short: "Replace a member",
			Args:  cobra.ExactArgs(3),
			RunE: func(cmd *cobra.Command, args []string) error {
				member, err := parseBody(args[2])
				if err != nil {
					return err
				}
				resp, err := a.services.CommunityService.UpdateCommunityMember(cmd.Context(), args[0], args[1], member)
				return printResponse(cmd.OutOrStdout(), resp, err)
			},
		},
		&cobra.Command{
			Use:   "delete <communityId> <memberId>",
			Short: "Remove a member",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				resp, err := a.services.CommunityService.DeleteCommunityMember(cmd.Context(), args[0], args[1])
				return printResponse(cmd.OutOrStdout(), resp, err)
			},
		},
		&cobra.Command{
			Use:   "invite <communityId> <memberId> <email>",
			Short: "Email an invitation to a member",
			Args:  cobra.ExactArgs(3),
			RunE: func(cmd *cobra.Command, args []string) error {
				resp, err := a.services.CommunityService.InviteCommunityMember(cmd.Context(), args[0], args[1], args[2])
				return printResponse(cmd.OutOrStdout(), resp, err)
			},
		},
	)

	return members
}

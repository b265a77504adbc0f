package client

import (
	"github.com/spf13/cobra"
)

func (a *App) plansCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plans",
		Short: "List community billing plans",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := a.services.BillingService.GetCommunityPlans(cmd.Context())
			return printResponse(cmd.OutOrStdout(), resp, err)
		},
	}
}

func (a *App) billingCmd() *cobra.Command {
	billing := &cobra.Command{
		Use:   "billing",
		Short: "Manage community billing",
	}

	billing.AddCommand(
		&cobra.Command{
			Use:   "get <communityId>",
			Short: "Show billing information",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				resp, err := a.services.BillingService.GetBillingInfo(cmd.Context(), args[0])
				return printResponse(cmd.OutOrStdout(), resp, err)
			},
		},
		&cobra.Command{
			Use:   "update <communityId> <planId> <contactMemberId>",
			Short: "Change plan and billing contact",
			Args:  cobra.ExactArgs(3),
			RunE: func(cmd *cobra.Command, args []string) error {
				resp, err := a.services.BillingService.UpdateBillingInfo(cmd.Context(), args[0], args[1], args[2])
				return printResponse(cmd.OutOrStdout(), resp, err)
			},
		},
		&cobra.Command{
			Use:   "card <communityId> <cardToken>",
			Short: "Replace the payment card",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				resp, err := a.services.BillingService.UpdateBillingCard(cmd.Context(), args[0], args[1])
				return printResponse(cmd.OutOrStdout(), resp, err)
			},
		},
		&cobra.Command{
			Use:   "cancel <communityId>",
			Short: "Cancel the account at the end of the billing period",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				resp, err := a.services.BillingService.CancelBillingCard(cmd.Context(), args[0])
				return printResponse(cmd.OutOrStdout(), resp, err)
			},
		},
		a.couponCheckCmd(),
		&cobra.Command{
			Use:   "coupon-set <communityId> <couponCode>",
			Short: "Apply a coupon",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				data, err := a.services.BillingService.SetCoupon(cmd.Context(), args[0], args[1])
				if err != nil {
					return err
				}
				return printPayload(cmd.OutOrStdout(), data)
			},
		},
	)

	return billing
}

func (a *App) couponCheckCmd() *cobra.Command {
	var (
		plans    map[string]string
		inactive bool
	)

	cmd := &cobra.Command{
		Use:   "coupon-check <communityId> [couponCode]",
		Short: "Show plan prices with a coupon applied",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var code string
			if len(args) == 2 {
				code = args[1]
			}

			data, err := a.services.BillingService.CheckCoupon(cmd.Context(), args[0], plans, code, inactive)
			if err != nil {
				return err
			}
			return printPayload(cmd.OutOrStdout(), data)
		},
	}

	cmd.Flags().StringToStringVar(&plans, "plan", nil, "Plans to price, as key=planId (repeatable)")
	cmd.Flags().BoolVar(&inactive, "inactive", false, "Price the coupon even if it is not active")

	return cmd
}

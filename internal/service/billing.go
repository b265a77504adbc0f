package service

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/go-community-client/internal/adapter"
	"github.com/MKhiriev/go-community-client/internal/app"
	"github.com/MKhiriev/go-community-client/internal/config"
	"github.com/MKhiriev/go-community-client/internal/logger"
	"github.com/MKhiriev/go-community-client/models"
)

const (
	communityPlansPath = "/v1/plans/community"
	trialEndDaysField  = "trial_end_days"
)

type billingService struct {
	dispatcher   adapter.Dispatcher
	disableTrial bool

	logger *logger.Logger
}

// NewBillingService constructs a [BillingService] that sends its requests
// through dispatcher. Only cfg.DisableTrial is consulted.
func NewBillingService(dispatcher adapter.Dispatcher, cfg config.Configuration, logger *logger.Logger) BillingService {
	return &billingService{
		dispatcher:   dispatcher,
		disableTrial: cfg.DisableTrial,
		logger:       logger,
	}
}

func (s *billingService) GetCommunityPlans(ctx context.Context) (*adapter.Response, error) {
	return s.dispatcher.Get(ctx, communityPlansPath, adapter.WithAction(app.ActionGetPlans))
}

func (s *billingService) GetBillingInfo(ctx context.Context, communityID string) (*adapter.Response, error) {
	resp, err := s.dispatcher.Get(ctx, communityPath(communityID, "billing"), adapter.WithAction(app.ActionGetBillingInfo))
	if err != nil {
		return nil, err
	}

	if !s.disableTrial {
		return resp, nil
	}

	filtered := *resp
	filtered.Data = s.withoutField(resp, trialEndDaysField)
	return &filtered, nil
}

func (s *billingService) UpdateBillingInfo(ctx context.Context, communityID, planID, contactMemberID string) (*adapter.Response, error) {
	body := models.BillingUpdate{
		PlanID:          planID,
		ContactMemberID: contactMemberID,
	}
	return s.dispatcher.Put(ctx, communityPath(communityID, "billing"), body, adapter.WithAction(app.ActionUpdateBillingInfo))
}

func (s *billingService) UpdateBillingCard(ctx context.Context, communityID, token string) (*adapter.Response, error) {
	body := models.BillingCard{Token: token}
	return s.dispatcher.Post(ctx, communityPath(communityID, "billing", "card"), body, adapter.WithAction(app.ActionUpdateBillingCard))
}

func (s *billingService) CancelBillingCard(ctx context.Context, communityID string) (*adapter.Response, error) {
	return s.dispatcher.Post(ctx, communityPath(communityID, "billing", "cancel"), nil, adapter.WithAction(app.ActionCancelBillingCard))
}

func (s *billingService) CheckCoupon(ctx context.Context, communityID string, planIDs map[string]string, couponCode string, includeInactive bool) (json.RawMessage, error) {
	body := models.CouponCheck{
		CouponCode: couponCode,
		Plans:      planIDs,
		Inactive:   includeInactive,
	}
	resp, err := s.dispatcher.Post(ctx, communityPath(communityID, "billing", "coupon"), body, adapter.WithAction(app.ActionCheckCoupon))
	if err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (s *billingService) SetCoupon(ctx context.Context, communityID, couponCode string) (json.RawMessage, error) {
	body := models.CouponUpdate{CouponCode: couponCode}
	resp, err := s.dispatcher.Put(ctx, communityPath(communityID, "billing", "coupon"), body, adapter.WithAction(app.ActionSetCoupon))
	if err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// withoutField returns the payload of resp with field removed. Payloads that
// are not JSON objects, or do not carry field, are returned unchanged.
func (s *billingService) withoutField(resp *adapter.Response, field string) json.RawMessage {
	var fields map[string]json.RawMessage
	if err := resp.Decode(&fields); err != nil || fields == nil {
		return resp.Data
	}
	if _, ok := fields[field]; !ok {
		return resp.Data
	}

	delete(fields, field)
	filtered, err := json.Marshal(fields)
	if err != nil {
		s.logger.Warn().Err(err).Str("field", field).Msg("could not re-encode filtered payload")
		return resp.Data
	}

	return filtered
}

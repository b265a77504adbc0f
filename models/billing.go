package models

// BillingUpdate is the body of PUT /v1/communities/{id}/billing.
type BillingUpdate struct {
	// PlanID is the community plan to switch to.
	PlanID string `json:"plan_id"`
	// ContactMemberID is the member who receives billing correspondence.
	ContactMemberID string `json:"contact_member_id"`
}

// BillingCard is the body of POST /v1/communities/{id}/billing/card.
type BillingCard struct {
	// Token is the payment processor's card token id.
	Token string `json:"token"`
}

// CouponCheck is the body of POST /v1/communities/{id}/billing/coupon.
type CouponCheck struct {
	// CouponCode is the code to check; empty when none was entered.
	CouponCode string `json:"coupon_code"`
	// Plans maps caller-chosen keys to the plan ids to price.
	Plans map[string]string `json:"plans"`
	// Inactive asks for the discount even if the coupon is inactive.
	Inactive bool `json:"inactive"`
}

// CouponUpdate is the body of PUT /v1/communities/{id}/billing/coupon.
type CouponUpdate struct {
	CouponCode string `json:"coupon_code"`
}

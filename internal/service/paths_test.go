package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommunityPath(t *testing.T) {
	assert.Equal(t, "/v1/communities/c1", communityPath("c1"))
	assert.Equal(t, "/v1/communities/c1/billing/coupon", communityPath("c1", "billing", "coupon"))
	assert.Equal(t, "/v1/communities/x y/bars/b/1", communityPath("x y", "bars", "b/1"))
	assert.Equal(t, "/v1/users/u 1/communities", userCommunitiesPath("u 1"))
	assert.Equal(t, communitiesPath+"/c1", communityPath("c1"))
}

package service

import "strings"

const (
	communitiesPath = "/v1/communities"
	usersPath       = "/v1/users"
)

// communityPath joins /v1/communities/{id} with the given segments.
// Identifiers are inserted verbatim, without escaping.
func communityPath(communityID string, segments ...string) string {
	return strings.Join(append([]string{communitiesPath, communityID}, segments...), "/")
}

func userCommunitiesPath(userID string) string {
	return usersPath + "/" + userID + "/communities"
}

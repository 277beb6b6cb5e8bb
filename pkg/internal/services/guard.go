package services

import "github.com/plumepress/plume/pkg/internal/models"

// GuardOutcome is the authorization decision for a write request,
// resolved in full before any persistence happens.
type GuardOutcome int

const (
	// GuardProceed hands the request to the form cycle.
	GuardProceed = GuardOutcome(iota)
	// GuardLoginRequired bounces the requester to the login interface
	// with a return-to parameter.
	GuardLoginRequired
	// GuardRedirectDetail silently sends the requester to the post's
	// detail view. Non-owner edits land here instead of an
	// access-denied response.
	GuardRedirectDetail
)

func GuardCreate(user *models.Account) GuardOutcome {
	if user == nil {
		return GuardLoginRequired
	}
	return GuardProceed
}

// GuardEdit assumes the post was already fetched, so a missing id has
// surfaced as not-found before identity enters the picture.
func GuardEdit(post models.Post, user *models.Account) GuardOutcome {
	if user == nil || user.ID != post.AuthorID {
		return GuardRedirectDetail
	}
	return GuardProceed
}

package services

import (
	"testing"

	"github.com/plumepress/plume/pkg/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestGuardCreate(t *testing.T) {
	alice := models.Account{BaseModel: models.BaseModel{ID: 1}, Name: "alice"}

	assert.Equal(t, GuardLoginRequired, GuardCreate(nil))
	assert.Equal(t, GuardProceed, GuardCreate(&alice))
}

func TestGuardEdit(t *testing.T) {
	alice := models.Account{BaseModel: models.BaseModel{ID: 1}, Name: "alice"}
	bob := models.Account{BaseModel: models.BaseModel{ID: 2}, Name: "bob"}
	post := models.Post{BaseModel: models.BaseModel{ID: 7}, Text: "hello", AuthorID: alice.ID}

	assert.Equal(t, GuardProceed, GuardEdit(post, &alice))
	// Strangers and anonymous requesters both take the silent path to
	// the detail view, never an error.
	assert.Equal(t, GuardRedirectDetail, GuardEdit(post, &bob))
	assert.Equal(t, GuardRedirectDetail, GuardEdit(post, nil))
}

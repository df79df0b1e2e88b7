package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"modelhub/internal/models"
)

func TestOwnershipResolver_CanMutate(t *testing.T) {
	owner := uuid.New()
	stranger := uuid.New()
	resolver := NewOwnershipResolver()

	tests := []struct {
		name   string
		caller models.Caller
		entity models.Ownable
		want   Decision
	}{
		{
			name:   "operator mutates system entity",
			caller: models.Caller{ID: uuid.New(), IsOperator: true},
			entity: models.SystemOwned(),
			want:   AllowedAsOperator,
		},
		{
			name:   "operator mutates someone else's entity",
			caller: models.Caller{ID: stranger, IsOperator: true},
			entity: models.OwnedBy(owner),
			want:   AllowedAsOperator,
		},
		{
			name:   "owner mutates own entity",
			caller: models.Caller{ID: owner},
			entity: models.OwnedBy(owner),
			want:   AllowedAsOwner,
		},
		{
			name:   "non-owner denied on private entity",
			caller: models.Caller{ID: stranger},
			entity: models.OwnedBy(owner),
			want:   Denied,
		},
		{
			name:   "plain user denied on system entity",
			caller: models.Caller{ID: stranger},
			entity: models.SystemOwned(),
			want:   Denied,
		},
		{
			name:   "unauthenticated denied even on system entity",
			caller: models.Caller{},
			entity: models.SystemOwned(),
			want:   Denied,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolver.CanMutate(tt.caller, tt.entity)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want != Denied, got.Allowed())
		})
	}
}

func TestOwnershipResolver_CanCreatePrivate(t *testing.T) {
	resolver := NewOwnershipResolver()

	assert.True(t, resolver.CanCreatePrivate(models.Caller{ID: uuid.New()}))
	assert.True(t, resolver.CanCreatePrivate(models.Caller{ID: uuid.New(), IsOperator: true}))
	assert.False(t, resolver.CanCreatePrivate(models.Caller{}))
}

package services

import "modelhub/internal/models"

// Decision is the three-way outcome of an ownership check. Denied does not
// always surface as an error: provider and model updates redirect denied
// config-shaped writes into the caller's override layer instead.
type Decision int

const (
	Denied Decision = iota
	AllowedAsOperator
	AllowedAsOwner
)

func (d Decision) Allowed() bool {
	return d != Denied
}

// OwnershipResolver is the single mutation policy: operators may mutate
// anything, owners their own rows, everyone else nothing. Every mutation
// entry point consults this instead of branching on roles itself.
type OwnershipResolver struct{}

func NewOwnershipResolver() OwnershipResolver {
	return OwnershipResolver{}
}

func (OwnershipResolver) CanMutate(caller models.Caller, entity models.Ownable) Decision {
	if caller.IsOperator {
		return AllowedAsOperator
	}
	if caller.Authenticated() && entity.IsOwnedBy(caller.ID) {
		return AllowedAsOwner
	}
	return Denied
}

// CanCreatePrivate reports whether the caller may register private entities.
func (OwnershipResolver) CanCreatePrivate(caller models.Caller) bool {
	return caller.Authenticated()
}

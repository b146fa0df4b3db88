package billing

import "github.com/billflow/billflow-api/internal/domain/entity"

// transitions is the invoice status machine:
//
//	draft   -> sent
//	sent    -> paid | overdue
//	overdue -> paid
//	paid    -> (terminal)
//
// Editing and deletion are additionally restricted to draft; that check
// lives in the usecase because it is not a status change.
var transitions = map[string][]string{
	entity.StatusDraft:   {entity.StatusSent},
	entity.StatusSent:    {entity.StatusPaid, entity.StatusOverdue},
	entity.StatusOverdue: {entity.StatusPaid},
	entity.StatusPaid:    {},
}

// ValidStatus reports whether s is one of the four invoice statuses.
func ValidStatus(s string) bool {
	_, ok := transitions[s]
	return ok
}

// CanTransition reports whether the status machine allows from -> to.
// Unknown statuses never transition.
func CanTransition(from, to string) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// ValidDiscountType reports whether s is a known discount type.
func ValidDiscountType(s string) bool {
	return s == entity.DiscountFixed || s == entity.DiscountPercentage
}

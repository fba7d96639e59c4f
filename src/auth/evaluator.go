package auth

// Identity is the authenticated actor attached to a request.
type Identity struct {
	ID    uint
	Email string
	Roles []string
}

// Evaluator answers the per-endpoint permission predicates. Every predicate
// returns a plain bool; a store failure reads as "capability not held".
type Evaluator struct {
	Store RoleStore
}

func NewEvaluator(store RoleStore) *Evaluator {
	return &Evaluator{Store: store}
}

// HasCapability reports whether any of the identity's roles holds the
// capability. The effective set is the union across roles.
func (e *Evaluator) HasCapability(identity Identity, capability string) bool {
	for _, roleName := range identity.Roles {
		role, err := e.Store.Get(roleName)
		if err != nil {
			continue
		}
		if role.HasCapability(capability) {
			return true
		}
	}
	return false
}

func (e *Evaluator) CanReadAllCompanyProfiles(identity Identity) bool {
	return e.HasCapability(identity, CapReadAllCompanyProfiles)
}

// CanReadCompanyProfile requires the base read capability even for
// self-access; the "others" capability only widens the reachable targets.
func (e *Evaluator) CanReadCompanyProfile(identity Identity, targetUserID uint) bool {
	if identity.ID != targetUserID && !e.HasCapability(identity, CapReadOthersCompanyProfile) {
		return false
	}
	return e.HasCapability(identity, CapReadCompanyProfile)
}

func (e *Evaluator) CanEditCompanyProfile(identity Identity, targetUserID uint) bool {
	if identity.ID != targetUserID && !e.HasCapability(identity, CapEditOthersCompanyProfile) {
		return false
	}
	return e.HasCapability(identity, CapEditCompanyProfile)
}

func (e *Evaluator) CanReadAllOrders(identity Identity) bool {
	return e.HasCapability(identity, CapReadAllPortalOrders)
}

// CanAccessOrdersByEmail gates both reading and updating a customer's orders.
// Cross-customer access is widened by read_all_portal_orders, and the base
// read_portal_order capability is required either way.
func (e *Evaluator) CanAccessOrdersByEmail(identity Identity, targetEmail string) bool {
	if identity.Email != targetEmail && !e.HasCapability(identity, CapReadAllPortalOrders) {
		return false
	}
	return e.HasCapability(identity, CapReadPortalOrder)
}

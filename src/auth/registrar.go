package auth

// Registrar installs and removes the portal roles and their capability
// grants. Register runs once at activation, Deregister at deactivation; both
// tolerate partial pre-existing state, so re-running either is safe.
type Registrar struct {
	Store RoleStore
	Table CapabilityTable
}

func NewRegistrar(store RoleStore, table CapabilityTable) *Registrar {
	return &Registrar{Store: store, Table: table}
}

// Register creates the custom roles, then writes every (capability, role)
// grant onto the corresponding role row. Grants on missing roles are skipped,
// matching the host's behavior for roles removed out-of-band.
func (r *Registrar) Register() error {
	for _, role := range r.Table.Roles() {
		if err := r.Store.Create(role.ID, role.DisplayName); err != nil {
			return err
		}
	}

	for _, capability := range r.Table.Capabilities() {
		for _, roleName := range r.Table.RolesFor(capability) {
			if err := r.Store.GrantCapability(roleName, capability); err != nil {
				return err
			}
		}
	}

	return nil
}

// Deregister revokes every grant in the table and then deletes the custom
// roles. Builtin roles keep existing but lose the portal capabilities, which
// restores the role store to its pre-registration grants.
func (r *Registrar) Deregister() error {
	for _, capability := range r.Table.Capabilities() {
		for _, roleName := range r.Table.RolesFor(capability) {
			if err := r.Store.RevokeCapability(roleName, capability); err != nil {
				return err
			}
		}
	}

	for _, role := range r.Table.Roles() {
		if err := r.Store.Delete(role.ID); err != nil {
			return err
		}
	}

	return nil
}

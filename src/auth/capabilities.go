// Package auth holds the portal permission model: the static capability
// table, the registrar that installs it into the role store, and the
// evaluator the REST layer consults before every protected operation.
package auth

const (
	RolePortalManager  = "portal_manager"
	RolePortalCustomer = "portal_customer"
	RoleAdministrator  = "administrator"
)

const (
	CapReadOthersCompanyProfile = "read_others_company_profile"
	CapReadAllCompanyProfiles   = "read_all_company_profiles"
	CapReadCompanyProfile       = "read_company_profile"
	CapEditOthersCompanyProfile = "edit_others_company_profile"
	CapEditCompanyProfile       = "edit_company_profile"
	CapUploadFiles              = "upload_files"
	CapReadOthersPortalOrder    = "read_others_portal_order"
	CapReadAllPortalOrders      = "read_all_portal_orders"
	CapReadPortalOrder          = "read_portal_order"
)

// RoleDefinition names one custom role installed at activation.
type RoleDefinition struct {
	ID          string
	DisplayName string
}

// CapabilityTable is the immutable capability -> roles mapping. It is built
// once at process start and handed to the registrar and evaluator; nothing
// reads it through a package global.
type CapabilityTable struct {
	roles  []RoleDefinition
	grants map[string][]string
}

// NewCapabilityTable returns the portal's capability table.
func NewCapabilityTable() CapabilityTable {
	return CapabilityTable{
		roles: []RoleDefinition{
			{ID: RolePortalManager, DisplayName: "Portal Manager"},
			{ID: RolePortalCustomer, DisplayName: "Portal Customer"},
		},
		grants: map[string][]string{
			CapReadOthersCompanyProfile: {RolePortalManager, RoleAdministrator},
			CapReadAllCompanyProfiles:   {RolePortalManager, RoleAdministrator},
			CapReadCompanyProfile:       {RolePortalCustomer, RolePortalManager, RoleAdministrator},
			CapEditOthersCompanyProfile: {RolePortalManager, RoleAdministrator},
			CapEditCompanyProfile:       {RolePortalCustomer, RolePortalManager, RoleAdministrator},
			CapUploadFiles:              {RolePortalCustomer, RolePortalManager},
			CapReadOthersPortalOrder:    {RolePortalManager, RoleAdministrator},
			CapReadAllPortalOrders:      {RolePortalManager, RoleAdministrator},
			CapReadPortalOrder:          {RolePortalCustomer, RolePortalManager, RoleAdministrator},
		},
	}
}

// Roles returns the custom roles managed by the registrar. Builtin roles like
// administrator receive grants but are never created or removed.
func (t CapabilityTable) Roles() []RoleDefinition {
	roles := make([]RoleDefinition, len(t.roles))
	copy(roles, t.roles)
	return roles
}

// Capabilities returns the capability names in the table.
func (t CapabilityTable) Capabilities() []string {
	caps := make([]string, 0, len(t.grants))
	for cap := range t.grants {
		caps = append(caps, cap)
	}
	return caps
}

// RolesFor returns the role names granted a capability.
func (t CapabilityTable) RolesFor(capability string) []string {
	granted := t.grants[capability]
	roles := make([]string, len(granted))
	copy(roles, granted)
	return roles
}

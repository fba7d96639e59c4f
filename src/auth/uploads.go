package auth

// restrictedUploadTypes is the reduced mime map applied to identities holding
// a portal role; the upload pipeline consults it before accepting files.
var restrictedUploadTypes = map[string]string{
	"jpg|jpeg|jpe": "image/jpeg",
	"png":          "image/png",
	"pdf":          "application/pdf",
}

// AllowedUploadTypes returns the mime map the upload pipeline should enforce
// for an identity. Portal roles get the restricted map, everyone else keeps
// the host defaults.
func AllowedUploadTypes(identity Identity, defaults map[string]string) map[string]string {
	for _, roleName := range identity.Roles {
		if roleName == RolePortalManager || roleName == RolePortalCustomer {
			restricted := make(map[string]string, len(restrictedUploadTypes))
			for ext, mime := range restrictedUploadTypes {
				restricted[ext] = mime
			}
			return restricted
		}
	}
	return defaults
}

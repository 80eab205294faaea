package requests

// UpsertUser is stored as submitted; the email in the URL wins over the body one.
// Extra keeps any fields beyond the known ones so the stored user carries the
// whole body, e.g. a photoURL from the social-auth profile.
type UpsertUser struct {
	Email string                 `json:"email"`
	Name  string                 `json:"name"`
	Extra map[string]interface{} `json:"-"`
}

package requests

// CreateDoctor validates the fields the client forms always send; anything
// else in the body rides along in Extra and is stored with the roster entry.
type CreateDoctor struct {
	Name      string                 `json:"name" validate:"required"`
	Email     string                 `json:"email" validate:"required,email"`
	Specialty string                 `json:"specialty"`
	Image     string                 `json:"img"`
	Extra     map[string]interface{} `json:"-"`
}

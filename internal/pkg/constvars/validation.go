package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"gt":       "must be greater than %s",
	"gte":      "must be greater than or equal to %s",
	"numeric":  "must be a number",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min": true,
	"max": true,
	"gt":  true,
	"gte": true,
}

package playlist

import (
	"strings"

	"github.com/google/uuid"
)

// validID checks that a caller-supplied string is a non-empty, well-formed
// entity id. Runs before any store access; existence is a separate concern.
func validID(id string) bool {
	id = strings.TrimSpace(id)
	if id == "" {
		return false
	}
	_, err := uuid.Parse(id)
	return err == nil
}

// requireID validates a path-supplied identifier, naming the field in the
// error so the caller knows which one was malformed.
func requireID(field, id string) error {
	if strings.TrimSpace(id) == "" {
		return errValidation(field + " is a required argument")
	}
	if !validID(id) {
		return errValidation("invalid " + field)
	}
	return nil
}

// requireText validates a required free-text field: present and non-blank
// after trimming. Returns the trimmed value.
func requireText(field, v string) (string, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return "", errValidation(field + " is a required argument")
	}
	return v, nil
}

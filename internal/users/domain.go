// internal/users/domain.go
package users

import (
	"errors"
	"strings"
)

const maxNameLen = 40

// User represents a library user.
type User struct {
	ID       int64  `json:"id" db:"id"`
	Name     string `json:"name" db:"name"`
	Surname  string `json:"surname,omitempty" db:"surname"`
	Document string `json:"document" db:"document"`
}

// Patch carries a partial update. Nil fields were absent from the
// request; a present but blank string is ignored during the merge.
type Patch struct {
	Name     *string `json:"name"`
	Surname  *string `json:"surname"`
	Document *string `json:"document"`
}

// Validate checks the constraints applied at creation time.
func (u *User) Validate() error {
	if strings.TrimSpace(u.Name) == "" {
		return errors.New("name is required")
	}
	if len(u.Name) > maxNameLen {
		return errors.New("name must not exceed 40 characters")
	}
	if strings.TrimSpace(u.Document) == "" {
		return errors.New("document is required")
	}
	return nil
}

// Apply merges the patch into the user, overwriting only fields that
// are present and non-blank.
func (p Patch) Apply(u *User) {
	mergeString(&u.Name, p.Name)
	mergeString(&u.Surname, p.Surname)
	mergeString(&u.Document, p.Document)
}

func mergeString(dst *string, src *string) {
	if src != nil && strings.TrimSpace(*src) != "" {
		*dst = *src
	}
}

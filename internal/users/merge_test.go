package users

import (
	"strings"
	"testing"

	"pgregory.net/rapid"
)

// Properties of the partial-merge rule: a field changes only when the
// incoming value is present and non-blank, and then it takes exactly
// the incoming value.
func TestPatchApplyProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		original := User{
			Name:     rapid.String().Draw(t, "name"),
			Surname:  rapid.String().Draw(t, "surname"),
			Document: rapid.String().Draw(t, "document"),
		}

		var patch Patch
		if rapid.Bool().Draw(t, "hasName") {
			v := rapid.String().Draw(t, "newName")
			patch.Name = &v
		}
		if rapid.Bool().Draw(t, "hasSurname") {
			v := rapid.String().Draw(t, "newSurname")
			patch.Surname = &v
		}
		if rapid.Bool().Draw(t, "hasDocument") {
			v := rapid.String().Draw(t, "newDocument")
			patch.Document = &v
		}

		merged := original
		patch.Apply(&merged)

		check := func(old string, incoming *string, got string) {
			if incoming == nil || strings.TrimSpace(*incoming) == "" {
				if got != old {
					t.Fatalf("field changed without a usable incoming value: %q -> %q", old, got)
				}
				return
			}
			if got != *incoming {
				t.Fatalf("field not overwritten: want %q, got %q", *incoming, got)
			}
		}
		check(original.Name, patch.Name, merged.Name)
		check(original.Surname, patch.Surname, merged.Surname)
		check(original.Document, patch.Document, merged.Document)
	})
}

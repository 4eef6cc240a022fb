package model

import "strings"

// Validate checks candidate record data against the role schema.
// Only required-field presence is enforced: values are untyped strings
// and no coercion happens against the declared field type. The first
// missing required field is reported.
func (role Role) Validate(data map[string]string) error {
	for _, f := range role.Fields {
		if !f.Required {
			continue
		}
		if strings.TrimSpace(data[f.Name]) == "" {
			return MissingRequiredFieldError{Field: f.Name}
		}
	}
	return nil
}

// CheckFields rejects role definitions that declare the same field name
// twice. Field names are compared exactly, not case-folded.
func (role Role) CheckFields() error {
	seen := make(map[string]bool, len(role.Fields))
	for _, f := range role.Fields {
		if seen[f.Name] {
			return DuplicateFieldError{Role: role.Name, Field: f.Name}
		}
		seen[f.Name] = true
	}
	return nil
}

// Prefix derives the record id prefix from the role name: letters only,
// uppercased, vowels dropped after the first letter, truncated to three.
// "Girls" becomes GRL, "Teachers" becomes TCH.
func (role Role) Prefix() string {
	var letters []rune
	for _, r := range strings.ToUpper(role.Name) {
		if r >= 'A' && r <= 'Z' {
			letters = append(letters, r)
		}
	}
	if len(letters) == 0 {
		return "REC"
	}

	prefix := letters[:1:1]
	var skipped []rune
	for _, r := range letters[1:] {
		if len(prefix) == 3 {
			break
		}
		switch r {
		case 'A', 'E', 'I', 'O', 'U':
			skipped = append(skipped, r)
		default:
			prefix = append(prefix, r)
		}
	}
	// short names fall back on the vowels they skipped
	for _, r := range skipped {
		if len(prefix) == 3 {
			break
		}
		prefix = append(prefix, r)
	}
	return string(prefix)
}

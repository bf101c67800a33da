package kernel

import (
	"strings"

	"courier/internal/pkg/errs"
)

// Contact is a value object holding a person's name and reachability details.
// It is shared by parcels (sender and receiver) and delivery agents.
//
// Contact is immutable; construct it with NewContact, which requires at
// least a name and an email. Phone is optional.
//
// Example:
//
//	sender, err := kernel.NewContact("Jane Roe", "jane@example.com", "+15550100")
//	if err != nil {
//	    // handle validation error
//	}
type Contact struct {
	name  string
	email string
	phone string
}

// NewContact creates a validated Contact. Name and email are required;
// email must contain an "@". Phone may be empty.
func NewContact(name, email, phone string) (Contact, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)

	if name == "" {
		return Contact{}, errs.NewValueIsRequiredError("name")
	}
	if email == "" {
		return Contact{}, errs.NewValueIsRequiredError("email")
	}
	if !strings.Contains(email, "@") {
		return Contact{}, errs.NewValueIsInvalidError("email")
	}

	return Contact{
		name:  name,
		email: email,
		phone: strings.TrimSpace(phone),
	}, nil
}

// Name returns the contact's display name.
func (c Contact) Name() string {
	return c.name
}

// Email returns the contact's email address.
func (c Contact) Email() string {
	return c.email
}

// Phone returns the contact's phone number, or "" if none was provided.
func (c Contact) Phone() string {
	return c.phone
}

// Validate returns an error for a zero-value Contact that bypassed NewContact.
func (c Contact) Validate() error {
	if c.name == "" || c.email == "" {
		return errs.NewValueIsRequiredError("contact must be created via NewContact")
	}
	return nil
}

// IsEqual reports whether two contacts carry the same values.
func (c Contact) IsEqual(other Contact) bool {
	return c.name == other.name && c.email == other.email && c.phone == other.phone
}

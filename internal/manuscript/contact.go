package manuscript

import (
	"strings"

	"github.com/adrg/frontmatter"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// Contact holds the author's personally identifying information, printed on
// the cover page of attributed manuscripts.
type Contact struct {
	LegalName    *string  `yaml:"legal_name"   json:"legal_name,omitempty"`
	Email        *string  `yaml:"email"        json:"email,omitempty"`
	Phone        *string  `yaml:"phone"        json:"phone,omitempty"`
	Address1     *string  `yaml:"address1"     json:"address1,omitempty"`
	Address2     *string  `yaml:"address2"     json:"address2,omitempty"`
	City         *string  `yaml:"city"         json:"city,omitempty"`
	State        *string  `yaml:"state"        json:"state,omitempty"`
	PostalCode   *string  `yaml:"postal_code"  json:"postal_code,omitempty"`
	Country      *string  `yaml:"country"      json:"country,omitempty"`
	Affiliations []string `yaml:"affiliations" json:"affiliations,omitempty"`
}

// ParseContact reads contact details from a Markdown file's front matter.
// The body is ignored. Text without valid front matter yields an empty Contact.
func ParseContact(raw string) Contact {
	var contact Contact
	if _, err := frontmatter.Parse(strings.NewReader(raw), &contact, yamlFormat); err != nil {
		return Contact{}
	}
	return contact
}

// Validate checks the fields that have a well-defined format.
func (c Contact) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Email, is.EmailFormat),
		validation.Field(&c.Affiliations, validation.Each(validation.Required)),
	)
}

// Lines returns the cover-page address block in display order, skipping
// absent and blank fields.
func (c Contact) Lines() []string {
	var lines []string
	add := func(s string) {
		if s = strings.TrimSpace(s); s != "" {
			lines = append(lines, s)
		}
	}

	add(value(c.LegalName))
	add(value(c.Address1))
	add(value(c.Address2))

	locality := joinNonEmpty(", ", value(c.City), value(c.State))
	add(joinNonEmpty(" ", locality, value(c.PostalCode)))
	add(value(c.Country))
	add(value(c.Phone))
	add(value(c.Email))
	for _, affiliation := range c.Affiliations {
		add(affiliation)
	}
	return lines
}

// value dereferences an optional string, treating absence as empty.
func value(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, strings.TrimSpace(p))
		}
	}
	return strings.Join(kept, sep)
}

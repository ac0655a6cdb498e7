package manuscript

import (
	"reflect"
	"testing"
)

const contactDoc = `---
legal_name: Jane Quinn Writer
email: jane@example.com
phone: 555-0100
address1: 1 Harbor Road
city: Portsmouth
state: NH
postal_code: "03801"
country: USA
affiliations:
  - SFWA
---
Notes about the author are ignored.
`

func TestParseContact(t *testing.T) {
	c := ParseContact(contactDoc)

	want := []string{
		"Jane Quinn Writer",
		"1 Harbor Road",
		"Portsmouth, NH 03801",
		"USA",
		"555-0100",
		"jane@example.com",
		"SFWA",
	}
	if got := c.Lines(); !reflect.DeepEqual(got, want) {
		t.Errorf("Lines() =\n  %q\nwant\n  %q", got, want)
	}
	if err := c.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestParseContact_NoFrontMatter(t *testing.T) {
	c := ParseContact("just text")
	if lines := c.Lines(); len(lines) != 0 {
		t.Errorf("Lines() = %q, want none", lines)
	}
}

func TestContact_ValidateEmail(t *testing.T) {
	c := ParseContact("---\nemail: not-an-address\n---\n")
	if err := c.Validate(); err == nil {
		t.Error("invalid email should fail validation")
	}
}

func TestContact_LinesPartialLocality(t *testing.T) {
	c := ParseContact("---\ncity: Dover\npostal_code: \"03820\"\n---\n")
	want := []string{"Dover 03820"}
	if got := c.Lines(); !reflect.DeepEqual(got, want) {
		t.Errorf("Lines() = %q, want %q", got, want)
	}
}

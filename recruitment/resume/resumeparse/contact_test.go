package resumeparse

import (
	"context"
	"testing"
)

func newTestParser() *Parser {
	return NewParser(DefaultTaxonomy(), nil)
}

func TestExtractContactFields(t *testing.T) {
	text := `John Smith
Senior Software Engineer
john.smith@example.com | +1 415-555-0134
https://www.linkedin.com/in/john-smith-42/
github.com/jsmith
`

	contact := newTestParser().ExtractContact(context.Background(), text)

	if contact.Email != "john.smith@example.com" {
		t.Errorf("email = %q", contact.Email)
	}
	if contact.Phone != "+1 415-555-0134" {
		t.Errorf("phone = %q", contact.Phone)
	}
	if contact.LinkedIn != "linkedin.com/in/john-smith-42" {
		t.Errorf("linkedin = %q, want normalized handle without scheme", contact.LinkedIn)
	}
	if contact.GitHub != "github.com/jsmith" {
		t.Errorf("github = %q", contact.GitHub)
	}
	if contact.Name != "John Smith" {
		t.Errorf("name = %q", contact.Name)
	}
}

func TestExtractContactNameFallbackSkipsDigitsAndEmails(t *testing.T) {
	text := `+91 99887 77665
jane@corp.io
Jane Doe
`

	contact := newTestParser().ExtractContact(context.Background(), text)

	if contact.Name != "Jane Doe" {
		t.Errorf("name = %q, want line without digits or @ and >=2 tokens", contact.Name)
	}
}

func TestExtractContactEmptyInput(t *testing.T) {
	contact := newTestParser().ExtractContact(context.Background(), "")

	if !contact.IsEmpty() {
		t.Errorf("expected empty contact info, got %+v", contact)
	}
}

type fixedFinder struct{ name string }

func (f fixedFinder) PersonName(ctx context.Context, text string) (string, error) {
	return f.name, nil
}

func TestExtractContactPrefersEntityFinder(t *testing.T) {
	p := NewParser(DefaultTaxonomy(), fixedFinder{name: "Grace Hopper"})

	contact := p.ExtractContact(context.Background(), "Some Header Line\nAnother Line\n")

	if contact.Name != "Grace Hopper" {
		t.Errorf("name = %q, want entity finder result", contact.Name)
	}
}

func TestExtractContactPhonePatternOrder(t *testing.T) {
	// The international pattern is more specific and must win over the
	// permissive digit-run pattern.
	contact := newTestParser().ExtractContact(context.Background(), "call +44 2079 4600 0123 anytime")

	if contact.Phone == "" {
		t.Fatal("expected a phone match")
	}
	if contact.Phone[0] != '+' {
		t.Errorf("phone = %q, want international match", contact.Phone)
	}
}

package validator

import (
	"testing"
	"time"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", "test@domain", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidUUID(t *testing.T) {
	valid := []string{
		"0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b",
		"0188D0F2-7B8C-7B4A-8A2B-6B8B8B8B8B8B",
	}
	invalid := []string{
		"123e4567-e89b-12d3-a456-426614174000",
		"0188d0f27b8c7b4a8a2b6b8b8b8b8b8b",
		"g188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b",
		"",
	}
	for _, uuid := range valid {
		if !IsValidUUID(uuid) {
			t.Errorf("IsValidUUID(%q) = false, want true", uuid)
		}
	}
	for _, uuid := range invalid {
		if IsValidUUID(uuid) {
			t.Errorf("IsValidUUID(%q) = true, want false", uuid)
		}
	}
}

func TestIsValidPhone(t *testing.T) {
	valid := []string{"+91-9876543210", "081234567890", "555 123 4567"}
	invalid := []string{"", "abc", "12", "+91-98765x3210"}
	for _, p := range valid {
		if !IsValidPhone(p) {
			t.Errorf("IsValidPhone(%q) = false, want true", p)
		}
	}
	for _, p := range invalid {
		if IsValidPhone(p) {
			t.Errorf("IsValidPhone(%q) = true, want false", p)
		}
	}
}

func TestParseDay(t *testing.T) {
	loc := time.FixedZone("WIB", 7*60*60)
	cases := []struct {
		input string
		want  time.Time
		ok    bool
	}{
		{"2024-01-10", time.Date(2024, 1, 10, 0, 0, 0, 0, loc), true},
		{"2024-01-10T20:30:00Z", time.Date(2024, 1, 11, 0, 0, 0, 0, loc), true},
		{"2024-01-10T10:30:00+07:00", time.Date(2024, 1, 10, 0, 0, 0, 0, loc), true},
		{"10/01/2024", time.Time{}, false},
		{"", time.Time{}, false},
	}
	for _, c := range cases {
		got, ok := ParseDay(c.input, loc)
		if ok != c.ok {
			t.Errorf("ParseDay(%q) ok = %v, want %v", c.input, ok, c.ok)
			continue
		}
		if ok && !got.Equal(c.want) {
			t.Errorf("ParseDay(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestValidationErrorsErr(t *testing.T) {
	var errs ValidationErrors
	if errs.Err() != nil {
		t.Errorf("empty ValidationErrors.Err() = %v, want nil", errs.Err())
	}
	errs.Add("email", "email is required")
	errs.Add("name", "name is required")
	if errs.Err() == nil {
		t.Fatal("ValidationErrors.Err() = nil, want error")
	}
	if got, want := errs.Error(), "email: email is required; name: name is required"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if got := errs.ToMap()["name"]; got != "name is required" {
		t.Errorf("ToMap()[name] = %q", got)
	}
}

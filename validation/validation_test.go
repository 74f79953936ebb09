package validation

import (
	"testing"

	"github.com/go-playground/validator/v10"
)

func TestValidVIN(t *testing.T) {
	cases := []struct {
		vin  string
		want bool
	}{
		{"1HGCM82633A004352", true},
		{"WVWZZZ1JZXW000001", true},
		{"1HGCM82633A00435", false},   // too short
		{"1HGCM82633A0043521", false}, // too long
		{"1HGCM82633A00435I", false},  // forbidden letter
		{"1hgcm82633a004352", false},  // lowercase
		{"", false},
	}
	for _, c := range cases {
		if got := ValidVIN(c.vin); got != c.want {
			t.Errorf("ValidVIN(%q) = %v, want %v", c.vin, got, c.want)
		}
	}
}

func TestErrors(t *testing.T) {
	type payload struct {
		Email  string `json:"email" validate:"required,email"`
		Rating int    `json:"rating" validate:"min=1,max=5"`
	}
	v := validator.New()
	err := v.Struct(&payload{Email: "not-an-email", Rating: 9})
	if err == nil {
		t.Fatal("expected validation error")
	}
	errs := Errors(&payload{}, err)
	if errs["email"] == "" {
		t.Errorf("missing email message: %v", errs)
	}
	if errs["rating"] == "" {
		t.Errorf("missing rating message: %v", errs)
	}
}

func TestErrorsNonValidation(t *testing.T) {
	if out := Errors(&struct{}{}, errTest); out != nil {
		t.Errorf("expected nil map, got %v", out)
	}
}

type testError struct{}

func (testError) Error() string { return "boom" }

var errTest = testError{}

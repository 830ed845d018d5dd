package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	t.Run("simple", func(t *testing.T) {
		e := NewDomainErrorSimple("LEAD_NOT_FOUND", "Lead not found", http.StatusNotFound)
		if e.Error() != "LEAD_NOT_FOUND: Lead not found" {
			t.Fatalf("unexpected error string: %q", e.Error())
		}
		body := e.ToHTTPError()
		if body.Code != "LEAD_NOT_FOUND" || body.Message != "Lead not found" {
			t.Fatalf("unexpected body: %+v", body)
		}
		if e.Unwrap() != nil {
			t.Fatalf("expected no cause")
		}
	})

	t.Run("wrapped cause", func(t *testing.T) {
		cause := errors.New("db down")
		e := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)
		if !errors.Is(e, cause) {
			t.Fatalf("expected errors.Is to reach the cause")
		}
		if e.HTTPStatus != http.StatusInternalServerError {
			t.Fatalf("unexpected status %d", e.HTTPStatus)
		}
		if e.Error() != "INTERNAL_ERROR: An internal error occurred: db down" {
			t.Fatalf("unexpected error string: %q", e.Error())
		}
	})
}

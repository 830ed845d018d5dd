package usecase

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidInput wraps every draft validation failure.
var ErrInvalidInput = errors.New("invalid input")

const dateLayout = "2006-01-02"

// Clock returns the current time. Use cases take one so tests can pin "now".
type Clock func() time.Time

func systemClock() time.Time {
	return time.Now().UTC()
}

func orSystemClock(c Clock) Clock {
	if c == nil {
		return systemClock
	}
	return c
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// validateDraft runs the struct tags of a draft and reports the failing fields.
func validateDraft(draft any) error {
	err := validate.Struct(draft)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fmt.Sprintf("%s(%s)", fe.Field(), fe.Tag()))
	}
	return fmt.Errorf("%w: %s", ErrInvalidInput, strings.Join(fields, ", "))
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

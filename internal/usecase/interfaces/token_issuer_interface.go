package interfaces

import "time"

// ITokenIssuer signs and validates back-office access tokens.
type ITokenIssuer interface {
	Issue(subject string) (token string, expiresAt time.Time, err error)
	Validate(token string) (subject string, err error)
}

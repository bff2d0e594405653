package claims

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the subset of token claims the session core consumes. All fields
// are optional in the token; zero values mean "claim absent".
type Claims struct {
	// Role is the enumerated role claim ("USER" or "ADMIN") when the token
	// carries one as a string. Non-string role claims are ignored.
	Role string

	// SubjectID identifies the user's activity record. Non-string claims are
	// ignored.
	SubjectID string

	// ExpiresAt is the exp claim in epoch seconds, 0 when absent.
	ExpiresAt int64
}

const (
	claimRole      = "role"
	claimSubjectID = "subjectId"
)

var parser = jwt.NewParser()

// Decode extracts the claim set embedded in token without verifying its
// signature. The token must consist of three dot-separated segments whose
// middle segment is a base64url-encoded JSON object. Decode returns nil on
// any failure (missing segment, malformed base64, malformed JSON) and never
// panics: an unreadable token must not crash the caller.
//
// Decode establishes which claims are present in the token, not whether they
// are authentic. Authenticity is the server's job.
func Decode(token string) *Claims {
	mc := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, mc); err != nil {
		return nil
	}

	out := &Claims{}
	if role, ok := mc[claimRole].(string); ok {
		out.Role = role
	}
	if subject, ok := mc[claimSubjectID].(string); ok {
		out.SubjectID = subject
	}
	if exp, err := mc.GetExpirationTime(); err == nil && exp != nil {
		out.ExpiresAt = exp.Unix()
	}

	return out
}

// ExpiredAt reports whether the claims carry an expiry at or before now.
// Claims without an exp claim never expire from the client's point of view.
func (c *Claims) ExpiredAt(now time.Time) bool {
	if c == nil || c.ExpiresAt == 0 {
		return false
	}
	return c.ExpiresAt <= now.Unix()
}

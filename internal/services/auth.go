package services

import (
	"context"
	"crypto/subtle"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// AuthDocumentID is the id of the service_auth document holding the token.
const AuthDocumentID = "1"

const bearerPrefix = "Bearer "

// LoadAuthToken reads the shared API token from service_auth:1. A missing
// document or a missing/non-string token field is an error; an empty string
// is returned as-is and disables authentication.
func LoadAuthToken(ctx context.Context, docs Documents) (string, error) {
	doc, err := docs.Get(ctx, CollectionServiceAuth, AuthDocumentID)
	if err != nil {
		return "", fmt.Errorf("load %s: %w", DocumentKey(CollectionServiceAuth, AuthDocumentID), err)
	}

	val, err := doc.LookupErr("token")
	if err != nil {
		return "", fmt.Errorf("%s has no token field", DocumentKey(CollectionServiceAuth, AuthDocumentID))
	}
	if val.Type != bsontype.String {
		return "", fmt.Errorf("%s token is %s, want string", DocumentKey(CollectionServiceAuth, AuthDocumentID), val.Type)
	}
	return val.StringValue(), nil
}

// BearerToken strips an optional "Bearer " prefix from an Authorization
// header. A header without the prefix is returned unchanged.
func BearerToken(header string) string {
	return strings.TrimPrefix(header, bearerPrefix)
}

// TokenVerifier checks Authorization headers against the token loaded at startup.
type TokenVerifier struct {
	token string
}

func NewTokenVerifier(token string) *TokenVerifier {
	return &TokenVerifier{token: token}
}

// Enabled reports whether a token was configured. When it is false every
// request is authorized.
func (v *TokenVerifier) Enabled() bool {
	return v.token != ""
}

// Verify returns ErrUnauthorized when a token is configured and the header
// does not carry exactly that token.
func (v *TokenVerifier) Verify(header string) error {
	if !v.Enabled() {
		return nil
	}
	presented := BearerToken(header)
	if subtle.ConstantTimeCompare([]byte(presented), []byte(v.token)) != 1 {
		return ErrUnauthorized
	}
	return nil
}

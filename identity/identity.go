package identity

import (
	"context"

	"firebase.google.com/go/v4/auth"
)

// Claims are the fields extracted from a verified ID token.
type Claims struct {
	UID     string
	Email   string
	Name    string
	Picture string
}

// Verifier validates Firebase ID tokens and extracts their claims.
type Verifier struct {
	client *auth.Client
}

func NewVerifier(client *auth.Client) *Verifier {
	return &Verifier{client: client}
}

// Verify checks the token's signature and expiry against the identity
// provider and returns its claims. Email, name and picture are optional
// claims and come back empty when absent.
func (v *Verifier) Verify(ctx context.Context, idToken string) (*Claims, error) {
	token, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, err
	}

	return &Claims{
		UID:     token.UID,
		Email:   stringClaim(token.Claims, "email"),
		Name:    stringClaim(token.Claims, "name"),
		Picture: stringClaim(token.Claims, "picture"),
	}, nil
}

func stringClaim(claims map[string]interface{}, key string) string {
	if value, ok := claims[key].(string); ok {
		return value
	}
	return ""
}

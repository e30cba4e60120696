// Package verifier provides the bundled token verifier implementation.
//
// The resolver depends on the identity.TokenVerifier interface; this HMAC-signed JWT
// implementation is what the server wires in production. Deployments fronted by a
// managed verification service substitute their own adapter.
package verifier

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"authgate/internal/identity"
	"authgate/pkg/sentinel"
)

// Claims are the JWT claims expected on platform-issued access tokens. The subject ID
// rides in the registered `sub` claim; the display key is platform-specific.
type Claims struct {
	DisplayKey string `json:"display_key,omitempty"`
	jwt.RegisteredClaims
}

// JWTVerifier validates HS256-signed access tokens.
type JWTVerifier struct {
	signingKey []byte
	issuer     string
	audience   string
}

// NewJWTVerifier constructs a verifier for tokens signed with the given key.
// Issuer and audience are enforced when non-empty.
func NewJWTVerifier(signingKey, issuer, audience string) *JWTVerifier {
	return &JWTVerifier{
		signingKey: []byte(signingKey),
		issuer:     issuer,
		audience:   audience,
	}
}

// Verify implements identity.TokenVerifier. All rejections wrap
// sentinel.ErrTokenInvalid; callers cannot distinguish expiry from forgery, which is
// deliberate.
func (v *JWTVerifier) Verify(_ context.Context, token string) (*identity.TokenIdentity, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}
	if v.audience != "" {
		opts = append(opts, jwt.WithAudience(v.audience))
	}

	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(*jwt.Token) (interface{}, error) {
		return v.signingKey, nil
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%w: token expired", sentinel.ErrTokenInvalid)
		}
		return nil, fmt.Errorf("%w: %v", sentinel.ErrTokenInvalid, err)
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || claims.Subject == "" {
		return nil, fmt.Errorf("%w: missing subject claim", sentinel.ErrTokenInvalid)
	}

	return &identity.TokenIdentity{
		SubjectID:  claims.Subject,
		DisplayKey: claims.DisplayKey,
		Issuer:     claims.Issuer,
	}, nil
}

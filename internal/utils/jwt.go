package utils

import (
	"crypto/ed25519"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ReportClaims are the claims of the bearer token attached to every
// telemetry report. The token is signed with the node's Ed25519 key, so the
// collector can verify both the sender and the body it received.
type ReportClaims struct {
	jwt.RegisteredClaims

	// BodySHA256 is the hex SHA-256 of the exact request body.
	BodySHA256 string `json:"body_sha256"`
}

// GenerateReportToken creates an EdDSA-signed JWT for one report request.
//
// The token includes the following claims:
//   - Subject   (sub): the node ID (hex public key)
//   - IssuedAt  (iat): now
//   - ExpiresAt (exp): now plus ttl
//   - body_sha256:     digest of the request body, see [BodyDigest]
//
// Returns an error if any parameter is empty or the key has the wrong size.
func GenerateReportToken(nodeID string, key ed25519.PrivateKey, bodyDigest string, now time.Time, ttl time.Duration) (string, error) {
	if nodeID == "" || bodyDigest == "" || ttl <= 0 || len(key) != ed25519.PrivateKeySize {
		return "", errors.New("invalid params for generating report token")
	}

	claims := &ReportClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   nodeID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		BodySHA256: bodyDigest,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodEdDSA, claims)
	signed, err := token.SignedString(key)
	if err != nil {
		return "", fmt.Errorf("error occurred during signing report token: %w", err)
	}

	return signed, nil
}

// ValidateReportToken verifies the signature of tokenString with pub and
// returns its claims. Collectors and tests use it; the daemon itself only
// signs.
func ValidateReportToken(tokenString string, pub ed25519.PublicKey) (*ReportClaims, error) {
	claims := &ReportClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return pub, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodEdDSA.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.Subject == "" {
		return nil, errors.New("empty subject error")
	}

	return claims, nil
}

func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Split(strings.TrimSpace(authorizationHeader), " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}

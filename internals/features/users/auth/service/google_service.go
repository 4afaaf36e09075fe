// file: internals/features/users/auth/service/google_service.go
package service

import (
	"github.com/gofiber/fiber/v2"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"

	"campushub_backend/internals/configs"
)

// GoogleIdentity is the slice of the Google ID-token claim set we care about.
type GoogleIdentity struct {
	Subject  string
	Email    string
	Name     string
	Picture  string
	Verified bool
}

// VerifyGoogleIDToken checks signature and audience on a Google ID token and
// extracts the identity claims.
func VerifyGoogleIDToken(idToken string) (*GoogleIdentity, error) {
	if configs.GoogleClientID == "" {
		return nil, fiber.NewError(fiber.StatusServiceUnavailable, "Google sign-in is not configured")
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(idToken, []string{configs.GoogleClientID}); err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid Google ID token")
	}

	claims, err := googleAuthIDTokenVerifier.Decode(idToken)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid Google ID token")
	}
	if claims.Sub == "" {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Google token missing subject")
	}

	return &GoogleIdentity{
		Subject:  claims.Sub,
		Email:    claims.Email,
		Name:     claims.Name,
		Picture:  claims.Picture,
		Verified: claims.EmailVerified,
	}, nil
}

package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// HMACService implements ports.HMACService using HMAC-SHA256. It backs
// the credential service's API-key secret hashing (C7); the card
// provider's webhook signature check (C4) computes its HMAC inline with
// the same sign-and-constant-time-compare shape instead of calling it.
type HMACService struct{}

// NewHMACService creates a new HMAC-SHA256 service.
func NewHMACService() *HMACService {
	return &HMACService{}
}

// Sign computes HMAC-SHA256 of payload using secret.
// Returns lowercase hex-encoded signature.
func (s *HMACService) Sign(secret string, payload string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(payload))
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify checks if signature matches HMAC-SHA256(secret, payload) using a
// constant-time comparison to prevent timing attacks.
func (s *HMACService) Verify(secret string, payload string, signature string) bool {
	expected := s.Sign(secret, payload)
	return hmac.Equal([]byte(expected), []byte(signature))
}

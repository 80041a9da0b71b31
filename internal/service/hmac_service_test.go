package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHMACService_SignAndVerify(t *testing.T) {
	svc := NewHMACService()
	secret := "my-secret-key"
	payload := "1708092000:{\"amount\":50000}"

	signature := svc.Sign(secret, payload)

	assert.Regexp(t, `^[0-9a-f]{64}$`, signature, "signature should be 64-char lowercase hex (SHA-256)")
	assert.True(t, svc.Verify(secret, payload, signature))
}

func TestHMACService_VerifyFails_WrongKey(t *testing.T) {
	svc := NewHMACService()
	payload := "test payload"

	signature := svc.Sign("correct-key", payload)
	assert.False(t, svc.Verify("wrong-key", payload, signature))
}

func TestHMACService_VerifyFails_WrongPayload(t *testing.T) {
	svc := NewHMACService()
	secret := "my-key"

	signature := svc.Sign(secret, "original payload")
	assert.False(t, svc.Verify(secret, "tampered payload", signature))
}

func TestHMACService_VerifyFails_WrongSignature(t *testing.T) {
	svc := NewHMACService()
	assert.False(t, svc.Verify("key", "payload", "invalidsignature"))
}

func TestHMACService_DeterministicSign(t *testing.T) {
	svc := NewHMACService()

	sig1 := svc.Sign("key", "data")
	sig2 := svc.Sign("key", "data")

	assert.Equal(t, sig1, sig2, "same secret+payload should produce same signature")
}

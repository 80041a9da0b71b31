package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// --- SanitizeStruct tests ---

func TestSanitizeStruct_TrimsWhitespace(t *testing.T) {
	req := CreateApiKeyRequest{
		Label:  "  billing key  ",
		Scopes: []string{"usage:write"},
	}
	SanitizeStruct(&req)

	assert.Equal(t, "billing key", req.Label)
}

func TestSanitizeStruct_EscapesHTML(t *testing.T) {
	label := "keys <script>alert('x')</script> prod"
	req := CreateApiKeyRequest{
		Label:  label,
		Scopes: []string{"admin"},
	}
	SanitizeStruct(&req)

	assert.Contains(t, req.Label, "&lt;script&gt;")
	assert.NotContains(t, req.Label, "<script>")
}

func TestSanitizeStruct_HandlesPointerString(t *testing.T) {
	url := "  https://example.com/success  "
	req := TopupRequest{
		AmountUSD:  "10.00",
		Method:     "card",
		SuccessURL: &url,
	}
	SanitizeStruct(&req)

	assert.Equal(t, "https://example.com/success", *req.SuccessURL)
}

func TestSanitizeStruct_NilPointerIsNoOp(t *testing.T) {
	req := TopupRequest{
		AmountUSD: "10.00",
		Method:    "card",
	}
	SanitizeStruct(&req)
	assert.Nil(t, req.SuccessURL)
}

func TestSanitizeStruct_NonPointerIsNoOp(t *testing.T) {
	s := "hello"
	SanitizeStruct(s) // should not panic
}

// --- Custom Validator tests ---

func TestSafeID_Valid(t *testing.T) {
	cases := []string{
		"ref-001",
		"REF_002",
		"a.b.c",
		"simple123",
		"ABC-def_GHI.123",
	}
	for _, tc := range cases {
		assert.True(t, safeStringRe.MatchString(tc), "expected valid: %s", tc)
	}
}

func TestSafeID_Invalid(t *testing.T) {
	cases := []string{
		"ref 001",     // space
		"ref<001>",    // angle brackets
		"ref;DROP",    // semicolon
		"",            // empty
		"hello world", // space
		"ref\n001",    // newline
	}
	for _, tc := range cases {
		assert.False(t, safeStringRe.MatchString(tc), "expected invalid: %s", tc)
	}
}

func TestSanitizeStruct_TopupRequest(t *testing.T) {
	url := "  https://example.com/cancel  "
	req := TopupRequest{
		AmountUSD: "  10.00  ",
		Method:    " card ",
		CancelURL: &url,
	}
	SanitizeStruct(&req)

	assert.Equal(t, "10.00", req.AmountUSD)
	assert.Equal(t, "card", req.Method)
	assert.Equal(t, "https://example.com/cancel", *req.CancelURL)
}

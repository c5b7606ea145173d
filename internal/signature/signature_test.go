package signature_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vishwasri/techfest-backend/internal/signature"
)

func TestVerifyAcceptsOwnSignature(t *testing.T) {
	cases := []struct {
		orderID   string
		paymentID string
		secret    string
	}{
		{"order_X", "pay_Y", "s3cret"},
		{"order_NQoX1h", "pay_29QQoUBi66xm2f", "key_secret"},
		{"", "", "empty-ids-still-sign"},
	}
	for _, tc := range cases {
		sig := signature.Sign(tc.orderID, tc.paymentID, tc.secret)
		assert.True(t, signature.Verify(tc.orderID, tc.paymentID, sig, tc.secret),
			"order=%q payment=%q", tc.orderID, tc.paymentID)
	}
}

func TestVerifyRejectsTamperedPair(t *testing.T) {
	sig := signature.Sign("order_X", "pay_Y", "s3cret")

	assert.False(t, signature.Verify("order_Z", "pay_Y", sig, "s3cret"))
	assert.False(t, signature.Verify("order_X", "pay_Z", sig, "s3cret"))
	assert.False(t, signature.Verify("order_X", "pay_Y", sig, "other-secret"))
}

func TestVerifyRejectsShortSignature(t *testing.T) {
	assert.False(t, signature.Verify("order_X", "pay_Y", "deadbeef", "s3cret"))
	assert.False(t, signature.Verify("order_X", "pay_Y", "", "s3cret"))
}

func TestSignIsLowercaseHex(t *testing.T) {
	sig := signature.Sign("order_X", "pay_Y", "s3cret")
	assert.Regexp(t, "^[0-9a-f]{64}$", sig)
}

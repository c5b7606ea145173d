// Package signature authenticates payment gateway callbacks. The gateway
// signs orderID + "|" + paymentID with HMAC-SHA256 keyed on the API secret
// and delivers the hex digest alongside the callback.
package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// Sign returns the lowercase hex HMAC-SHA256 of orderID + "|" + paymentID.
func Sign(orderID, paymentID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify reports whether sig is the gateway's signature for the pair.
// Length is checked first, then the bodies are compared in constant time.
func Verify(orderID, paymentID, sig, secret string) bool {
	expected := Sign(orderID, paymentID, secret)
	if len(sig) != len(expected) {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(expected), []byte(sig)) == 1
}

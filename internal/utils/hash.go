package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// HashBytes computes the hex-encoded HMAC-SHA256 of data under hashKey.
//
// Example usage:
//
//	signature := utils.HashBytes([]byte(orderID+"|"+paymentID), keySecret)
func HashBytes(data []byte, hashKey string) string {
	hasher := hmac.New(sha256.New, []byte(hashKey))
	hasher.Write(data)
	return hex.EncodeToString(hasher.Sum(nil))
}

// VerifyHash reports whether signatureHex equals [HashBytes] of data under
// hashKey. The comparison runs in constant time and ignores the case of the
// hex digits. An empty key or signature never verifies.
func VerifyHash(data []byte, signatureHex string, hashKey string) bool {
	if hashKey == "" || signatureHex == "" {
		return false
	}

	got := strings.ToLower(strings.TrimSpace(signatureHex))
	return hmac.Equal([]byte(got), []byte(HashBytes(data, hashKey)))
}

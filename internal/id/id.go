package id

import "crypto/rand"

// New creates a unique 16-character alphanumeric ID.
func New() string {
	const chars = "abcdefghijklmnopqrstuvwxyz0123456789"
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		panic("crypto/rand failed: " + err.Error())
	}
	for i := range b {
		b[i] = chars[b[i]%byte(len(chars))]
	}
	return string(b)
}

// Short creates a 6-character ID for guest id suffixes.
func Short() string {
	return New()[:6]
}

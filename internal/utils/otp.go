package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	codeLength = 6
	codeMin    = 100000
	codeMax    = 999999
)

var codeSpan = big.NewInt(codeMax - codeMin + 1)

// GenerateCode returns a uniformly random verification code in [100000, 999999]
func GenerateCode() (string, error) {
	n, err := rand.Int(rand.Reader, codeSpan)
	if err != nil {
		return "", fmt.Errorf("failed to generate random code: %w", err)
	}
	return fmt.Sprintf("%d", n.Int64()+codeMin), nil
}

// IsCodeFormat reports whether code is exactly six ASCII digits
func IsCodeFormat(code string) bool {
	if len(code) != codeLength {
		return false
	}
	for i := 0; i < len(code); i++ {
		if code[i] < '0' || code[i] > '9' {
			return false
		}
	}
	return true
}

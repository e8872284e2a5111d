package settlement

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"golang.org/x/crypto/bcrypt"

	errs "github.com/amirhossein-jamali/sponsorship-engine/internal/domain/error"
)

// GenerateOtp returns a cryptographically random numeric passcode of the
// given length, zero-padded so every code has exactly that many digits
func GenerateOtp(digits int) (string, error) {
	if digits < 4 || digits > 10 {
		return "", fmt.Errorf("%w: otp length must be between 4 and 10 digits", errs.ErrInvalidRequest)
	}

	max := big.NewInt(1)
	for i := 0; i < digits; i++ {
		max.Mul(max, big.NewInt(10))
	}

	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", fmt.Errorf("failed to generate passcode: %w", err)
	}

	return fmt.Sprintf("%0*d", digits, n), nil
}

// HashOtp produces the one-way hash stored in place of the plaintext passcode
func HashOtp(code string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash passcode: %w", err)
	}
	return string(hash), nil
}

// VerifyOtp compares a supplied passcode against the stored hash
func VerifyOtp(hash, code string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(code)) == nil
}

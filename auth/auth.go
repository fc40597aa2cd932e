// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredential = errors.New("invalid credential")
	ErrInvalidToken      = errors.New("invalid token format")
	ErrExpiredToken      = errors.New("token expired")
)

// TokenTTL is how long an issued admin token stays valid. There is no
// revocation before expiry; the token is a stateless capability.
const TokenTTL = 24 * time.Hour

// HashPassword creates a bcrypt hash of the admin password. bcrypt salts
// internally and is deliberately slow.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword compares a presented password against the stored hash.
func CheckPassword(hash, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return ErrInvalidCredential
	}
	return nil
}

// IssueToken creates a signed admin token valid for TokenTTL. The token is
// "<base64 expiry>.<base64 HMAC-SHA256(secret, expiry)>": the expiry is the
// claim and the signature proves the server minted it.
func IssueToken(secret string, now time.Time) string {
	expiry := strconv.FormatInt(now.Add(TokenTTL).Unix(), 10)
	payload := base64.RawURLEncoding.EncodeToString([]byte(expiry))
	return payload + "." + sign(secret, expiry)
}

// VerifyToken checks the signature and expiry of a presented token.
func VerifyToken(secret, token string, now time.Time) error {
	payload, sig, ok := strings.Cut(token, ".")
	if !ok {
		return ErrInvalidToken
	}

	raw, err := base64.RawURLEncoding.DecodeString(payload)
	if err != nil {
		return ErrInvalidToken
	}
	expiry := string(raw)

	if !hmac.Equal([]byte(sig), []byte(sign(secret, expiry))) {
		return ErrInvalidToken
	}

	unix, err := strconv.ParseInt(expiry, 10, 64)
	if err != nil {
		return ErrInvalidToken
	}
	if now.After(time.Unix(unix, 0)) {
		return ErrExpiredToken
	}
	return nil
}

func sign(secret, expiry string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(expiry))
	return base64.RawURLEncoding.EncodeToString(h.Sum(nil))
}

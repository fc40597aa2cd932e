// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides password hashing and admin token utilities.

# Password Hashing

The admin password is stored as a bcrypt hash in the data file:

	hash, err := auth.HashPassword(password)
	err := auth.CheckPassword(hash, presented)

bcrypt salts each hash and its cost makes brute force slow. CheckPassword
returns ErrInvalidCredential on mismatch.

# Admin Tokens

A successful login mints a signed, expiring token:

	token := auth.IssueToken(secret, time.Now())
	err := auth.VerifyToken(secret, token, time.Now())

The token is "<base64 expiry>.<base64 HMAC-SHA256(secret, expiry)>" with
URL-safe base64 and no padding. Verification checks the HMAC in constant
time, then the expiry (24 hours). Tokens are stateless: the server keeps no
session table, so a token cannot be revoked before it expires.
*/
package auth

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3000)
  - DataFile: Path to the JSON data file (default: data.json)
  - AdminPassword: Initial admin password, hashed into the data file on
    first start (default: admin123)
  - TokenSecret: Secret for admin token signing (required)
  - WebhookURL: Vote notification webhook target (optional)
  - WebhookEnabled: Whether vote webhooks fire (default: false)

# CLI Flags

	-p               Server port
	-f               Data file path
	--admin-password Initial admin password
	--token-secret   Token signing secret
	--webhook-url    Webhook URL
	--webhook-enabled Enable webhooks

# Environment Variables

Flags fall back to environment variables:

	PORT            → -p
	DATA_FILE       → -f
	ADMIN_PASSWORD  → --admin-password
	TOKEN_SECRET    → --token-secret
	WEBHOOK_URL     → --webhook-url
	WEBHOOK_ENABLED → --webhook-enabled

CLI flags take precedence over environment variables. main loads a .env
file via godotenv before parsing, so a local .env works too.

# Validation

ParseFlags returns an error if required values are missing:

  - TOKEN_SECRET must be provided
*/
package cliparse

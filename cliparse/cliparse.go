package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
)

type Config struct {
	Port           int
	DataFile       string
	AdminPassword  string
	TokenSecret    string
	WebhookURL     string
	WebhookEnabled bool
}

// ParseFlags validates flags and fills in environment fallbacks
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("avatar-vote", flag.ContinueOnError)

	// Network and storage config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DataFile, "f", "", "Path to the JSON data file")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.TokenSecret, "token-secret", "", "Admin token signing secret (prefer env)")
	fs.StringVar(&cfg.AdminPassword, "admin-password", "", "Initial admin password (prefer env)")

	// Webhook notifications (optional)
	fs.StringVar(&cfg.WebhookURL, "webhook-url", "", "Vote notification webhook URL")
	fs.BoolVar(&cfg.WebhookEnabled, "webhook-enabled", false, "Enable vote notification webhooks")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3000 // default
		}
	}

	if cfg.DataFile == "" {
		cfg.DataFile = os.Getenv("DATA_FILE")
	}
	if cfg.DataFile == "" {
		cfg.DataFile = "data.json"
	}

	if cfg.AdminPassword == "" {
		cfg.AdminPassword = os.Getenv("ADMIN_PASSWORD")
	}
	if cfg.AdminPassword == "" {
		cfg.AdminPassword = "admin123" // dev default, hashed on first start
	}

	// Secret - MUST be provided
	if cfg.TokenSecret == "" {
		cfg.TokenSecret = os.Getenv("TOKEN_SECRET")
	}
	if cfg.TokenSecret == "" {
		return Config{}, errors.New("TOKEN_SECRET required")
	}

	if cfg.WebhookURL == "" {
		cfg.WebhookURL = os.Getenv("WEBHOOK_URL")
	}
	if !cfg.WebhookEnabled {
		cfg.WebhookEnabled = os.Getenv("WEBHOOK_ENABLED") == "true"
	}

	return cfg, nil
}

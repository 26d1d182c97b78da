package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string
	// Relay API (EmailJS-compatible) Configuration
	RelayServiceID   string
	RelayTemplateID  string
	RelayPublicKey   string
	RelayAccessToken string // optional private access token
	RelayOrigin      string // optional; must match the relay's allowed origins
	// SMTP Configuration
	SMTPHost       string
	SMTPPort       string
	SMTPUsername   string
	SMTPPassword   string
	SMTPFromEmail  string
	ContactEmailTo string
	SMTPSecurity   string // "ssl" (implicit TLS), "starttls", or "none"
	// Dispatch behaviour
	DispatchMode string // "auto", "relay", "smtp" or "disabled"
	SyncDispatch bool   // debug toggle: caller waits for the send outcome
	// CRM (LeadConnector) Configuration
	CRMAPIKey     string
	CRMLocationID string
	CRMBaseURL    string
	// HTTP Surface
	AllowedOrigins []string // "*" means any origin
	AllowedHosts   []string // empty means any host; "*.suffix" wildcards allowed
	LocalTZ        string
	BuildDir       string
	// Deployment metadata (exposed on /api/version)
	ReleaseVersion string
	ReleaseCommit  string
}

func LoadConfig() (*Config, error) {
	// Load .env when present (local only, ignored in production)
	_ = godotenv.Load()

	cfg := &Config{
		Port: getEnv("PORT", "8080"),
		// Relay API Configuration
		RelayServiceID:   getEnv("EMAILJS_SERVICE_ID", ""),
		RelayTemplateID:  getEnv("EMAILJS_TEMPLATE_ID", ""),
		RelayPublicKey:   getEnv("EMAILJS_PUBLIC_KEY", ""),
		RelayAccessToken: getEnv("EMAILJS_ACCESS_TOKEN", ""),
		RelayOrigin:      getEnv("EMAILJS_ORIGIN", ""),
		// SMTP Configuration
		SMTPHost:       getEnv("SMTP_HOST", ""),
		SMTPPort:       getEnv("SMTP_PORT", "587"),
		SMTPUsername:   getEnv("SMTP_USERNAME", ""),
		SMTPPassword:   getEnv("SMTP_PASSWORD", ""),
		SMTPFromEmail:  getEnv("SMTP_FROM_EMAIL", ""),
		ContactEmailTo: getEnv("CONTACT_EMAIL_TO", ""),
		SMTPSecurity:   strings.ToLower(getEnv("SMTP_SECURITY", "starttls")),
		// Dispatch behaviour
		DispatchMode: strings.ToLower(getEnv("EMAIL_DISPATCH_MODE", "auto")),
		SyncDispatch: getEnvBool("EMAIL_SYNC_DISPATCH", false),
		// CRM Configuration
		CRMAPIKey:     getEnv("GHL_API_KEY", ""),
		CRMLocationID: getEnv("GHL_LOCATION_ID", ""),
		CRMBaseURL:    strings.TrimRight(getEnv("GHL_BASE_URL", "https://services.leadconnectorhq.com"), "/"),
		// HTTP Surface
		AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", "*")),
		AllowedHosts:   splitList(getEnv("ALLOWED_HOSTS", "")),
		LocalTZ:        getEnv("LOCAL_TZ", "UTC"),
		BuildDir:       getEnv("BUILD_DIR", "build"),
		// Deployment metadata
		ReleaseVersion: getEnv("HEROKU_RELEASE_VERSION", ""),
		ReleaseCommit:  getEnv("HEROKU_SLUG_COMMIT", ""),
	}

	// Incomplete transport groups degrade that transport to "skipped",
	// they never fail startup.
	if !cfg.RelayConfigured() {
		log.Println("WARNING: Relay API credentials incomplete (EMAILJS_SERVICE_ID / EMAILJS_TEMPLATE_ID / EMAILJS_PUBLIC_KEY). Relay transport will be skipped.")
	}
	if !cfg.SMTPConfigured() {
		log.Println("WARNING: SMTP configuration incomplete. SMTP transport will be skipped.")
	}
	if cfg.CRMAPIKey == "" || cfg.CRMLocationID == "" {
		log.Println("INFO: CRM credentials not set. CRM sync will be skipped.")
	}

	switch cfg.DispatchMode {
	case "auto", "relay", "smtp", "disabled":
	default:
		log.Printf("WARNING: unknown EMAIL_DISPATCH_MODE %q, falling back to \"auto\".", cfg.DispatchMode)
		cfg.DispatchMode = "auto"
	}

	return cfg, nil
}

// RelayConfigured reports whether the relay transport has its required
// configuration subset.
func (c *Config) RelayConfigured() bool {
	return c.RelayServiceID != "" && c.RelayTemplateID != "" && c.RelayPublicKey != ""
}

// SMTPConfigured reports whether the SMTP transport has its required
// configuration subset.
func (c *Config) SMTPConfigured() bool {
	return c.SMTPHost != "" && c.SMTPPort != "" && c.SMTPUsername != "" &&
		c.SMTPPassword != "" && c.SMTPFromEmail != "" && c.ContactEmailTo != ""
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvBool returns a boolean environment variable or fallback if not set/invalid
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		switch strings.ToLower(strings.TrimSpace(value)) {
		case "1", "t", "true", "yes", "on":
			return true
		case "0", "f", "false", "no", "off":
			return false
		}
	}
	return fallback
}

// splitList parses a comma-separated env value, dropping empty entries.
func splitList(value string) []string {
	if value == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// internal/infra/config/config.go
package config

import "os"

// Config holds the environment-derived settings for the whole app.
type Config struct {
	Port string

	GCPCreds                 string
	FirestoreProjectID       string
	FirestoreCredentialsFile string
	FirebaseProjectID        string

	// Bucket for product/category images served to the storefront.
	ProductImageBucket string

	// CORS origin for the storefront SPA ("*" for local dev).
	AllowedOrigin string

	// Contact-form mail. Empty SENDGRID_FROM / SHOP_INBOX disables outbound
	// notifications (the inquiry document is still stored).
	SendGridFrom string
	ShopInbox    string
}

// Load reads the environment and returns a Config.
func Load() *Config {
	defaultProject := getenvDefault("GCP_PROJECT_ID", "greenhaven-dev")

	return &Config{
		Port: getenvDefault("PORT", "8080"),

		GCPCreds:                 os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),
		FirestoreProjectID:       getenvDefault("FIRESTORE_PROJECT_ID", defaultProject),
		FirestoreCredentialsFile: os.Getenv("FIRESTORE_CREDENTIALS_FILE"),
		FirebaseProjectID:        getenvDefault("FIREBASE_PROJECT_ID", defaultProject),

		ProductImageBucket: getenvDefault("PRODUCT_IMAGE_BUCKET", "greenhaven-product-images"),

		AllowedOrigin: getenvDefault("ALLOWED_ORIGIN", "*"),

		SendGridFrom: os.Getenv("SENDGRID_FROM"),
		ShopInbox:    os.Getenv("SHOP_INBOX"),
	}
}

func (c *Config) GetFirestoreProjectID() string {
	return c.FirestoreProjectID
}

func (c *Config) GetFirebaseProjectID() string {
	return c.FirebaseProjectID
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

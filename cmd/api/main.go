package main

import (
	"log"
	"strings"

	_ "github.com/joho/godotenv/autoload"

	"github.com/vitacoach/server/internal/config"
	"github.com/vitacoach/server/internal/httpserver"
)

func main() {
	cfg := config.Load()

	printStartupBanner(cfg)

	validateProductionConfig(cfg)

	server := httpserver.New(cfg)

	log.Fatal(server.Start())
}

// printStartupBanner logs a one-time summary of the resolved configuration.
// No secrets are ever printed, only masked indicators ("set" / "not set").
func printStartupBanner(cfg *config.Config) {
	log.Println("========== VitaCoach API ==========")
	log.Printf("  env              = %s", cfg.Env)
	log.Printf("  port             = %d", cfg.Port)
	log.Printf("  latency_scale    = %.2f", cfg.LatencyScale)

	// ---- Blob / S3 ----
	log.Println("---- blob ----")
	log.Printf("  blob_mode        = %s", cfg.Blob.Mode)
	if cfg.Blob.Mode != config.BlobModeLocal {
		log.Printf("  s3: %s", cfg.Blob.S3.DiagnosticsSummary())
	}

	// ---- AI ----
	log.Println("---- ai ----")
	log.Printf("  ai_mode          = %s", cfg.AIMode)

	// ---- Billing ----
	log.Println("---- billing ----")
	log.Printf("  billing_mode     = %s", cfg.BillingMode)
	if cfg.BillingMode == config.BillingModeStripe {
		log.Printf("  stripe_secret    = %s", setOrNot(cfg.Stripe.SecretKey))
		log.Printf("  stripe_price_id  = %s", nonEmptyOrDash(cfg.Stripe.PriceID))
		log.Printf("  success_url      = %s", nonEmptyOrDash(cfg.Stripe.SuccessURL))
		log.Printf("  cancel_url       = %s", nonEmptyOrDash(cfg.Stripe.CancelURL))
	}

	log.Println("===================================")
}

// validateProductionConfig performs fatal checks that only matter in non-local envs.
func validateProductionConfig(cfg *config.Config) {
	// S3 hard-mode validation
	if cfg.Blob.Mode == config.BlobModeS3 {
		if missing := cfg.Blob.S3.MissingRequired(); len(missing) > 0 {
			log.Fatalf("FATAL blob: BLOB_MODE is 's3' but S3 config is incomplete, missing: %s", strings.Join(missing, ", "))
		}
	}

	// Stripe validation when enabled
	if cfg.BillingMode == config.BillingModeStripe {
		var missing []string
		if strings.TrimSpace(cfg.Stripe.SecretKey) == "" {
			missing = append(missing, "STRIPE_SECRET_KEY")
		}
		if strings.TrimSpace(cfg.Stripe.PriceID) == "" {
			missing = append(missing, "STRIPE_PRICE_ID")
		}
		if len(missing) > 0 {
			log.Fatalf("FATAL billing: BILLING_MODE=stripe but config is incomplete, missing: %s", strings.Join(missing, ", "))
		}
	}
}

// ---- helpers (no secrets) ----

func setOrNot(v string) string {
	if strings.TrimSpace(v) == "" {
		return "not set"
	}
	return "set"
}

func nonEmptyOrDash(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return v
}

package config

import (
	"reflect"
	"strings"
	"testing"
)

func TestS3ConfigMissingRequired(t *testing.T) {
	cfg := S3Config{}
	missing := cfg.MissingRequired()
	if len(missing) != 6 {
		t.Fatalf("expected 6 missing keys, got %d: %v", len(missing), missing)
	}
	if cfg.IsConfigured() {
		t.Fatal("empty config must not be configured")
	}

	cfg = S3Config{
		Endpoint:        "https://s3.example.com",
		Region:          "us-east-1",
		Bucket:          "uploads",
		AccessKeyID:     "key",
		SecretAccessKey: "secret",
		PublicBaseURL:   "https://cdn.example.com",
	}
	if !cfg.IsConfigured() {
		t.Fatalf("expected configured, missing: %v", cfg.MissingRequired())
	}
}

func TestS3ConfigDiagnosticsMasksSecrets(t *testing.T) {
	cfg := S3Config{
		Endpoint:        "https://s3.example.com",
		AccessKeyID:     "AKIA123",
		SecretAccessKey: "topsecret",
	}

	summary := cfg.DiagnosticsSummary()
	for _, secret := range []string{"AKIA123", "topsecret"} {
		if strings.Contains(summary, secret) {
			t.Fatalf("summary leaks secret %q: %s", secret, summary)
		}
	}
	if !strings.Contains(summary, "access_key_id=set") {
		t.Fatalf("expected masked access key status: %s", summary)
	}
}

func TestParseCORSOrigins(t *testing.T) {
	got := parseCORSOrigins("", "local")
	want := []string{"http://localhost:3000", "http://localhost:5173"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("local defaults: got %v", got)
	}

	if got := parseCORSOrigins("", "prod"); got != nil {
		t.Fatalf("prod default must deny, got %v", got)
	}

	got = parseCORSOrigins(" https://a.example.com , https://b.example.com ,", "prod")
	want = []string{"https://a.example.com", "https://b.example.com"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected origins: %v", got)
	}
}

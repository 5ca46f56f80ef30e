package main

import (
	"bytes"
	"flag"
	"os"
	"testing"
	"time"
)

// resetFlags resets the global flag.CommandLine to avoid "flag redefined" panic
func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
}

// resetEnv clears env vars used by parseConfig
func resetEnv() {
	os.Clearenv()
}

func TestParseFlags_Default(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd"}
	configPath := parseFlags()
	expected := "config.env"

	if configPath != expected {
		t.Errorf("expected %s, got %s", expected, configPath)
	}
}

func TestParseFlags_Custom(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd", "-c", "myconfig.env"}
	configPath := parseFlags()
	expected := "myconfig.env"

	if configPath != expected {
		t.Errorf("expected %s, got %s", expected, configPath)
	}
}

func TestPrintBuildInfo_Output(t *testing.T) {
	// Capture stdout
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	buildVersion = "v1.0.0"
	buildCommit = "abcd1234"
	buildDate = "2026-08-31"

	printBuildInfo()

	w.Close()
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	output := buf.String()
	os.Stdout = oldStdout

	if !contains(output, "v1.0.0") ||
		!contains(output, "abcd1234") ||
		!contains(output, "2026-08-31") {
		t.Errorf("printBuildInfo output unexpected:\n%s", output)
	}
}

// Helper function to check substring
func contains(s, substr string) bool {
	return bytes.Contains([]byte(s), []byte(substr))
}

func TestParseConfig_Defaults(t *testing.T) {
	resetEnv()

	cfg, err := parseConfig("nonexistent.env")
	if err != nil {
		t.Fatalf("parseConfig returned error: %v", err)
	}

	// Application
	if cfg.AppHost != "localhost" || cfg.AppPort != "8080" || cfg.LogLevel != "info" {
		t.Errorf("unexpected app config: %v/%v/%v", cfg.AppHost, cfg.AppPort, cfg.LogLevel)
	}

	// PostgreSQL
	if cfg.PGHost != "localhost" || cfg.PGPort != 5432 || cfg.PGUser != "user" ||
		cfg.PGPassword != "password" || cfg.PGDB != "database" ||
		cfg.PGMaxOpenConns != 16 || cfg.PGMaxIdleConns != 8 {
		t.Errorf("unexpected postgres config: %+v", cfg)
	}

	// Redis
	if cfg.RedisHost != "localhost" || cfg.RedisPort != 6379 || cfg.RedisDB != 0 ||
		cfg.RedisPassword != "" || cfg.RedisPoolSize != 10 || cfg.RedisMinIdleConns != 2 {
		t.Errorf("unexpected redis config: %+v", cfg)
	}

	// Kafka is off by default
	if cfg.KafkaAddress != "" || cfg.KafkaTopic != "user-events" {
		t.Errorf("unexpected kafka config: %+v", cfg)
	}

	// CORS
	if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "http://localhost:3000" {
		t.Errorf("unexpected CORS config: %v", cfg.CORSAllowedOrigins)
	}

	// Rate limiting
	if cfg.RateLimitMaxRequests != 10 || cfg.RateLimitWindow != time.Minute {
		t.Errorf("unexpected rate limit config: %+v", cfg)
	}

	// JWT
	if cfg.JWTSecretKey != "my_super_secret_key" || cfg.JWTExpSecond != 600 {
		t.Errorf("unexpected jwt config: %+v", cfg)
	}
}

func TestParseConfig_Overrides(t *testing.T) {
	resetEnv()

	t.Setenv("APP_PORT", "9090")
	t.Setenv("POSTGRES_PORT", "15432")
	t.Setenv("KAFKA_ADDRESS", "kafka:9092")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com")
	t.Setenv("JWT_EXP_SECOND", "120")

	cfg, err := parseConfig("nonexistent.env")
	if err != nil {
		t.Fatalf("parseConfig returned error: %v", err)
	}

	if cfg.AppPort != "9090" {
		t.Errorf("expected app port 9090, got %s", cfg.AppPort)
	}
	if cfg.PGPort != 15432 {
		t.Errorf("expected postgres port 15432, got %d", cfg.PGPort)
	}
	if cfg.KafkaAddress != "kafka:9092" {
		t.Errorf("expected kafka address kafka:9092, got %s", cfg.KafkaAddress)
	}
	if len(cfg.CORSAllowedOrigins) != 2 ||
		cfg.CORSAllowedOrigins[0] != "https://a.example.com" ||
		cfg.CORSAllowedOrigins[1] != "https://b.example.com" {
		t.Errorf("unexpected CORS config: %v", cfg.CORSAllowedOrigins)
	}
	if cfg.JWTExpSecond != 120 {
		t.Errorf("expected jwt expiration 120, got %d", cfg.JWTExpSecond)
	}
}

func TestParseConfig_InvalidNumber(t *testing.T) {
	resetEnv()

	t.Setenv("POSTGRES_PORT", "not-a-number")

	if _, err := parseConfig("nonexistent.env"); err == nil {
		t.Error("expected error for invalid POSTGRES_PORT, got nil")
	}
}

package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestFromEnvDefaults(t *testing.T) {
	cfg, err := FromEnv(func(string) string { return "" })
	if err != nil {
		t.Fatalf("FromEnv failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("FromEnv() = %+v, expected defaults", cfg)
	}
}

func TestFromEnv(t *testing.T) {
	env := map[string]string{
		EnvAddr:           "127.0.0.1:9000",
		EnvAllowedOrigins: "http://localhost:5173, https://aq.example.com",
		EnvMaxUploadMB:    "4",
		EnvLogLevel:       "debug",
	}
	cfg, err := FromEnv(func(k string) string { return env[k] })
	if err != nil {
		t.Fatalf("FromEnv failed: %v", err)
	}

	if cfg.Addr != "127.0.0.1:9000" {
		t.Errorf("Addr = %q", cfg.Addr)
	}
	if !reflect.DeepEqual(cfg.AllowedOrigins, []string{"http://localhost:5173", "https://aq.example.com"}) {
		t.Errorf("AllowedOrigins = %v", cfg.AllowedOrigins)
	}
	if cfg.MaxUploadBytes != 4<<20 {
		t.Errorf("MaxUploadBytes = %d", cfg.MaxUploadBytes)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q", cfg.LogLevel)
	}
}

func TestFromEnvInvalidUpload(t *testing.T) {
	for _, v := range []string{"abc", "0", "-1"} {
		_, err := FromEnv(func(k string) string {
			if k == EnvMaxUploadMB {
				return v
			}
			return ""
		})
		if err == nil {
			t.Errorf("Expected error for %s=%q", EnvMaxUploadMB, v)
		}
	}
}

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte(EnvAddr+"=:9191\n"), 0644); err != nil {
		t.Fatalf("Failed to write .env: %v", err)
	}
	t.Setenv(EnvAddr, "")
	os.Unsetenv(EnvAddr)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Addr != ":9191" {
		t.Errorf("Addr = %q, expected :9191", cfg.Addr)
	}
}

package config

import "testing"

func TestApplyDefaults(t *testing.T) {
	var c AppConfig
	applyDefaults(&c)

	if c.AppPort != "8080" {
		t.Errorf("AppPort = %q, want 8080", c.AppPort)
	}
	if c.DBPort != "5432" {
		t.Errorf("DBPort = %q, want 5432", c.DBPort)
	}
	if c.GinMode != "release" {
		t.Errorf("GinMode = %q, want release", c.GinMode)
	}
	if c.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", c.LogLevel)
	}
}

func TestApplyDefaultsKeepsExplicitValues(t *testing.T) {
	c := AppConfig{AppPort: "9000", DBName: "blogly_test"}
	applyDefaults(&c)

	if c.AppPort != "9000" {
		t.Errorf("AppPort = %q, want 9000", c.AppPort)
	}
	if c.DBName != "blogly_test" {
		t.Errorf("DBName = %q, want blogly_test", c.DBName)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9999")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")

	var c AppConfig
	applyDefaults(&c)
	applyEnvOverrides(&c)

	if c.AppPort != "9999" {
		t.Errorf("AppPort = %q, want 9999", c.AppPort)
	}
	if c.DBHost != "db.internal" {
		t.Errorf("DBHost = %q, want db.internal", c.DBHost)
	}
	if len(c.AllowedOrigins) != 2 || c.AllowedOrigins[0] != "https://a.example" {
		t.Errorf("AllowedOrigins = %v", c.AllowedOrigins)
	}
}

func TestSplitAndTrim(t *testing.T) {
	got := splitAndTrim(" a, b ,, c")
	if len(got) != 3 || got[0] != "a" || got[1] != "b" || got[2] != "c" {
		t.Errorf("splitAndTrim = %v", got)
	}
}

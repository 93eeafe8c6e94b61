package config

import "testing"

func TestMissingRequired(t *testing.T) {
	t.Setenv("DB_DSN", "user:pw@tcp(localhost:3306)/app")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("APP_PORT", "8080")

	if missing := missingRequired(); len(missing) != 0 {
		t.Fatalf("missing = %v, want none", missing)
	}

	t.Setenv("APP_PORT", "")
	missing := missingRequired()
	if len(missing) != 1 || missing[0] != "APP_PORT" {
		t.Fatalf("missing = %v, want [APP_PORT]", missing)
	}
}

package configs

import (
	"testing"
	"time"
)

func TestGetEnvDuration(t *testing.T) {
	cases := []struct {
		raw  string
		want time.Duration
	}{
		{"", 30 * time.Second},
		{"2m", 2 * time.Minute},
		{"45", 45 * time.Second},
		{"soon", 30 * time.Second},
		{"-5s", 30 * time.Second},
	}
	for _, tc := range cases {
		t.Setenv("DRIFT_POLL_INTERVAL", tc.raw)
		if got := GetEnvDuration("DRIFT_POLL_INTERVAL", 30*time.Second); got != tc.want {
			t.Fatalf("%q: want %s, got %s", tc.raw, tc.want, got)
		}
	}
}

func TestGetEnvBoolAndInt(t *testing.T) {
	t.Setenv("RUN_SEEDS", "true")
	if !GetEnvBool("RUN_SEEDS", false) {
		t.Fatal("want true")
	}
	t.Setenv("RUN_SEEDS", "yes please")
	if GetEnvBool("RUN_SEEDS", false) {
		t.Fatal("garbage should fall back to default")
	}
	t.Setenv("DB_MAX_OPEN", "12")
	if GetEnvInt("DB_MAX_OPEN", 20) != 12 {
		t.Fatal("want 12")
	}
}

func TestGetEnvList(t *testing.T) {
	t.Setenv("CORS_ALLOW_ORIGINS", " https://a.test, ,https://b.test ")
	got := GetEnvList("CORS_ALLOW_ORIGINS", nil)
	if len(got) != 2 || got[0] != "https://a.test" || got[1] != "https://b.test" {
		t.Fatalf("got %v", got)
	}
}

func TestGetEnvDefault(t *testing.T) {
	if v := GetEnv("SURELY_UNSET_KEY_FOR_TEST", "x"); v != "x" {
		t.Fatalf("got %q", v)
	}
}

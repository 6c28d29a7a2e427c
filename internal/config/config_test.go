package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.ServerAddress == "" {
		t.Error("server address default missing")
	}
	if cfg.StoreBackend != BackendFile {
		t.Errorf("default backend = %q, want %q", cfg.StoreBackend, BackendFile)
	}
	if cfg.QuestionFile == "" || cfg.ProgressFile == "" {
		t.Error("file path defaults missing")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("STORE_BACKEND", BackendSQLite)
	t.Setenv("SERVER_ADDRESS", ":9999")
	t.Setenv("CORS_ORIGINS", "http://a.example, http://b.example ,")

	cfg := Load()
	if cfg.StoreBackend != BackendSQLite {
		t.Errorf("backend = %q, want sqlite", cfg.StoreBackend)
	}
	if cfg.ServerAddress != ":9999" {
		t.Errorf("address = %q, want :9999", cfg.ServerAddress)
	}
	want := []string{"http://a.example", "http://b.example"}
	if len(cfg.CORSOrigins) != len(want) {
		t.Fatalf("origins = %v, want %v", cfg.CORSOrigins, want)
	}
	for i := range want {
		if cfg.CORSOrigins[i] != want[i] {
			t.Errorf("origin %d = %q, want %q", i, cfg.CORSOrigins[i], want[i])
		}
	}
}

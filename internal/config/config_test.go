package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("SERVER_PORT", "")
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("DEFAULT_CONSULTATION_FEE", "")

	cfg := Load()

	if cfg.ServerPort != "3000" {
		t.Errorf("ServerPort = %q, want 3000", cfg.ServerPort)
	}
	if cfg.Addr() != ":3000" {
		t.Errorf("Addr() = %q, want :3000", cfg.Addr())
	}
	if cfg.DefaultConsultationFee != 500 {
		t.Errorf("DefaultConsultationFee = %v, want 500", cfg.DefaultConsultationFee)
	}
	if cfg.RedisAddr != "" {
		t.Errorf("RedisAddr = %q, want empty", cfg.RedisAddr)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "8081")
	t.Setenv("DEFAULT_CONSULTATION_FEE", "750.5")
	t.Setenv("REDIS_ADDR", "localhost:6379")

	cfg := Load()

	if cfg.ServerPort != "8081" {
		t.Errorf("ServerPort = %q, want 8081", cfg.ServerPort)
	}
	if cfg.DefaultConsultationFee != 750.5 {
		t.Errorf("DefaultConsultationFee = %v, want 750.5", cfg.DefaultConsultationFee)
	}
	if cfg.RedisAddr != "localhost:6379" {
		t.Errorf("RedisAddr = %q, want localhost:6379", cfg.RedisAddr)
	}
}

func TestLoadBadFloatFallsBack(t *testing.T) {
	t.Setenv("DEFAULT_CONSULTATION_FEE", "expensive")

	if cfg := Load(); cfg.DefaultConsultationFee != 500 {
		t.Errorf("DefaultConsultationFee = %v, want default 500", cfg.DefaultConsultationFee)
	}
}

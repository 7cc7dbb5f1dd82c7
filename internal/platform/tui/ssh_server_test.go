package tui

import (
	"testing"

	"github.com/vovakirdan/pixel-snake/internal/config"
)

func TestSSHRuntimeConfigSeed(t *testing.T) {
	services := Services{Config: config.DefaultSnakeConfig()}

	fixed := &SSHServer{config: SSHServerConfig{Seed: 42}, services: services}
	cfg := fixed.runtimeConfig(100, 40)
	if cfg.Seed != 42 {
		t.Errorf("Seed = %d, expected 42", cfg.Seed)
	}
	if cfg.ScreenW != 100 || cfg.ScreenH != 40 {
		t.Errorf("screen = %dx%d, expected 100x40", cfg.ScreenW, cfg.ScreenH)
	}
	if cfg.TickRate != services.Config.TickRate {
		t.Errorf("TickRate = %d, expected %d", cfg.TickRate, services.Config.TickRate)
	}

	clock := &SSHServer{services: services}
	if got := clock.runtimeConfig(80, 24).Seed; got == 0 {
		t.Error("zero seed should fall back to the clock")
	}
}

func TestSSHRuntimeConfigTickRateOverride(t *testing.T) {
	srv := &SSHServer{
		config:   SSHServerConfig{TickRate: 60},
		services: Services{Config: config.DefaultSnakeConfig()},
	}
	if got := srv.runtimeConfig(80, 24).TickRate; got != 60 {
		t.Errorf("TickRate = %d, expected 60", got)
	}
}

package config

import "testing"

func TestLoadDefaultsToFalse(t *testing.T) {
	t.Setenv("TACC_TRACE", "")
	t.Setenv("TACC_NO_COLOR", "")
	t.Setenv("NO_COLOR", "")
	cfg := Load()
	if cfg.Trace {
		t.Fatalf("expected Trace to default false")
	}
	if cfg.NoColor {
		t.Fatalf("expected NoColor to default false")
	}
}

func TestLoadHonorsTraceVariable(t *testing.T) {
	t.Setenv("TACC_TRACE", "true")
	if !Load().Trace {
		t.Fatalf("expected TACC_TRACE=true to enable tracing")
	}
}

func TestLoadHonorsNoColorConvention(t *testing.T) {
	t.Setenv("TACC_NO_COLOR", "")
	t.Setenv("NO_COLOR", "1")
	if !Load().NoColor {
		t.Fatalf("expected NO_COLOR to disable color even without TACC_NO_COLOR")
	}
}

package schema

import "testing"

type scoreBarConfig struct {
	Title    string `arg:"title"`
	MaxValue int    `arg:"max_value"`
}

func TestDecodeArgs(t *testing.T) {
	var cfg scoreBarConfig
	err := DecodeArgs(map[string]any{
		"title":     "Progress",
		"max_value": 10,
	}, &cfg)
	if err != nil {
		t.Fatalf("DecodeArgs() error = %v", err)
	}
	if cfg.Title != "Progress" || cfg.MaxValue != 10 {
		t.Errorf("DecodeArgs() = %+v, want {Progress 10}", cfg)
	}
}

func TestDecodeArgs_RejectsUnknownKeys(t *testing.T) {
	var cfg scoreBarConfig
	err := DecodeArgs(map[string]any{
		"title":     "Progress",
		"max_value": 10,
		"typo":      true,
	}, &cfg)
	if err == nil {
		t.Error("DecodeArgs() should reject unknown keys")
	}
}

package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	for _, format := range []string{"json", "console"} {
		t.Run(format, func(t *testing.T) {
			l, err := New("warn", format, "osmaster-api")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if l.Core().Enabled(zapcore.InfoLevel) {
				t.Fatalf("info must be disabled at warn level")
			}
			if !l.Core().Enabled(zapcore.ErrorLevel) {
				t.Fatalf("error must be enabled at warn level")
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"info":    zapcore.InfoLevel,
		"warn":    zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"verbose": zapcore.InfoLevel,
		"":        zapcore.InfoLevel,
	}
	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

package app

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/heartmarshall/phrasegen-backend/internal/config"
)

func TestBuildInfo_LogValue(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	newLogger(&buf, config.LogConfig{Level: "info", Format: "json"}).
		Info("starting phrasegen", slog.Any("build", buildInfo{}))

	var m struct {
		Build map[string]string `json:"build"`
	}
	if err := json.Unmarshal(buf.Bytes(), &m); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	want := map[string]string{"version": Version, "commit": Commit, "built": BuildTime}
	for k, v := range want {
		if m.Build[k] != v {
			t.Errorf("build.%s = %q, want %q", k, m.Build[k], v)
		}
	}
}

package app

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"

	"github.com/heartmarshall/phrasegen-backend/internal/adapter/llm/mock"
	"github.com/heartmarshall/phrasegen-backend/internal/config"
	"github.com/heartmarshall/phrasegen-backend/internal/domain"
	"github.com/heartmarshall/phrasegen-backend/internal/service/generation"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

const mockConfig = `
log:
  level: error
  format: json
llm:
  provider: mock
generation:
  batch_size: 3
  concurrency: 2
  stagger_delay: 0s
  max_retries: 1
`

func TestRun_MockProvider(t *testing.T) {
	var out bytes.Buffer
	err := Run(context.Background(), RunOptions{
		ConfigPath: writeConfig(t, mockConfig),
		Request:    generation.Request{Level: domain.LevelBeginner, Count: 6},
		Out:        &out,
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	var res domain.GenerationResult
	if err := json.Unmarshal(out.Bytes(), &res); err != nil {
		t.Fatalf("decode output: %v\n%s", err, out.String())
	}
	if len(res.Phrases) != 6 {
		t.Errorf("got %d phrases, want 6", len(res.Phrases))
	}
	if res.LLMBrand != mock.Brand || res.LLMModel != mock.Model {
		t.Errorf("brand/model = %s/%s", res.LLMBrand, res.LLMModel)
	}
	if res.Level != string(domain.LevelBeginner) {
		t.Errorf("level = %q", res.Level)
	}
	if res.ToneLevel != 5 {
		t.Errorf("tone level = %d, want configured default 5", res.ToneLevel)
	}
}

func TestRun_InvalidRequest(t *testing.T) {
	err := Run(context.Background(), RunOptions{
		ConfigPath: writeConfig(t, mockConfig),
		Request:    generation.Request{Count: 0},
		Out:        &bytes.Buffer{},
	})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestRun_MissingConfigFile(t *testing.T) {
	err := Run(context.Background(), RunOptions{
		ConfigPath: filepath.Join(t.TempDir(), "absent.yaml"),
		Request:    generation.Request{Count: 1},
	})
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestNewProvider(t *testing.T) {
	t.Parallel()

	tests := []struct {
		provider  string
		wantBrand string
		wantErr   bool
	}{
		{provider: config.ProviderAnthropic, wantBrand: "anthropic"},
		{provider: config.ProviderOpenAI, wantBrand: "openai"},
		{provider: config.ProviderMock, wantBrand: mock.Brand},
		{provider: "gemini", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.provider, func(t *testing.T) {
			t.Parallel()
			gen, info, err := newProvider(config.LLMConfig{
				Provider: tt.provider, APIKey: "k", Model: "m", Temperature: 0.3,
			})
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("newProvider: %v", err)
			}
			if gen == nil {
				t.Fatal("nil generate func")
			}
			if info.Brand != tt.wantBrand {
				t.Errorf("brand = %q, want %q", info.Brand, tt.wantBrand)
			}
			if info.Temperature != 0.3 {
				t.Errorf("temperature = %v", info.Temperature)
			}
		})
	}
}

func TestShow_RequiresDatabase(t *testing.T) {
	t.Setenv("DATABASE_DSN", "")
	err := Show(context.Background(), writeConfig(t, mockConfig), uuid.New(), &bytes.Buffer{})
	if err == nil {
		t.Fatal("expected error without database")
	}
}

package main

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestMapExitCodeCoversEngineContract(t *testing.T) {
	cases := []struct {
		code     int
		expected error
	}{
		{1, errEngineInput},
		{2, errEngineBadData},
		{3, errEngineNotFound},
	}

	for _, c := range cases {
		if err := mapExitCode(c.code); !errors.Is(err, c.expected) {
			t.Errorf("exit code %d: expected %v, got %v", c.code, c.expected, err)
		}
	}

	if err := mapExitCode(42); err == nil {
		t.Errorf("unexpected exit code should still produce an error")
	}
}

func TestParseEngineOutput(t *testing.T) {
	result, err := parseEngineOutput("SPY,0.0025,98.4500,-2.5000,-2.4000\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Type != "SPY" {
		t.Errorf("expected type SPY, got %s", result.Type)
	}
	if result.Mean != "0.0025" {
		t.Errorf("expected mean 0.0025, got %s", result.Mean)
	}
	if result.Stability != "98.4500%" {
		t.Errorf("expected percent suffix on stability, got %s", result.Stability)
	}
	if result.Min != "-2.5000%" || result.Max != "-2.4000%" {
		t.Errorf("expected percent suffixes on VaR range, got %s / %s", result.Min, result.Max)
	}
}

func TestParseEngineOutputRejectsShortLines(t *testing.T) {
	if _, err := parseEngineOutput("SPY,0.0025\n"); err == nil {
		t.Errorf("expected an error for a short result line")
	}
}

func TestConfigFromEnvDefaults(t *testing.T) {
	t.Setenv("RISKDASH_ADDR", "")
	t.Setenv("RISK_ENGINE_BIN", "")
	t.Setenv("RISKDASH_UPLOAD_DIR", "")

	cfg := configFromEnv()

	if cfg.Addr != ":8080" {
		t.Errorf("expected default addr :8080, got %s", cfg.Addr)
	}
	if cfg.EngineBin != "./risk-engine" {
		t.Errorf("expected default engine path, got %s", cfg.EngineBin)
	}
	if cfg.UploadDir != "uploads" {
		t.Errorf("expected default upload dir, got %s", cfg.UploadDir)
	}
}

func TestIndexListsAssetClasses(t *testing.T) {
	s := getHttpServer(configFromEnv())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	s.Handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	body := rec.Body.String()
	for _, asset := range assetClasses {
		if !strings.Contains(body, asset) {
			t.Errorf("index page is missing asset class %s", asset)
		}
	}
}

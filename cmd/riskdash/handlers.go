package main

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"io"
	"log"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

//go:embed index.html
var indexHTML string

var indexTemplate = template.Must(template.New("index").Parse(indexHTML))

// assetClasses are the investment types the sample datasets carry; the form
// offers them as upload targets.
var assetClasses = []string{"EQUITY", "CRYPTO", "BOND", "COMMODITY", "FOREX"}

type config struct {
	Addr      string
	EngineBin string
	UploadDir string
}

func configFromEnv() config {
	cfg := config{
		Addr:      os.Getenv("RISKDASH_ADDR"),
		EngineBin: os.Getenv("RISK_ENGINE_BIN"),
		UploadDir: os.Getenv("RISKDASH_UPLOAD_DIR"),
	}

	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}
	if cfg.EngineBin == "" {
		cfg.EngineBin = "./risk-engine"
	}
	if cfg.UploadDir == "" {
		cfg.UploadDir = "uploads"
	}

	return cfg
}

type engineResult struct {
	Type      string `json:"type"`
	Mean      string `json:"mean"`
	Stability string `json:"stability"`
	Min       string `json:"min"`
	Max       string `json:"max"`
}

// Bridge errors mirror the engine's exit codes.
var (
	errEngineInput    = errors.New("CSV file not found or empty")
	errEngineBadData  = errors.New("math error: not enough data points to calculate risk")
	errEngineNotFound = errors.New("investment type not found in dataset")
)

func getHttpServer(cfg config) *http.Server {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/", func(w http.ResponseWriter, req *http.Request) { renderIndex(w, "") })
	r.Post("/result", func(w http.ResponseWriter, req *http.Request) { handleResult(w, req, cfg) })

	return &http.Server{
		Addr:           cfg.Addr,
		Handler:        r,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}
}

func renderIndex(w http.ResponseWriter, errorMessage string) {
	data := struct {
		Assets []string
		Error  string
	}{assetClasses, errorMessage}

	if err := indexTemplate.Execute(w, data); err != nil {
		log.Printf("Error rendering index: %v", err)
	}
}

func handleResult(w http.ResponseWriter, req *http.Request, cfg config) {
	investmentType := req.FormValue("investment_type")

	file, _, err := req.FormFile("file_input_name")
	if err != nil {
		respondError(w, fmt.Errorf("missing CSV upload: %w", err))
		return
	}
	defer file.Close()

	path, err := saveUpload(cfg.UploadDir, file)
	if err != nil {
		respondError(w, err)
		return
	}

	result, err := runEngine(req.Context(), cfg.EngineBin, path, investmentType)
	if errors.Is(err, errEngineNotFound) {
		renderIndex(w, "That asset doesn't exist!")
		return
	}
	if err != nil {
		log.Printf("Bridge error: %v", err)
		respondError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(result); err != nil {
		log.Printf("Error writing result: %v", err)
	}
}

func respondError(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}

// saveUpload persists the uploaded CSV where the engine can read it by path.
func saveUpload(dir string, src io.Reader) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("error creating upload dir: %w", err)
	}

	path := filepath.Join(dir, "returns.csv")
	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("error buffering upload: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("error writing upload: %w", err)
	}

	return path, nil
}

// runEngine invokes the engine binary as a subprocess and maps its exit codes
// back into the bridge error taxonomy.
func runEngine(ctx context.Context, bin, dataPath, investmentType string) (*engineResult, error) {
	out, err := exec.CommandContext(ctx, bin, dataPath, investmentType).Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, mapExitCode(exitErr.ExitCode())
		}
		return nil, fmt.Errorf("error invoking engine: %w", err)
	}

	return parseEngineOutput(string(out))
}

func mapExitCode(code int) error {
	switch code {
	case 1:
		return errEngineInput
	case 2:
		return errEngineBadData
	case 3:
		return errEngineNotFound
	default:
		return fmt.Errorf("engine exited with unexpected code %d", code)
	}
}

// parseEngineOutput splits the engine's five-field result line and attaches
// the percent suffixes the page renders.
func parseEngineOutput(out string) (*engineResult, error) {
	fields := strings.Split(strings.TrimSpace(out), ",")
	if len(fields) != 5 {
		return nil, fmt.Errorf("engine emitted %d fields, expected 5", len(fields))
	}

	return &engineResult{
		Type:      fields[0],
		Mean:      fields[1],
		Stability: fields[2] + "%",
		Min:       fields[3] + "%",
		Max:       fields[4] + "%",
	}, nil
}

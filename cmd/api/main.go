package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"renocost/pkg/api/estimate"
	"renocost/pkg/api/ingestapi"
	"renocost/pkg/api/projectapi"
	"renocost/pkg/api/quote"
	"renocost/pkg/core/catalog"
	"renocost/pkg/core/ingest"
	"renocost/pkg/core/llm"
	"renocost/pkg/core/project"
	"renocost/pkg/core/prompt"
	"renocost/pkg/core/store"
)

func main() {
	// Load environment variables
	godotenv.Load()

	fmt.Printf("[PROMPT] %d prompts registered\n", prompt.Get().Count())

	// Price catalog: built-in table plus an optional YAML override file
	cat := catalog.NewStatic()
	if path := os.Getenv("CATALOG_FILE"); path != "" {
		if err := cat.LoadFile(path); err != nil {
			fmt.Printf("[WARNING] Failed to load catalog overrides: %v\n", err)
			fmt.Println("  Falling back to built-in prices")
		} else {
			fmt.Printf("[CATALOG] Loaded overrides from %s\n", path)
		}
	}

	// AI provider
	provider, err := llm.New(os.Getenv("LLM_PROVIDER"))
	if err != nil {
		fmt.Printf("[ERROR] %v\n", err)
		os.Exit(1)
	}
	analyzer := ingest.NewAnalyzer(provider, os.Getenv("LOCALE"))

	// Optional estimate persistence
	var repo *store.EstimateRepo
	if os.Getenv("DATABASE_URL") != "" {
		if err := store.InitDB(context.Background()); err != nil {
			fmt.Printf("[WARNING] Database init failed: %v\n", err)
		} else {
			repo = store.NewEstimateRepo(store.GetPool())
			fmt.Println("[STORE] Estimate persistence enabled")
		}
	}

	proj := project.New()

	// Project state endpoints
	projectHandler := projectapi.NewHandler(proj)
	http.HandleFunc("/api/project", projectHandler.HandleState)
	http.HandleFunc("/api/project/rooms", projectHandler.HandleRooms)
	http.HandleFunc("/api/project/work", projectHandler.HandleWork)
	http.HandleFunc("/api/project/wizard", projectHandler.HandleWizard)

	// Estimate endpoints
	estimateHandler := estimate.NewHandler(proj, cat, repo)
	http.HandleFunc("/api/estimate", estimateHandler.HandleEstimate)
	http.HandleFunc("/api/estimates", estimateHandler.HandleSaved)
	http.HandleFunc("/api/estimates/", estimateHandler.HandleSaved)

	// Ingestion endpoints
	ingestHandler := ingestapi.NewHandler(proj, analyzer)
	http.HandleFunc("/api/ingest/upload", ingestHandler.HandleUpload)
	http.HandleFunc("/api/ingest/text", ingestHandler.HandleText)

	// Quick quote endpoint
	quoteHandler := quote.NewHandler(analyzer)
	http.HandleFunc("/api/quote", quoteHandler.HandleQuote)

	addr := os.Getenv("LISTEN_ADDR")
	if addr == "" {
		addr = ":8090"
	}
	fmt.Printf("[SERVER] Listening on %s\n", addr)
	if err := http.ListenAndServe(addr, nil); err != nil {
		fmt.Printf("[ERROR] Server failed: %v\n", err)
		os.Exit(1)
	}
}

package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/flowlens/flowlens/pkg/config"
	"github.com/flowlens/flowlens/pkg/engine"
	"github.com/flowlens/flowlens/pkg/logging"
	"github.com/flowlens/flowlens/pkg/metrics"
	"github.com/flowlens/flowlens/pkg/workflow"
)

func main() {
	var (
		inputPath  = flag.String("input", "", "Path to a JSON file with employee survey responses")
		configPath = flag.String("config", "", "Optional path to a YAML config file")
		companyID  = flag.String("company", "default", "Company identifier for the graph")
		topN       = flag.Int("top", 0, "If set, print only the top N bottlenecks by severity")
	)
	flag.Parse()

	if *inputPath == "" {
		log.Fatal("missing required -input flag")
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = loaded
	}

	data, err := os.ReadFile(*inputPath)
	if err != nil {
		log.Fatalf("Failed to read input: %v", err)
	}

	var responses []workflow.EmployeeResponse
	if err := json.Unmarshal(data, &responses); err != nil {
		log.Fatalf("Failed to parse responses: %v", err)
	}

	logger := logging.NewJSONLogger(os.Stderr, logging.ParseLevel(cfg.LogLevel))
	eng := engine.New(cfg, logger, metrics.NewRegistry())

	if _, err := eng.IngestResponses(*companyID, responses); err != nil {
		log.Fatalf("Ingestion failed: %v", err)
	}

	result, err := eng.Analyze(*companyID)
	if err != nil {
		log.Fatalf("Analysis failed: %v", err)
	}

	var out any = result
	if *topN > 0 {
		out = result.TopBottlenecks(*topN)
	}

	encoded, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		log.Fatalf("Failed to encode result: %v", err)
	}
	fmt.Println(string(encoded))
}

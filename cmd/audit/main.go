package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"time"

	"github.com/fatih/color"
	"github.com/flipword/api/internal/config"
	"github.com/flipword/api/internal/model"
	"github.com/flipword/api/internal/seed"
	"github.com/flipword/api/internal/store"
	"github.com/flipword/api/internal/topics"
	"github.com/flipword/api/internal/validator"
	"github.com/joho/godotenv"
)

type Report struct {
	Source    string            `json:"source"`
	AuditedAt time.Time         `json:"auditedAt"`
	Topics    int               `json:"topics"`
	Words     int               `json:"words"`
	Issues    []validator.Issue `json:"issues"`
}

func main() {
	configFile := flag.String("config", "", "Path to a YAML config file")
	jsonOut := flag.Bool("json", false, "Print the report as JSON")
	outputFile := flag.String("output", "", "Also write the JSON report to this file")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	doc, source, err := loadDocument(cfg)
	if err != nil {
		log.Fatalf("Failed to load topics document: %v", err)
	}

	report := Report{
		Source:    source,
		AuditedAt: time.Now().UTC(),
		Topics:    len(doc.Topics),
		Issues:    validator.Audit(doc),
	}
	for _, t := range doc.Topics {
		report.Words += len(t.Words)
	}

	if *outputFile != "" {
		jsonData, _ := json.MarshalIndent(report, "", "  ")
		if err := os.WriteFile(*outputFile, jsonData, 0644); err != nil {
			log.Printf("Failed to write output file: %v", err)
		}
	}

	if *jsonOut {
		err = writeJSON(os.Stdout, report)
	} else {
		err = writeText(os.Stdout, report)
	}
	if err != nil {
		log.Fatalf("Failed to write report: %v", err)
	}

	if len(report.Issues) > 0 {
		os.Exit(1)
	}
}

// loadDocument reads the stored document, or the built-in seed when no
// store is configured. A malformed stored document is an error.
func loadDocument(cfg *config.Config) (model.TopicsDocument, string, error) {
	if cfg.Store.URL == "" {
		return seed.Topics(), "seed", nil
	}
	key := cfg.Store.Key
	if key == "" {
		key = topics.DefaultKey
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	s, err := store.Dial(ctx, cfg.Store.URL)
	if err != nil {
		return model.TopicsDocument{}, "", err
	}
	defer s.Close()

	raw, err := s.Get(ctx, key)
	if errors.Is(err, store.ErrNotFound) {
		return model.TopicsDocument{}, "", fmt.Errorf("no topics document under %q, run seed first", key)
	}
	if err != nil {
		return model.TopicsDocument{}, "", err
	}

	var doc model.TopicsDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return model.TopicsDocument{}, "", fmt.Errorf("document under %q is not valid JSON: %w", key, err)
	}
	return doc, "store:" + key, nil
}

func writeJSON(w io.Writer, report Report) error {
	if report.Issues == nil {
		report.Issues = []validator.Issue{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

func writeText(w io.Writer, report Report) error {
	fmt.Fprintf(w, "=== Audit of %s ===\n", report.Source)
	fmt.Fprintf(w, "Topics: %d, Words: %d\n", report.Topics, report.Words)

	if len(report.Issues) == 0 {
		_, err := color.New(color.FgGreen).Fprintln(w, "No issues found")
		return err
	}

	byTopic := make(map[string][]validator.Issue)
	for _, issue := range report.Issues {
		byTopic[issue.Topic] = append(byTopic[issue.Topic], issue)
	}
	names := make([]string, 0, len(byTopic))
	for name := range byTopic {
		names = append(names, name)
	}
	sort.Strings(names)

	red := color.New(color.FgRed)
	for _, name := range names {
		fmt.Fprintf(w, "\n[%s]\n", name)
		for _, issue := range byTopic[name] {
			red.Fprintf(w, "  %s: %s\n", issue.Path, issue.Problem)
		}
	}
	_, err := red.Fprintf(w, "\nIssues found: %d\n", len(report.Issues))
	return err
}

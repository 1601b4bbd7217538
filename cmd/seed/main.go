package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"log"
	"time"

	"github.com/flipword/api/internal/config"
	"github.com/flipword/api/internal/seed"
	"github.com/flipword/api/internal/store"
	"github.com/flipword/api/internal/topics"
	"github.com/joho/godotenv"
)

func main() {
	configFile := flag.String("config", "", "Path to a YAML config file")
	force := flag.Bool("force", false, "Overwrite an existing topics document")
	dryRun := flag.Bool("dry-run", false, "Show what would be written without writing")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.Store.URL == "" {
		log.Fatalf("STORE_URL (or REDIS_URL) is required to seed")
	}
	key := cfg.Store.Key
	if key == "" {
		key = topics.DefaultKey
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	s, err := store.Dial(ctx, cfg.Store.URL)
	if err != nil {
		log.Fatalf("Failed to connect to store: %v", err)
	}
	defer s.Close()

	existing, err := s.Get(ctx, key)
	switch {
	case errors.Is(err, store.ErrNotFound), err == nil && len(existing) == 0:
		log.Printf("No topics document under %q", key)
	case err != nil:
		log.Fatalf("Failed to read %q: %v", key, err)
	case !*force:
		log.Printf("Topics document already present under %q (%d bytes), use -force to overwrite", key, len(existing))
		return
	default:
		log.Printf("Overwriting existing topics document under %q", key)
	}

	doc := seed.Topics()
	words := 0
	for _, t := range doc.Topics {
		words += len(t.Words)
	}

	if *dryRun {
		log.Printf("[dry-run] Would write %d topics (%d words) under %q", len(doc.Topics), words, key)
		return
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		log.Fatalf("Failed to encode seed document: %v", err)
	}
	if err := s.Set(ctx, key, raw); err != nil {
		log.Fatalf("Failed to write seed document: %v", err)
	}

	log.Printf("Seeding complete. Wrote %d topics (%d words) under %q", len(doc.Topics), words, key)
}

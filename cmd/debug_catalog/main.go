package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"i18next-typesafe/core/catalog"
	"i18next-typesafe/core/config"
	"i18next-typesafe/core/locale"
	"i18next-typesafe/core/reconcile"

	"github.com/spf13/afero"
)

// Dumps what the configured backend returns for every language.
func main() {
	cfg, err := config.LoadConfig(".", "", nil)
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	source, err := locale.Open(ctx, cfg, afero.NewOsFs())
	if err != nil {
		log.Fatal(err)
	}

	langs := reconcile.Dedupe(append([]string{cfg.CanonicalLanguage()}, cfg.Languages...))

	fmt.Println("=== Documents ===")
	var sources []reconcile.KeySource
	var blocks []catalog.Block
	for _, lang := range langs {
		doc, err := source.Load(ctx, lang)
		if err != nil {
			fmt.Printf("%s (%s): %v\n", lang, source.Location(lang), err)
			continue
		}
		keys := catalog.Flatten(doc)
		fmt.Printf("%s (%s): %d keys\n", lang, source.Location(lang), keys.Len())
		sources = append(sources, reconcile.KeySource{Language: lang, Keys: keys})
		if lang == cfg.CanonicalLanguage() {
			blocks = catalog.ExtractBlocks(doc)
		}
	}

	fmt.Println("\n=== Blocks ===")
	for _, b := range blocks {
		fmt.Printf("%s (%d keys)\n", b.Prefix, b.KeyCount)
	}

	fmt.Println("\n=== Sync ===")
	result, err := reconcile.CompareSync(sources)
	if err != nil {
		fmt.Println(err)
	} else {
		for _, p := range result.Pairs {
			fmt.Printf("%s vs %s: %d only in %s, %d only in %s\n", p.A, p.B, len(p.OnlyInA), p.A, len(p.OnlyInB), p.B)
		}
	}

	output := map[string]interface{}{
		"backend":   cfg.Backend,
		"languages": langs,
		"blocks":    blocks,
		"sync":      result,
	}
	if err := writeReport("debug_catalog.json", output); err != nil {
		log.Fatal(err)
	}

	fmt.Println("\nDebug complete. Check debug_catalog.json for details.")
}

// writeReport stores v as indented JSON at path.
func writeReport(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// Package main provides the CLI entrypoint for skuforge.
//
// skuforge is an offline companion to the console's product-form API:
//   - Reads an editable product form (JSON) and emits the backend's
//     create/update payload, with SKU combinations generated and
//     collision-checked
//   - With -seed, reads a persisted product payload and emits the
//     editable form that would open in the console
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/gosimple/slug"
	"github.com/joho/godotenv"

	"github.com/shipora/console-golang/internal/models"
	"github.com/shipora/console-golang/internal/variant"
)

func main() {
	log.SetFlags(0)

	// Running without a .env is normal for the CLI.
	_ = godotenv.Load()

	in := flag.String("in", "", "input JSON file")
	out := flag.String("out", "", "output file (default: derived from the product name)")
	seed := flag.Bool("seed", false, "treat the input as a persisted payload and emit the editable form")
	flag.Parse()

	if *in == "" {
		flag.Usage()
		os.Exit(2)
	}

	raw, err := os.ReadFile(*in)
	if err != nil {
		log.Fatalf("Failed to read %s: %v", *in, err)
	}

	var result any
	var name, suffix string

	if *seed {
		var payload models.ProductPayload
		if err := json.Unmarshal(raw, &payload); err != nil {
			log.Fatalf("Input is not a valid product payload: %v", err)
		}
		form, err := variant.SeedForm(&payload)
		if err != nil {
			log.Fatalf("Cannot seed form: %v", err)
		}
		result, name, suffix = form, payload.Name, ".form.json"
	} else {
		var form models.ProductForm
		if err := json.Unmarshal(raw, &form); err != nil {
			log.Fatalf("Input is not a valid product form: %v", err)
		}
		payload, err := variant.BuildPayload(&form)
		if err != nil {
			log.Fatalf("Cannot build payload: %v", err)
		}
		result, name, suffix = payload, form.Name, ".payload.json"
	}

	target := *out
	if target == "" {
		target = filepath.Join(os.Getenv("OUTPUT_DIR"), slug.Make(name)+suffix)
	}

	encoded, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Fatalf("Failed to encode result: %v", err)
	}
	if err := os.WriteFile(target, encoded, 0644); err != nil {
		log.Fatalf("Failed to write %s: %v", target, err)
	}

	fmt.Printf("Wrote %s\n", target)
}

// Command upload drives the extraction endpoint end to end: it validates
// and parses a local file, posts it, and prints the structured result.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"mime"
	"os"
	"path/filepath"

	"tradeos/internal/csvexport"
	"tradeos/internal/domain"
	"tradeos/internal/uploader"
)

func main() {
	endpoint := flag.String("endpoint", "http://localhost:8080/api/v1/extract", "extraction endpoint URL")
	mode := flag.String("mode", "product", "extraction mode: product or client")
	csvOut := flag.String("csv", "", "also write product results to a CSV file ('auto' derives the name from the input)")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: upload [flags] <file>")
		flag.PrintDefaults()
		os.Exit(2)
	}
	path := flag.Arg(0)

	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("reading %s: %v", path, err)
	}

	driver := uploader.New(*endpoint, func(p uploader.Progress) {
		log.Printf("%3d%% %s", p.Percent, p.Status)
	})

	result, err := driver.Upload(
		context.Background(),
		filepath.Base(path),
		data,
		mime.TypeByExtension(filepath.Ext(path)),
		domain.ExtractMode(*mode),
	)
	if err != nil {
		log.Fatalf("upload failed: %v", err)
	}

	var pretty json.RawMessage = result
	out, err := json.MarshalIndent(pretty, "", "  ")
	if err != nil {
		log.Fatalf("formatting result: %v", err)
	}
	fmt.Println(string(out))

	if *csvOut != "" && domain.ExtractMode(*mode) == domain.ModeProduct {
		if err := writeCSV(*csvOut, filepath.Base(path), result); err != nil {
			log.Fatalf("writing csv: %v", err)
		}
	}
}

// writeCSV exports the product rows of a result body to disk, with a BOM so
// Excel opens the Korean headers correctly.
func writeCSV(dest, sourceName string, result []byte) error {
	var analysis domain.AnalysisResult
	if err := json.Unmarshal(result, &analysis); err != nil {
		return err
	}

	if dest == "auto" {
		dest = csvexport.BuildFilename(sourceName)
	}
	f, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	if _, err := f.Write(csvexport.BOM); err != nil {
		return err
	}
	w := csvexport.NewWriter(f)
	if err := w.WriteHeader(); err != nil {
		return err
	}
	if err := w.WriteResult(&analysis); err != nil {
		return err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	log.Printf("wrote %d product rows to %s", len(analysis.Products), dest)
	return nil
}

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"resumely/internal/model"
	"resumely/internal/usecase"
	infra "resumely/pkg/infrastructure"

	"go.uber.org/zap"
)

func main() {
	in := flag.String("in", "resume.json", "resume document JSON file")
	out := flag.String("out", "resume.html", "output file (.html or .pdf)")
	template := flag.String("template", "", "override the document's template id")
	flag.Parse()

	b, err := os.ReadFile(*in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read document: %v\n", err)
		os.Exit(2)
	}
	if err := model.ValidateBytes(b); err != nil {
		fmt.Fprintf(os.Stderr, "invalid document: %v\n", err)
		os.Exit(2)
	}
	var doc model.Document
	if err := json.Unmarshal(b, &doc); err != nil {
		fmt.Fprintf(os.Stderr, "unmarshal: %v\n", err)
		os.Exit(2)
	}
	if *template != "" {
		doc.Settings.Template = *template
	}

	zlog := zap.NewNop()
	var renderer usecase.PDFRenderer
	if strings.HasSuffix(*out, ".pdf") {
		renderer = infra.NewChromedpRenderer(os.Getenv("CHROME_PATH"))
	}
	exporter := usecase.NewExporter(renderer, zlog)

	var data []byte
	if strings.HasSuffix(*out, ".pdf") {
		data, err = exporter.ExportPDF(context.Background(), &doc)
		if err != nil {
			fmt.Fprintf(os.Stderr, "render pdf: %v\n", err)
			os.Exit(2)
		}
	} else {
		data = []byte(exporter.ExportHTML(&doc))
	}

	if err := os.WriteFile(*out, data, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "write out: %v\n", err)
		os.Exit(2)
	}
	fmt.Printf("wrote %s\n", *out)
}

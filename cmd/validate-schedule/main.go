package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/Gunvolt24/dance_center/pkg/validate"
)

// CLI-приложение для проверки файла расписания перед импортом.
func main() {
	inputPath := flag.String("in", "", "path to input (.json or .jsonl). If empty, reads from stdin.")
	formatStr := flag.String("format", "auto", "input format: auto|json|jsonl")
	verbose := flag.Bool("v", false, "print reasons for rejected items")
	flag.Parse()

	ctx := context.Background()
	validator := validate.NewEntityValidator()

	format := validate.InputFormat(*formatStr)
	path := *inputPath

	// stdin вариант: считаем, что jsonl
	if path == "" {
		path = "/dev/stdin"
		if format == validate.FormatAuto {
			format = validate.FormatJSONL
		}
	}

	report, err := validate.ValidateFile(ctx, validator, path, format, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "validation: %v (%s)\n", err, report.Summary())
		os.Exit(1)
	}

	if *verbose {
		for _, r := range report.Rejected {
			fmt.Fprintf(os.Stderr, "item %d: %v\n", r.Index, r.Err)
		}
	}
	if len(report.Rejected) > 0 {
		fmt.Fprintf(os.Stderr, "validation failed (%s)\n", report.Summary())
		os.Exit(2)
	}
	fmt.Fprintf(os.Stderr, "validation ok (%s)\n", report.Summary())
}

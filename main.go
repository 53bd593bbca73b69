package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/HailXD/mari-analyse/internal/api"
	"github.com/HailXD/mari-analyse/internal/config"
	"github.com/HailXD/mari-analyse/internal/extractor"
	"github.com/HailXD/mari-analyse/internal/logger"
	"github.com/HailXD/mari-analyse/internal/report"
	"github.com/HailXD/mari-analyse/internal/session"
	"github.com/HailXD/mari-analyse/internal/writer"
)

const version = "1.0.0"

func main() {
	configFlag := flag.String("config", "config.yaml", "Config file path (YAML)")
	mapFlag := flag.String("map", "", "Keyword map JSON path (overrides config)")
	outputFlag := flag.String("output", "", "Output text file path (defaults to input filename with .txt extension)")
	csvFlag := flag.Bool("csv", false, "Also write the classified record table as CSV")
	serveFlag := flag.Bool("serve", false, "Run the HTTP API instead of converting files")
	addrFlag := flag.String("addr", "", "Listen address for -serve (overrides config)")
	versionFlag := flag.Bool("version", false, "Print version and exit")
	helpFlag := flag.Bool("help", false, "Show usage help")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `Credit Card Statement Analyser

Converts credit-card statement PDFs into a two-line-per-transaction text
block, classifies each transaction by keyword category and price range,
and prints a per-category spending summary.

Usage:
  mari-analyse [flags] <input.pdf|input.txt> [input2.pdf ...]
  mari-analyse -serve [-addr :8080]

Flags:
`)
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  # Convert a statement and print the summary
  mari-analyse statement.pdf

  # Custom keyword map and output path
  mari-analyse -map map.json -output statement.txt statement.pdf

  # Re-analyse a previously converted text block
  mari-analyse statement.txt

  # Run the HTTP API
  mari-analyse -serve -addr :8080
`)
	}

	flag.Parse()

	if *versionFlag {
		fmt.Printf("mari-analyse v%s\n", version)
		os.Exit(0)
	}

	cfg := config.LoadOrEnv(*configFlag)
	if *mapFlag != "" {
		cfg.MapPath = *mapFlag
	}
	if *addrFlag != "" {
		cfg.Listen = *addrFlag
	}
	log := logger.New(cfg.LogLevel)

	if *serveFlag {
		app := fiber.New()
		handler := api.NewHandler(cfg.MapPath, log)
		handler.Register(app)
		if cfg.StaticDir != "" {
			app.Static("/", cfg.StaticDir)
		}
		log.Info().Str("addr", cfg.Listen).Msg("listening")
		if err := app.Listen(cfg.Listen); err != nil {
			log.Fatal().Err(err).Msg("server stopped")
		}
		return
	}

	if *helpFlag || flag.NArg() == 0 {
		flag.Usage()
		os.Exit(0)
	}

	sess := session.New(cfg.MapPath, log)
	for _, inputPath := range flag.Args() {
		if err := processFile(sess, inputPath, *outputFlag, *csvFlag); err != nil {
			fmt.Fprintf(os.Stderr, "Error processing %s: %v\n", inputPath, err)
			os.Exit(1)
		}
	}
}

func processFile(sess *session.Session, inputPath, outputPath string, writeCSV bool) error {
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("input file not found: %s", inputPath)
	}

	fmt.Printf("Processing: %s\n", inputPath)

	ext := strings.ToLower(filepath.Ext(inputPath))
	if ext == ".pdf" {
		if err := sess.LoadPDF(inputPath); err != nil {
			return err
		}
	} else {
		data, err := os.ReadFile(inputPath)
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
		sess.LoadText(inputPath, string(data))
	}

	fmt.Printf("  %s\n", sess.Status)
	if len(sess.Rows) == 0 {
		fmt.Println("  Warning: no transactions found. The PDF may not match the expected statement layout.")
	}

	base := strings.TrimSuffix(inputPath, filepath.Ext(inputPath))
	if ext == ".pdf" {
		outPath := outputPath
		if outPath == "" {
			outPath = base + ".txt"
		}
		tw := &writer.TextWriter{}
		if err := tw.WriteToFile(outPath, extractor.SplitLines(sess.Text)); err != nil {
			return fmt.Errorf("text write failed: %w", err)
		}
		fmt.Printf("  Output: %s\n", outPath)
	}

	summary := sess.Summarize(sess.Rows)
	if writeCSV {
		cw := &writer.CSVWriter{IncludeSummary: true}
		if err := cw.WriteToFile(base+".csv", sess.Rows, summary); err != nil {
			return fmt.Errorf("CSV write failed: %w", err)
		}
		fmt.Printf("  Output: %s\n", base+".csv")
	}

	printSummary(summary)
	fmt.Println("  Done.")
	return nil
}

func printSummary(summary report.Summary) {
	for _, ct := range summary.Categories {
		fmt.Printf("  %-20s %10.2f\n", ct.Category, ct.Total)
	}
	fmt.Printf("  %-20s %10.2f\n", "food (high)", summary.FoodHighTotal)
	fmt.Printf("  %-20s %10.2f\n", "total", summary.Total)
}

// Command docxparse prints the structure of Word documents.
//
// Usage:
//
//	docxparse report.docx                       # plain text
//	docxparse -mode markdown -o report.md report.docx
//	docxparse -mode json -o out/ a.docx b.docx  # one file per input
//	docxparse -mode images -media img report.docx
//
// Settings are read from an optional YAML file (-config), a .env file in the
// working directory and DOCXPARSE_* environment variables. Flags given on the
// command line win over all of them.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/charmbracelet/log"

	"github.com/tsawler/docxparse/internal/config"
)

func main() {
	os.Exit(realMain())
}

func realMain() int {
	configPath := flag.String("config", "", "path to a YAML config file")
	mode := flag.String("mode", config.ModeText, "output mode: "+strings.Join(config.Modes, ", "))
	output := flag.String("o", "", "output file, or directory when several documents are given")
	mediaDir := flag.String("media", "media", "directory for extracted images")
	useOCR := flag.Bool("ocr", false, "run OCR over embedded images (text and images modes)")
	lang := flag.String("lang", "eng", "OCR languages joined by '+', e.g. eng+deu")
	workers := flag.Int("workers", 0, "documents processed concurrently (default: number of CPUs)")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: docxparse [flags] file.docx...\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		return 2
	}

	cfg, err := config.Load(*configPath, config.DefaultEnvFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "docxparse:", err)
		return 1
	}

	// Only flags set explicitly override the loaded settings.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "mode":
			cfg.Mode = *mode
		case "o":
			cfg.Output = *output
		case "media":
			cfg.MediaDir = *mediaDir
		case "ocr":
			cfg.OCR = *useOCR
		case "lang":
			cfg.OCRLanguage = *lang
		case "workers":
			cfg.Workers = *workers
		case "debug":
			cfg.Debug = *debug
		}
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "docxparse:", err)
		return 2
	}

	logger := newLogger(cfg.Debug)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, logger, cfg, flag.Args(), os.Stdout); err != nil {
		logger.Error("docxparse failed", "error", err)
		return 1
	}
	return 0
}

// newLogger writes leveled, timestamped output to stderr.
func newLogger(debug bool) *log.Logger {
	level := log.InfoLevel
	if debug {
		level = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Level:           level,
		Prefix:          "docxparse",
	})
}

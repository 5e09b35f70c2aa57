package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/tsawler/docxparse"
	"github.com/tsawler/docxparse/format"
	"github.com/tsawler/docxparse/internal/config"
	"github.com/tsawler/docxparse/media"
	"github.com/tsawler/docxparse/ocr"
)

// errNotDOCX is returned for inputs that are not word processing packages.
var errNotDOCX = errors.New("not a docx file")

// run renders every file in the configured mode. Files are processed
// concurrently but their outputs are emitted in argument order.
func run(ctx context.Context, logger *log.Logger, cfg *config.Config, files []string, stdout io.Writer) error {
	results := make([]string, len(files))
	multi := len(files) > 1

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			mediaDir := cfg.MediaDir
			if multi {
				mediaDir = filepath.Join(cfg.MediaDir, stem(path))
			}

			out, err := process(logger, cfg, path, mediaDir)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			results[i] = out
			logger.Debug("processed document", "path", path, "mode", cfg.Mode)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	return emit(cfg, files, results, stdout)
}

// emit writes results to stdout, to the output file, or into the output
// directory when there are several inputs.
func emit(cfg *config.Config, files, results []string, stdout io.Writer) error {
	if cfg.Output == "" {
		for i, out := range results {
			if len(files) > 1 {
				fmt.Fprintf(stdout, "==> %s <==\n", files[i])
			}
			fmt.Fprintln(stdout, out)
		}
		return nil
	}

	if len(files) == 1 {
		return os.WriteFile(cfg.Output, []byte(results[0]), 0o644)
	}

	if err := os.MkdirAll(cfg.Output, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	for i, path := range files {
		dest := filepath.Join(cfg.Output, stem(path)+extension(cfg.Mode))
		if err := os.WriteFile(dest, []byte(results[i]), 0o644); err != nil {
			return err
		}
	}
	return nil
}

// process renders one document.
func process(logger *log.Logger, cfg *config.Config, path, mediaDir string) (string, error) {
	ok, err := format.IsDOCX(path)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", errNotDOCX
	}

	p, err := docxparse.Open(path,
		docxparse.WithLogger(logger),
		docxparse.WithMaxPartSize(cfg.MaxPartSize))
	if err != nil {
		return "", err
	}
	defer p.Close()

	switch cfg.Mode {
	case config.ModeText:
		text, err := p.PlainText(docxparse.DefaultSeparator)
		if err != nil {
			return "", err
		}
		if !cfg.OCR {
			return text, nil
		}
		results, err := recognize(logger, p, cfg.OCRLanguage)
		if err != nil {
			return "", err
		}
		return appendOCR(text, results), nil

	case config.ModeHeadings:
		headings, err := p.Headings()
		if err != nil {
			return "", err
		}
		return marshal(headings)

	case config.ModeTables:
		tables, err := p.TablesAsPlain()
		if err != nil {
			return "", err
		}
		return marshal(tables)

	case config.ModeMetadata:
		doc, err := p.Parse()
		if err != nil {
			return "", err
		}
		return marshal(doc.Metadata)

	case config.ModeMarkdown:
		return p.ToMarkdown("")

	case config.ModeJSON:
		return p.ToJSON("")

	case config.ModeHTML:
		return p.ToHTML("")

	case config.ModeImages:
		return images(logger, cfg, p, mediaDir)
	}

	return "", fmt.Errorf("unsupported mode %q", cfg.Mode)
}

// imageReport is the output of the images mode.
type imageReport struct {
	Saved []string     `json:"saved"`
	Media []media.Info `json:"media"`
	OCR   []ocr.Result `json:"ocr,omitempty"`
}

func images(logger *log.Logger, cfg *config.Config, p *docxparse.Parser, dir string) (string, error) {
	saved, err := p.ExtractImages(dir)
	if err != nil {
		return "", err
	}
	infos, err := p.Media()
	if err != nil {
		return "", err
	}

	report := imageReport{Saved: saved, Media: infos}
	if cfg.OCR {
		if report.OCR, err = recognize(logger, p, cfg.OCRLanguage); err != nil {
			return "", err
		}
	}
	return marshal(report)
}

// recognize runs OCR, degrading to no results when the binary was built
// without OCR support.
func recognize(logger *log.Logger, p *docxparse.Parser, lang string) ([]ocr.Result, error) {
	results, err := p.RecognizeImages(lang)
	if errors.Is(err, ocr.ErrOCRNotEnabled) {
		logger.Warn("OCR requested but not compiled in; rebuild with -tags ocr", "path", p.Path())
		return nil, nil
	}
	return results, err
}

func appendOCR(text string, results []ocr.Result) string {
	var sb strings.Builder
	sb.WriteString(text)
	for _, r := range results {
		body := strings.TrimSpace(r.Text)
		if body == "" {
			continue
		}
		fmt.Fprintf(&sb, "\n\n[%s]\n%s", r.Name, body)
	}
	return sb.String()
}

func marshal(v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// extension is the file extension for outputs of mode.
func extension(mode string) string {
	switch mode {
	case config.ModeMarkdown:
		return ".md"
	case config.ModeHTML:
		return ".html"
	case config.ModeJSON, config.ModeMetadata, config.ModeImages,
		config.ModeHeadings, config.ModeTables:
		return ".json"
	default:
		return ".txt"
	}
}

package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/heartmarshall/termlink/internal/domain"
)

// Format is the encoding of an import file.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks the import format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("catalog: unsupported file extension %q", filepath.Ext(path))
	}
}

// record is one (name, definition) pair as it appears in an import file.
// ID is optional; a fresh one is generated when it is empty.
type record struct {
	ID         string `json:"id,omitempty"  yaml:"id,omitempty"`
	Name       string `json:"name"          yaml:"name"`
	Definition string `json:"definition"    yaml:"definition"`
}

// ImportReport contains import statistics.
type ImportReport struct {
	TotalProcessed int      `json:"totalProcessed"`
	Imported       int      `json:"imported"`
	Skipped        int      `json:"skipped"`
	Failed         int      `json:"failed"`
	Errors         []string `json:"errors"`
}

func (r *ImportReport) fail(msg string) {
	r.Failed++
	r.Errors = append(r.Errors, msg)
}

// importer accumulates terms while records are decoded.
// Strategy SKIP_DUPLICATES: the first record with a given name wins.
type importer struct {
	log    *slog.Logger
	report *ImportReport
	terms  []domain.Term
	names  map[string]struct{}
	ids    map[uuid.UUID]struct{}
}

func newImporter(log *slog.Logger) *importer {
	return &importer{
		log:    log,
		report: &ImportReport{Errors: make([]string, 0)},
		names:  make(map[string]struct{}),
		ids:    make(map[uuid.UUID]struct{}),
	}
}

func (im *importer) add(index int, rec record) {
	im.report.TotalProcessed++

	key := domain.NormalizeText(rec.Name)
	if key == "" {
		im.report.fail(fmt.Sprintf("record %d: name is required", index))
		im.log.Warn("skip record without name", slog.Int("index", index))
		return
	}

	if _, dup := im.names[key]; dup {
		im.report.Skipped++
		im.log.Debug("skip duplicate term", slog.Int("index", index), slog.String("name", rec.Name))
		return
	}

	id := uuid.New()
	if rec.ID != "" {
		parsed, err := uuid.Parse(rec.ID)
		if err != nil || parsed == uuid.Nil {
			im.report.fail(fmt.Sprintf("record %d (%s): invalid id %q", index, rec.Name, rec.ID))
			return
		}
		if _, dup := im.ids[parsed]; dup {
			im.report.fail(fmt.Sprintf("record %d (%s): duplicate id %s", index, rec.Name, parsed))
			return
		}
		id = parsed
	}

	im.names[key] = struct{}{}
	im.ids[id] = struct{}{}
	im.terms = append(im.terms, domain.Term{
		ID:         id,
		Name:       strings.TrimSpace(rec.Name),
		Definition: rec.Definition,
	})
	im.report.Imported++
}

// Import reads (name, definition) pairs from r and builds a catalog.
//
// JSON input is an array of {"name", "definition"[, "id"]} objects and is
// decoded as a stream; YAML input is a sequence of the same mappings.
// Records that cannot be decoded or have no name are counted as failed,
// repeated names are skipped. Only a malformed document or a cancelled
// context aborts the import.
func Import(ctx context.Context, r io.Reader, format Format, log *slog.Logger) (*Catalog, *ImportReport, error) {
	im := newImporter(log)

	var err error
	switch format {
	case FormatJSON:
		err = im.readJSON(ctx, r)
	case FormatYAML:
		err = im.readYAML(ctx, r)
	default:
		err = fmt.Errorf("unsupported format %q", format)
	}
	if err != nil {
		return nil, im.report, fmt.Errorf("catalog: import: %w", err)
	}

	c, err := New(im.terms)
	if err != nil {
		return nil, im.report, fmt.Errorf("catalog: build: %w", err)
	}

	log.Info("catalog imported",
		slog.Int("processed", im.report.TotalProcessed),
		slog.Int("imported", im.report.Imported),
		slog.Int("skipped", im.report.Skipped),
		slog.Int("failed", im.report.Failed),
	)

	return c, im.report, nil
}

func (im *importer) readJSON(ctx context.Context, r io.Reader) error {
	decoder := json.NewDecoder(r)

	token, err := decoder.Token()
	if err != nil {
		return fmt.Errorf("decode json token: %w", err)
	}
	if delim, ok := token.(json.Delim); !ok || delim != '[' {
		return fmt.Errorf("expected array, got %v", token)
	}

	for i := 0; decoder.More(); i++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		var rec record
		if err := decoder.Decode(&rec); err != nil {
			var typeErr *json.UnmarshalTypeError
			if !errors.As(err, &typeErr) {
				// Syntax errors leave the decoder in an unusable state.
				return fmt.Errorf("decode record %d: %w", i, err)
			}
			im.report.TotalProcessed++
			im.report.fail(fmt.Sprintf("record %d: %v", i, err))
			continue
		}
		im.add(i, rec)
	}

	if _, err := decoder.Token(); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode closing bracket: %w", err)
	}
	return nil
}

func (im *importer) readYAML(ctx context.Context, r io.Reader) error {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("decode yaml: %w", err)
	}

	seq := &doc
	if seq.Kind == yaml.DocumentNode && len(seq.Content) > 0 {
		seq = seq.Content[0]
	}
	if seq.Kind != yaml.SequenceNode {
		return fmt.Errorf("expected sequence at line %d", seq.Line)
	}

	for i, item := range seq.Content {
		if err := ctx.Err(); err != nil {
			return err
		}

		var rec record
		if err := item.Decode(&rec); err != nil {
			im.report.TotalProcessed++
			im.report.fail(fmt.Sprintf("record %d (line %d): %v", i, item.Line, err))
			continue
		}
		im.add(i, rec)
	}
	return nil
}

// LoadFile imports the catalog stored at path, picking the format from the
// file extension.
func LoadFile(ctx context.Context, path string, log *slog.Logger) (*Catalog, *ImportReport, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("catalog: open %s: %w", path, err)
	}
	defer f.Close()

	return Import(ctx, f, format, log.With(slog.String("path", path)))
}

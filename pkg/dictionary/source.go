package dictionary

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Source loads attribute definitions from somewhere.
type Source interface {
	Load(ctx context.Context) (*Dictionary, error)
	Close() error
}

// Document is the on-disk form of a dictionary file: vendor definitions
// plus optional standard attribute definitions.
type Document struct {
	Vendors    []*VendorDefinition    `yaml:"vendors,omitempty" json:"vendors,omitempty"`
	Attributes []*AttributeDefinition `yaml:"attributes,omitempty" json:"attributes,omitempty"`
}

// FileSource loads dictionaries from local files (YAML or JSON)
type FileSource struct {
	// Path specifies a single file path to load
	Path string

	// Paths specifies multiple file paths to load and merge
	Paths []string

	// Dir specifies a directory to scan for dictionary files
	Dir string

	// Format specifies the file format ("yaml", "json", or "auto")
	Format string
}

// Load loads and merges all configured dictionary files.
func (fs *FileSource) Load(ctx context.Context) (*Dictionary, error) {
	var filePaths []string

	if fs.Path != "" {
		filePaths = append(filePaths, fs.Path)
	}

	if len(fs.Paths) > 0 {
		filePaths = append(filePaths, fs.Paths...)
	}

	if fs.Dir != "" {
		dirFiles, err := fs.scanDirectory(fs.Dir)
		if err != nil {
			return nil, fmt.Errorf("failed to scan directory %s: %w", fs.Dir, err)
		}
		filePaths = append(filePaths, dirFiles...)
	}

	if len(filePaths) == 0 {
		return nil, fmt.Errorf("no files specified to load")
	}

	merged := New()
	for _, path := range filePaths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		dict, err := fs.loadSingleFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load file %s: %w", path, err)
		}

		if err := merged.Merge(dict); err != nil {
			return nil, fmt.Errorf("failed to merge dictionary from %s: %w", path, err)
		}
	}

	return merged, nil
}

// Close closes the file source (no-op for file sources)
func (fs *FileSource) Close() error {
	return nil
}

func (fs *FileSource) scanDirectory(dir string) ([]string, error) {
	var files []string

	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if ext == ".yaml" || ext == ".yml" || ext == ".json" {
			files = append(files, path)
		}

		return nil
	})

	return files, err
}

func (fs *FileSource) loadSingleFile(path string) (*Dictionary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	format := fs.Format
	if format == "" || format == "auto" {
		format = fs.detectFormat(path, data)
	}

	var doc Document
	switch format {
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	case "json":
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}

	return doc.Build()
}

func (fs *FileSource) detectFormat(path string, data []byte) string {
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".yaml", ".yml":
		return "yaml"
	case ".json":
		return "json"
	default:
		// Sniff the content: JSON documents open with a brace or bracket.
		trimmed := strings.TrimSpace(string(data))
		if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
			return "json"
		}
		return "yaml"
	}
}

// Build turns a parsed document into a validated dictionary.
func (doc *Document) Build() (*Dictionary, error) {
	dict := New()

	if len(doc.Attributes) > 0 {
		if err := dict.AddStandardAttributes(doc.Attributes); err != nil {
			return nil, err
		}
	}

	for _, vendor := range doc.Vendors {
		if err := dict.AddVendor(vendor); err != nil {
			return nil, err
		}
	}

	return dict, nil
}

// MultiSource combines multiple dictionary sources
type MultiSource struct {
	Sources []Source
}

// Load loads dictionaries from all sources and merges them.
func (ms *MultiSource) Load(ctx context.Context) (*Dictionary, error) {
	if len(ms.Sources) == 0 {
		return nil, fmt.Errorf("no sources specified")
	}

	merged := New()
	for i, source := range ms.Sources {
		dict, err := source.Load(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load from source %d: %w", i, err)
		}

		if err := merged.Merge(dict); err != nil {
			return nil, fmt.Errorf("failed to merge dictionary from source %d: %w", i, err)
		}
	}

	return merged, nil
}

// Close closes all sources.
func (ms *MultiSource) Close() error {
	var errs []string
	for i, source := range ms.Sources {
		if err := source.Close(); err != nil {
			errs = append(errs, fmt.Sprintf("source %d: %v", i, err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("errors closing sources: %s", strings.Join(errs, "; "))
	}

	return nil
}

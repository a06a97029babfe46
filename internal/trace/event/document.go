package event

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/goodnatureofminers/simtrace-backend/internal/trace/model"
	"github.com/goodnatureofminers/simtrace-backend/pkg/safe"
	"gopkg.in/yaml.v3"
)

var (
	// ErrNonIterableInput is returned when the dynamic document is not a sequence.
	ErrNonIterableInput = errors.New("dynamic data is not a sequence")
	// ErrInvalidStaticData is returned when the static document has no usable region list.
	ErrInvalidStaticData = errors.New("invalid static data")
)

// Format is the encoding of a trace document.
type Format string

var (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks YAML for .yaml/.yml files and JSON otherwise.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// StaticRegion is one entry of the static region list.
type StaticRegion struct {
	ID   model.RegionID
	Name string
}

// StaticData is the static trace document.
type StaticData struct {
	Regions []StaticRegion
}

// ParseStatic decodes `{region: [{id, name}, ...]}`.
func ParseStatic(data []byte, format Format) (StaticData, error) {
	doc, err := decodeDocument(data, format)
	if err != nil {
		return StaticData{}, fmt.Errorf("%w: %w", ErrInvalidStaticData, err)
	}
	root, ok := doc.(map[string]any)
	if !ok {
		return StaticData{}, fmt.Errorf("%w: document is %T, want mapping", ErrInvalidStaticData, doc)
	}
	list, ok := root["region"].([]any)
	if !ok {
		return StaticData{}, fmt.Errorf("%w: region is not a sequence", ErrInvalidStaticData)
	}

	res := StaticData{Regions: make([]StaticRegion, 0, len(list))}
	for i, item := range list {
		entry, ok := item.(map[string]any)
		if !ok {
			return StaticData{}, fmt.Errorf("%w: region[%d] is %T", ErrInvalidStaticData, i, item)
		}
		id, err := safe.Int64(entry["id"])
		if err != nil {
			return StaticData{}, fmt.Errorf("%w: region[%d] id: %w", ErrInvalidStaticData, i, err)
		}
		name, _ := entry["name"].(string)
		res.Regions = append(res.Regions, StaticRegion{ID: model.RegionID(id), Name: name})
	}
	return res, nil
}

// ParseDynamic decodes the ordered record sequence. Elements that are not
// `{kind, content}` mappings are kept as empty records so that ingestion reports them.
func ParseDynamic(data []byte, format Format) ([]Record, error) {
	doc, err := decodeDocument(data, format)
	if err != nil {
		return nil, fmt.Errorf("decode dynamic data: %w", err)
	}
	list, ok := doc.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: document is %T", ErrNonIterableInput, doc)
	}

	records := make([]Record, 0, len(list))
	for _, item := range list {
		var rec Record
		if entry, ok := item.(map[string]any); ok {
			kind, _ := entry["kind"].(string)
			rec.Kind = Kind(kind)
			rec.Content, _ = entry["content"].(map[string]any)
		}
		if rec.Content == nil {
			rec.Content = map[string]any{}
		}
		records = append(records, rec)
	}
	return records, nil
}

func decodeDocument(data []byte, format Format) (any, error) {
	var doc any
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("unmarshal yaml: %w", err)
		}
	default:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("unmarshal json: %w", err)
		}
		switch err := dec.Decode(&struct{}{}); {
		case errors.Is(err, io.EOF):
		case err != nil:
			return nil, fmt.Errorf("unmarshal json: trailing data: %w", err)
		default:
			return nil, errors.New("unmarshal json: trailing data after document")
		}
	}
	return doc, nil
}

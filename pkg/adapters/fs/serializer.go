package fs

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/myeongjunhyun/daygo/pkg/core"
)

// Serializer defines how the trip collection document is encoded on disk.
type Serializer interface {
	// Encode converts the collection to bytes.
	Encode(trips []core.Trip) ([]byte, error)
	// Decode parses bytes back into a collection.
	Decode(data []byte) ([]core.Trip, error)
	// Ext returns the file extension including the dot (e.g. ".json").
	Ext() string
}

// DefaultSerializers returns the standard set of serializers, keyed by format
// name as used in configuration.
func DefaultSerializers() map[string]Serializer {
	return map[string]Serializer{
		"json": NewJSONSerializer(),
		"yaml": NewYAMLSerializer(),
	}
}

// --- JSON Serializer ---

// JSONSerializer handles the default on-disk format. The document is written
// indented so that a user inspecting their data directory can read it.
type JSONSerializer struct{}

// NewJSONSerializer creates a new JSON serializer.
func NewJSONSerializer() *JSONSerializer {
	return &JSONSerializer{}
}

func (s *JSONSerializer) Encode(trips []core.Trip) ([]byte, error) {
	if trips == nil {
		trips = []core.Trip{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(trips); err != nil {
		return nil, fmt.Errorf("encode trips: %w", err)
	}
	return buf.Bytes(), nil
}

func (s *JSONSerializer) Decode(data []byte) ([]core.Trip, error) {
	var trips []core.Trip
	if err := json.Unmarshal(data, &trips); err != nil {
		return nil, fmt.Errorf("invalid json: %w", err)
	}
	if trips == nil {
		trips = []core.Trip{}
	}
	return trips, nil
}

func (s *JSONSerializer) Ext() string { return ".json" }

// --- YAML Serializer ---

// YAMLSerializer is the alternate on-disk format.
type YAMLSerializer struct{}

// NewYAMLSerializer creates a new YAML serializer.
func NewYAMLSerializer() *YAMLSerializer {
	return &YAMLSerializer{}
}

func (s *YAMLSerializer) Encode(trips []core.Trip) ([]byte, error) {
	if trips == nil {
		trips = []core.Trip{}
	}
	data, err := yaml.Marshal(trips)
	if err != nil {
		return nil, fmt.Errorf("encode trips: %w", err)
	}
	return data, nil
}

func (s *YAMLSerializer) Decode(data []byte) ([]core.Trip, error) {
	var trips []core.Trip
	if err := yaml.Unmarshal(data, &trips); err != nil {
		return nil, fmt.Errorf("invalid yaml: %w", err)
	}
	if trips == nil {
		trips = []core.Trip{}
	}
	return trips, nil
}

func (s *YAMLSerializer) Ext() string { return ".yaml" }

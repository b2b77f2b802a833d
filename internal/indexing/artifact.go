package indexing

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// DefaultArtifactName is the well-known public name of the serialized index.
const DefaultArtifactName = "search-index.json"

// Artifact is the serialized search index: a version marker plus the flat
// document records. Every build fully replaces the previous artifact.
type Artifact struct {
	Version   int              `json:"version"`
	Documents []SearchDocument `json:"documents"`
}

// WriteArtifact serializes docs to path, overwriting any previous build.
func WriteArtifact(path string, docs []SearchDocument) error {
	data, err := json.Marshal(Artifact{Version: ArtifactVersion, Documents: docs})
	if err != nil {
		return fmt.Errorf("failed to encode search index: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write search index: %w", err)
	}
	return nil
}

// DecodeArtifact reads a serialized index and returns its documents.
func DecodeArtifact(r io.Reader) ([]SearchDocument, error) {
	var artifact Artifact
	if err := json.NewDecoder(r).Decode(&artifact); err != nil {
		return nil, fmt.Errorf("invalid search index artifact: %w", err)
	}
	if artifact.Version != ArtifactVersion {
		return nil, fmt.Errorf("unsupported search index version %d (want %d)", artifact.Version, ArtifactVersion)
	}
	return artifact.Documents, nil
}

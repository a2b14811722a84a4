package item

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/osse101/RavenCompanion_Go/internal/logger"
)

// Loader reads raw item data files
type Loader interface {
	// Load decodes a data file. Failures degrade to {items: []} and add a
	// warning; Load never returns an error.
	Load(ctx context.Context, name, path string, warnings *[]string) any
}

type fileLoader struct{}

// NewLoader creates a new Loader instance
func NewLoader() Loader {
	return &fileLoader{}
}

func (l *fileLoader) Load(ctx context.Context, name, path string, warnings *[]string) any {
	log := logger.FromContext(ctx)

	data, err := readJSON(path)
	if err != nil {
		log.Warn(LogMsgDataFileLoadFailed, "file", name, "path", path, "error", err)
		if warnings != nil {
			*warnings = append(*warnings, fmt.Sprintf(WarnFmtLoadFailed, name))
		}
		return emptyData()
	}
	return data
}

func readJSON(path string) (any, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read data file: %w", err)
	}
	var data any
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to parse data file: %w", err)
	}
	return data, nil
}

func emptyData() map[string]any {
	return map[string]any{"items": []any{}}
}

package corpus

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/custodia-labs/docsearch/internal/core/domain"
	"github.com/custodia-labs/docsearch/internal/logger"
)

// LoadFile reads a JSON corpus export into a record map. The file may
// contain either an array of records or an object keyed by record ID.
// Records without an identifier are assigned one; a record whose ID
// collides with an earlier record is skipped, preserving the uniqueness
// invariant.
func LoadFile(path string) (map[string]domain.DocumentRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read corpus %s: %w", path, err)
	}

	var records []domain.DocumentRecord
	if err := json.Unmarshal(data, &records); err != nil {
		// Not an array; try the object form keyed by ID.
		var keyed map[string]domain.DocumentRecord
		if objErr := json.Unmarshal(data, &keyed); objErr != nil {
			return nil, fmt.Errorf("parse corpus %s: %w", path, err)
		}
		for id, rec := range keyed {
			if rec.ID == "" {
				rec.ID = id
			}
			records = append(records, rec)
		}
	}

	corpus := make(map[string]domain.DocumentRecord, len(records))
	for _, rec := range records {
		if rec.ID == "" {
			rec.ID = uuid.New().String()
		}
		if _, exists := corpus[rec.ID]; exists {
			logger.Warn("Duplicate record ID %q, keeping first occurrence", rec.ID)
			continue
		}
		corpus[rec.ID] = rec
	}

	logger.Info("Loaded %d records from %s", len(corpus), path)
	return corpus, nil
}

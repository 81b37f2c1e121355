package jsonfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/projworks/advance_ledger_app/internal/models"
)

// document is the whole persisted state. The file is read once at startup
// and rewritten in full after every mutation, mirroring how a browser-side
// rendition of this app keeps everything under a handful of storage keys.
type document struct {
	Debtors   []models.AdvanceRecord `json:"debtors"`
	Creditors []models.AdvanceRecord `json:"creditors"`
	Projects  []models.Project       `json:"projects"`
	Stages    []models.Stage         `json:"stages"`
}

var defaultStageNames = []string{"Planning", "Design", "In Progress", "Testing", "Done"}

// load reads the document from disk. A missing file yields a fresh document
// seeded with the default production stages.
func load(path string) (*document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return seeded(), nil
		}
		return nil, fmt.Errorf("failed to read data file %s: %w", path, err)
	}

	doc := &document{}
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("failed to parse data file %s: %w", path, err)
	}
	return doc, nil
}

func seeded() *document {
	now := time.Now().UTC()
	doc := &document{
		Debtors:   []models.AdvanceRecord{},
		Creditors: []models.AdvanceRecord{},
		Projects:  []models.Project{},
		Stages:    make([]models.Stage, len(defaultStageNames)),
	}
	for i, name := range defaultStageNames {
		doc.Stages[i] = models.Stage{
			StageID: uuid.NewString(),
			Name:    name,
			AuditFields: models.AuditFields{
				CreatedAt:     now,
				LastUpdatedAt: now,
			},
		}
	}
	return doc
}

// persist writes the document atomically: temp file in the same directory,
// then rename over the target.
func persist(path string, doc *document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode data file: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create data directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".advances-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp data file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write temp data file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp data file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace data file %s: %w", path, err)
	}
	return nil
}

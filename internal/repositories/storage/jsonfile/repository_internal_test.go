package jsonfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/projworks/advance_ledger_app/internal/apperrors"
	"github.com/projworks/advance_ledger_app/internal/core/domain"
)

func TestSaveFailureReportsStorageError(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	// The data path sits under a regular file, so persist cannot create
	// its directory and every mutation fails.
	repo := &Repository{path: filepath.Join(blocker, "advances.json"), doc: seeded()}

	err := repo.SaveStage(context.Background(), domain.Stage{StageID: "s1", Name: "Ghost"})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrStorage)
}

package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Claudiov13/JornSports-V2/internal/models"
)

func setupReportTestDB(t *testing.T) ReportRepository {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Report{}))
	return NewReportRepository(db)
}

func TestReportCreateAndList(t *testing.T) {
	repo := setupReportTestDB(t)

	require.NoError(t, repo.Create(&Report{
		AthleteName: "Ana Silva",
		Data:        models.JSONMap{"total_distance": 5200.0},
	}))
	require.NoError(t, repo.Create(&Report{AthleteName: "Joao Santos"}))

	all, err := repo.List("")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	// The name filter is case-insensitive.
	filtered, err := repo.List("ana silva")
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "Ana Silva", filtered[0].AthleteName)
	assert.Equal(t, 5200.0, filtered[0].Data["total_distance"])
}

func TestReportDelete(t *testing.T) {
	repo := setupReportTestDB(t)

	r := &Report{AthleteName: "Ana Silva"}
	require.NoError(t, repo.Create(r))

	deleted, err := repo.Delete(r.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	// Deleting again reports not-found.
	deleted, err = repo.Delete(r.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	remaining, err := repo.List("")
	require.NoError(t, err)
	assert.Empty(t, remaining)
}

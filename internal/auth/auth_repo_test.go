package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupAuthTestDB(t *testing.T) AuthRepository {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Coach{}))
	return NewAuthRepository(db)
}

func TestCreateCoachLowercasesEmail(t *testing.T) {
	repo := setupAuthTestDB(t)

	coach := &Coach{Email: "Coach@Club.COM", PasswordHash: "hash"}
	require.NoError(t, repo.CreateCoach(coach))

	found, err := repo.GetCoachByEmail("coach@club.com")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, coach.ID, found.ID)
}

func TestGetCoachByEmailNotFound(t *testing.T) {
	repo := setupAuthTestDB(t)

	found, err := repo.GetCoachByEmail("nobody@club.com")
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestGetCoachByID(t *testing.T) {
	repo := setupAuthTestDB(t)

	coach := &Coach{Email: "coach@club.com", PasswordHash: "hash"}
	require.NoError(t, repo.CreateCoach(coach))

	found, err := repo.GetCoachByID(coach.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "coach@club.com", found.Email)

	missing, err := repo.GetCoachByID(9999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestDuplicateEmailRejected(t *testing.T) {
	repo := setupAuthTestDB(t)

	require.NoError(t, repo.CreateCoach(&Coach{Email: "coach@club.com", PasswordHash: "h1"}))
	err := repo.CreateCoach(&Coach{Email: "COACH@club.com", PasswordHash: "h2"})
	assert.Error(t, err)
}

package athlete

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Claudiov13/JornSports-V2/internal/models"
)

func setupAthleteTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Athlete{}))
	return db
}

func TestResolverCreatesAndReusesByExternalID(t *testing.T) {
	repo := NewAthleteRepository(setupAthleteTestDB(t))
	resolver := NewResolver(repo)
	coach := uint(1)

	first, err := resolver.FindOrCreate("Ana", "Silva", "EXT-1", &coach)
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.Equal(t, "EXT-1", first.ExternalIDs.GetString(ExtKeyProSoccer))
	require.NotNil(t, first.OwnerID)
	assert.Equal(t, coach, *first.OwnerID)

	// Same external id, different spelling of the name: still the same row.
	second, err := resolver.FindOrCreate("Anna", "Silva", "EXT-1", &coach)
	require.NoError(t, err)
	require.NotNil(t, second)
	assert.Equal(t, first.ID, second.ID)

	var count int64
	require.NoError(t, repoDB(repo).Model(&Athlete{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestResolverFallsBackToExactName(t *testing.T) {
	repo := NewAthleteRepository(setupAthleteTestDB(t))
	resolver := NewResolver(repo)

	first, err := resolver.FindOrCreate("Ana", "Silva", "EXT-1", nil)
	require.NoError(t, err)

	// No external id on the second call: the exact name pair matches.
	second, err := resolver.FindOrCreate("Ana", "Silva", "", nil)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	// A different name creates a new athlete.
	third, err := resolver.FindOrCreate("Ana", "Souza", "", nil)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, third.ID)
}

func TestResolverOwnerClaimIsFirstWriteWins(t *testing.T) {
	repo := NewAthleteRepository(setupAthleteTestDB(t))
	resolver := NewResolver(repo)

	unowned, err := resolver.FindOrCreate("Ana", "Silva", "", nil)
	require.NoError(t, err)
	assert.Nil(t, unowned.OwnerID)

	coachA, coachB := uint(1), uint(2)

	claimed, err := resolver.FindOrCreate("Ana", "Silva", "", &coachA)
	require.NoError(t, err)
	require.NotNil(t, claimed.OwnerID)
	assert.Equal(t, coachA, *claimed.OwnerID)

	// A later coach resolves the same athlete but cannot take it over.
	again, err := resolver.FindOrCreate("Ana", "Silva", "", &coachB)
	require.NoError(t, err)
	require.NotNil(t, again.OwnerID)
	assert.Equal(t, coachA, *again.OwnerID)
}

func TestResolveRefAcceptsIDAndUID(t *testing.T) {
	repo := NewAthleteRepository(setupAthleteTestDB(t))

	a := &Athlete{FirstName: "Ana", LastName: "Silva"}
	require.NoError(t, repo.Create(a))

	byID, err := repo.ResolveRef("1")
	require.NoError(t, err)
	require.NotNil(t, byID)
	assert.Equal(t, a.ID, byID.ID)

	byUID, err := repo.ResolveRef(a.UID.String())
	require.NoError(t, err)
	require.NotNil(t, byUID)
	assert.Equal(t, a.ID, byUID.ID)

	neither, err := repo.ResolveRef("not-a-ref")
	require.NoError(t, err)
	assert.Nil(t, neither)
}

func TestFindByPlayerCode(t *testing.T) {
	repo := NewAthleteRepository(setupAthleteTestDB(t))

	a := &Athlete{
		FirstName: "Ana",
		LastName:  "Silva",
		ExternalIDs: models.JSONMap{
			ExtKeyManual: map[string]interface{}{"player_code": "FLACAR001"},
		},
	}
	require.NoError(t, repo.Create(a))

	found, err := repo.FindByPlayerCode("FLACAR001")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, a.ID, found.ID)

	missing, err := repo.FindByPlayerCode("FLACAR999")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

// repoDB exposes the underlying handle for row counting in tests.
func repoDB(repo AthleteRepository) *gorm.DB {
	return repo.(*athleteRepository).db
}

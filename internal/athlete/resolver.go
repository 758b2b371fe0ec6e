package athlete

import (
	"fmt"

	"github.com/Claudiov13/JornSports-V2/internal/models"
)

// Resolver deduplicates athletes during ingestion. Lookup order is the
// provider external id first, then the exact (first, last) name pair.
// Matching is exact string equality; the caller is responsible for trimming.
type Resolver struct {
	repo AthleteRepository
}

func NewResolver(repo AthleteRepository) *Resolver {
	return &Resolver{repo: repo}
}

// FindOrCreate returns the matching athlete or creates one. When ownerID is
// set and the matched record is unowned, the owner is claimed first-write-wins;
// an already-owned record is left untouched.
func (rs *Resolver) FindOrCreate(first, last, externalID string, ownerID *uint) (*Athlete, error) {
	if externalID != "" {
		a, err := rs.repo.FindByExternalID(ExtKeyProSoccer, externalID)
		if err != nil {
			return nil, fmt.Errorf("lookup by external id: %w", err)
		}
		if a != nil {
			return rs.claimIfUnowned(a, ownerID)
		}
	}

	a, err := rs.repo.FindByName(first, last)
	if err != nil {
		return nil, fmt.Errorf("lookup by name: %w", err)
	}
	if a != nil {
		return rs.claimIfUnowned(a, ownerID)
	}

	a = &Athlete{
		FirstName:   first,
		LastName:    last,
		OwnerID:     ownerID,
		ExternalIDs: models.JSONMap{},
	}
	if externalID != "" {
		a.ExternalIDs[ExtKeyProSoccer] = externalID
	}
	if err := rs.repo.Create(a); err != nil {
		return nil, fmt.Errorf("create athlete: %w", err)
	}
	return a, nil
}

func (rs *Resolver) claimIfUnowned(a *Athlete, ownerID *uint) (*Athlete, error) {
	if ownerID == nil || a.OwnerID != nil {
		return a, nil
	}
	if err := rs.repo.ClaimOwner(a.ID, *ownerID); err != nil {
		return nil, fmt.Errorf("claim owner: %w", err)
	}
	// Re-read so the caller sees whichever owner actually won the claim.
	fresh, err := rs.repo.GetByID(a.ID)
	if err != nil || fresh == nil {
		return a, err
	}
	return fresh, nil
}

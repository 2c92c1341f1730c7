package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Tw1zzzzz/CisBot2/internal/db"
)

// ProfileRepository provides data access methods for users and profiles.
type ProfileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new repository bound to the given DB connection.
func NewProfileRepository(database *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: database}
}

// GetProfile returns a user's profile regardless of moderation state, or
// gorm.ErrRecordNotFound.
func (r *ProfileRepository) GetProfile(ctx context.Context, userID int64) (*db.Profile, error) {
	var p db.Profile
	err := r.db.WithContext(ctx).First(&p, "user_id = ?", userID).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// CandidateQuery bounds a single candidate fetch.
//
// ExcludeIDs always contains at least the requester. EloMin/EloMax prefilter
// ELO-ranked profiles in SQL (0 = unbounded on that side); tier-ranked
// profiles pass the prefilter and are range-checked after normalization by
// the selector. OrderByElo switches from the default most-recently-updated
// ordering to the leaderboard ordering used by the TOP-1000 filter.
type CandidateQuery struct {
	ExcludeIDs []int64
	EloMin     int
	EloMax     int
	OrderByElo bool
	Limit      int
}

// ListCandidates fetches the bounded sample of approved, active candidate
// profiles for one search call.
//
// Behavior:
//   - Only approved profiles of active users are returned.
//   - Every id in ExcludeIDs is filtered out in SQL.
//   - The sample is bounded by Limit; ranking downstream is approximate
//     over this sample rather than a full corpus scan.
func (r *ProfileRepository) ListCandidates(ctx context.Context, q CandidateQuery) ([]db.Profile, error) {
	var profiles []db.Profile

	query := r.db.WithContext(ctx).
		Table("profiles p").
		Select("p.*").
		Where("p.moderation_status = ?", db.ModerationApproved).
		Where("EXISTS (SELECT 1 FROM users u WHERE u.id = p.user_id AND u.active = ?)", true)

	if len(q.ExcludeIDs) > 0 {
		query = query.Where("p.user_id NOT IN ?", q.ExcludeIDs)
	}
	if q.EloMin > 0 {
		query = query.Where("(p.faceit_elo IS NULL OR p.faceit_elo >= ?)", q.EloMin)
	}
	if q.EloMax > 0 {
		query = query.Where("(p.faceit_elo IS NULL OR p.faceit_elo <= ?)", q.EloMax)
	}

	if q.OrderByElo {
		query = query.Order("p.faceit_elo DESC")
	} else {
		query = query.Order("p.updated_at DESC, p.user_id ASC")
	}
	if q.Limit > 0 {
		query = query.Limit(q.Limit)
	}

	if err := query.Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}

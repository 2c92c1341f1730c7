package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Tw1zzzzz/CisBot2/internal/db"
)

// MatchRepository provides data access methods for mutual matches.
type MatchRepository struct {
	db *gorm.DB
}

// NewMatchRepository creates a new repository bound to the given DB connection.
func NewMatchRepository(database *gorm.DB) *MatchRepository {
	return &MatchRepository{db: database}
}

// CreateMatch records the match for an unordered pair, creating it at most
// once no matter how often or from which side it is called.
//
// Behavior:
//   - The pair is canonicalized (smaller id first) so both call orders hit
//     the same unique index entry.
//   - The insert runs with ON CONFLICT DO NOTHING inside a transaction;
//     a concurrent reciprocal like loses the race silently and the winner's
//     row is returned. created is false when the match already existed.
func (r *MatchRepository) CreateMatch(ctx context.Context, userA, userB int64) (matchID int64, created bool, err error) {
	a, b := db.PairKey(userA, userB)

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m := db.Match{UserAID: a, UserBID: b, Active: true}
		res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&m)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			matchID = m.ID
			created = true
			return nil
		}
		// lost the race or repeat call: fetch the existing row
		var existing db.Match
		if err := tx.First(&existing, "user_a_id = ? AND user_b_id = ?", a, b).Error; err != nil {
			return err
		}
		matchID = existing.ID
		return nil
	})
	if err != nil {
		return 0, false, err
	}
	return matchID, created, nil
}

// GetByPair returns the match for an unordered pair, or gorm.ErrRecordNotFound.
func (r *MatchRepository) GetByPair(ctx context.Context, userA, userB int64) (*db.Match, error) {
	a, b := db.PairKey(userA, userB)
	var m db.Match
	err := r.db.WithContext(ctx).First(&m, "user_a_id = ? AND user_b_id = ?", a, b).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// ListActive returns a user's active matches, newest first.
func (r *MatchRepository) ListActive(ctx context.Context, userID int64) ([]db.Match, error) {
	var matches []db.Match
	err := r.db.WithContext(ctx).
		Where("(user_a_id = ? OR user_b_id = ?) AND active = ?", userID, userID, true).
		Order("created_at DESC, id DESC").
		Find(&matches).Error
	return matches, err
}

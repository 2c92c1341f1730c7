package db

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/go-faker/faker/v4"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SeedDemoData resets the database and populates it with demo players.
//
// Behavior:
//  1. Clears matches, edges, profiles and users.
//  2. Creates 40 users with approved CS2 profiles (random rank, role, maps,
//     playtime slots, categories); a handful stay pending/rejected so the
//     moderation gate has something to filter.
//  3. Generates like/skip edges, forcing a mutual pair every 4th like so
//     demo environments always have matches to show.
func SeedDemoData(gdb *gorm.DB) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	for _, table := range []string{"matches", "edges", "profiles", "users"} {
		if err := gdb.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}
	log.Println("Cleared existing data")

	roles := []string{"IGL", "Entry Fragger", "Support Player", "Lurker", "AWPer"}
	maps := []string{"Ancient", "Dust2", "Inferno", "Mirage", "Nuke", "Overpass", "Train"}
	slots := []string{"morning", "day", "evening", "night"}
	categories := []string{"mm_premier", "faceit", "tournaments", "looking_for_team"}
	tiers := []string{"Gold Nova III", "Master Guardian I", "Legendary Eagle", "The Global Elite"}

	const userCount = 40
	for i := 1; i <= userCount; i++ {
		id := int64(1000 + i)
		user := User{
			ID:        id,
			Username:  faker.Username(),
			FirstName: faker.FirstName(),
			Active:    true,
		}
		if err := gdb.Create(&user).Error; err != nil {
			return fmt.Errorf("failed to seed user: %w", err)
		}

		profile := Profile{
			UserID:           id,
			GameNickname:     faker.Username(),
			FaceitURL:        fmt.Sprintf("https://www.faceit.com/en/players/%s", faker.Username()),
			Role:             roles[r.Intn(len(roles))],
			FavoriteMaps:     pickN(r, maps, 2+r.Intn(3)),
			PlaytimeSlots:    pickN(r, slots, 1+r.Intn(2)),
			Categories:       pickN(r, categories, 1+r.Intn(2)),
			Description:      faker.Sentence(),
			ModerationStatus: ModerationApproved,
		}

		// mixed rank representations, mostly raw ELO
		if r.Intn(10) < 7 {
			elo := 500 + r.Intn(3000)
			profile.FaceitElo = &elo
		} else {
			tier := tiers[r.Intn(len(tiers))]
			profile.RankTier = &tier
		}

		// every 10th profile is stuck in moderation
		if i%10 == 0 {
			profile.ModerationStatus = ModerationPending
		}

		if err := gdb.Create(&profile).Error; err != nil {
			return fmt.Errorf("failed to seed profile: %w", err)
		}
	}
	log.Printf("Seeded %d users with profiles.", userCount)

	// --- Seed edges and matches ---
	likeCounter := 0
	for i := 1; i <= userCount; i++ {
		from := int64(1000 + i)
		for j := 0; j < 6; j++ {
			to := int64(1000 + 1 + r.Intn(userCount))
			if to == from {
				continue
			}

			kind := EdgeLike
			if r.Intn(100) < 30 {
				kind = EdgeSkip
			}

			edge := Edge{FromID: from, ToID: to, Kind: kind}
			if err := gdb.Clauses(clause.OnConflict{DoNothing: true}).Create(&edge).Error; err != nil {
				return fmt.Errorf("failed to seed edge: %w", err)
			}

			if kind != EdgeLike {
				continue
			}
			likeCounter++

			// force reciprocity every 4th like
			if likeCounter%4 == 0 {
				recip := Edge{FromID: to, ToID: from, Kind: EdgeLike}
				if err := gdb.Clauses(clause.OnConflict{DoNothing: true}).Create(&recip).Error; err != nil {
					return fmt.Errorf("failed to seed reciprocal like: %w", err)
				}
				a, b := PairKey(from, to)
				match := Match{UserAID: a, UserBID: b, Active: true}
				if err := gdb.Clauses(clause.OnConflict{DoNothing: true}).Create(&match).Error; err != nil {
					return fmt.Errorf("failed to seed match: %w", err)
				}
			}
		}
	}
	log.Println("Seeded edges and matches.")

	return nil
}

// SeedMinimalTestData wipes the DB and inserts a small deterministic
// dataset for repeatable tests:
//   - three approved users (1, 2, 3), one pending user (4)
//   - 1 -> 2 like, 2 -> 1 like (mutual), 3 -> 1 like, 1 -> 3 skip
func SeedMinimalTestData(gdb *gorm.DB) error {
	for _, table := range []string{"matches", "edges", "profiles", "users"} {
		if err := gdb.Exec("DELETE FROM " + table).Error; err != nil {
			return err
		}
	}

	elo := func(v int) *int { return &v }

	users := []User{
		{ID: 1, FirstName: "alpha", Username: "alpha", Active: true},
		{ID: 2, FirstName: "bravo", Username: "bravo", Active: true},
		{ID: 3, FirstName: "charlie", Username: "charlie", Active: true},
		{ID: 4, FirstName: "delta", Username: "delta", Active: true},
	}
	if err := gdb.Create(&users).Error; err != nil {
		return err
	}

	profiles := []Profile{
		{UserID: 1, GameNickname: "alpha", FaceitElo: elo(2000), Role: "IGL",
			FavoriteMaps: []string{"Mirage", "Dust2"}, PlaytimeSlots: []string{"evening"},
			Categories: []string{"faceit"}, ModerationStatus: ModerationApproved},
		{UserID: 2, GameNickname: "bravo", FaceitElo: elo(2100), Role: "AWPer",
			FavoriteMaps: []string{"Mirage", "Inferno"}, PlaytimeSlots: []string{"evening", "night"},
			Categories: []string{"faceit", "tournaments"}, ModerationStatus: ModerationApproved},
		{UserID: 3, GameNickname: "charlie", FaceitElo: elo(1500), Role: "IGL",
			FavoriteMaps: []string{"Nuke"}, PlaytimeSlots: []string{"morning"},
			Categories: []string{"mm_premier"}, ModerationStatus: ModerationApproved},
		{UserID: 4, GameNickname: "delta", FaceitElo: elo(2200), Role: "Lurker",
			FavoriteMaps: []string{"Mirage"}, PlaytimeSlots: []string{"evening"},
			Categories: []string{"faceit"}, ModerationStatus: ModerationPending},
	}
	if err := gdb.Create(&profiles).Error; err != nil {
		return err
	}

	edges := []Edge{
		{FromID: 1, ToID: 2, Kind: EdgeLike},
		{FromID: 2, ToID: 1, Kind: EdgeLike},
		{FromID: 3, ToID: 1, Kind: EdgeLike},
		{FromID: 1, ToID: 3, Kind: EdgeSkip},
	}
	if err := gdb.Create(&edges).Error; err != nil {
		return err
	}

	return nil
}

func pickN(r *rand.Rand, from []string, n int) []string {
	if n > len(from) {
		n = len(from)
	}
	idx := r.Perm(len(from))
	out := make([]string, 0, n)
	for _, i := range idx[:n] {
		out = append(out, from[i])
	}
	return out
}

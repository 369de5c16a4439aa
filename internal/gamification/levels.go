package gamification

import (
	"errors"
	"fmt"

	"github.com/sagrapp/backend/internal/models"
)

// ErrInvalidArgument marks a precondition violation on one of the pure
// calculation functions. Callers should treat it as a bad request, never
// retry it.
var ErrInvalidArgument = errors.New("invalid argument")

// LevelThreshold pairs a level number with the minimum XP required to
// attain it.
type LevelThreshold struct {
	Level      int
	XPRequired int64
}

// Levels is the XP progression table. Thresholds strictly increase;
// level 1 requires 0 XP. There are exactly ten levels — XP beyond the
// last threshold stays at level 10 with progress pinned at 100.
var Levels = []LevelThreshold{
	{Level: 1, XPRequired: 0},
	{Level: 2, XPRequired: 100},
	{Level: 3, XPRequired: 250},
	{Level: 4, XPRequired: 500},
	{Level: 5, XPRequired: 1000},
	{Level: 6, XPRequired: 2000},
	{Level: 7, XPRequired: 3500},
	{Level: 8, XPRequired: 5000},
	{Level: 9, XPRequired: 7500},
	{Level: 10, XPRequired: 10000},
}

// LevelFor returns the level reached at totalXP, the XP threshold of the
// next level, and the progress percentage toward it. At the top of the
// table NextLevelXP equals the last threshold and progress is 100.
func LevelFor(totalXP int64) (models.LevelInfo, error) {
	if totalXP < 0 {
		return models.LevelInfo{}, fmt.Errorf("%w: negative xp %d", ErrInvalidArgument, totalXP)
	}

	current := Levels[0]
	next := Levels[1]

	for i := 1; i < len(Levels); i++ {
		if totalXP >= Levels[i].XPRequired {
			current = Levels[i]
			if i+1 < len(Levels) {
				next = Levels[i+1]
			} else {
				next = Levels[i]
			}
		} else {
			next = Levels[i]
			break
		}
	}

	span := next.XPRequired - current.XPRequired
	progress := 100.0
	if span > 0 {
		progress = float64(totalXP-current.XPRequired) / float64(span) * 100
	}
	if progress < 0 {
		progress = 0
	}
	if progress > 100 {
		progress = 100
	}

	return models.LevelInfo{
		Level:           current.Level,
		NextLevelXP:     next.XPRequired,
		ProgressPercent: progress,
	}, nil
}

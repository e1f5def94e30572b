package streak

import (
	"errors"
	"time"
)

// Store keys. These mirror the original client-side key-value entries and are
// part of the persisted interface; renaming them orphans existing streaks.
const (
	KeyCount       = "academicStreak"
	KeyLastDate    = "lastLoginDate"
	KeyBonusFlag   = "tasksCompletedForStreakToday"
	lastDateLayout = time.RFC3339
)

var (
	// ErrKeyNotFound is returned by a Store when a key has never been set.
	ErrKeyNotFound = errors.New("key not found")
)

// Store is a persistent string key-value store surviving across runs on one
// device. Absent keys are treated as uninitialized state.
type Store interface {
	Get(key string) (string, error)
	Set(key, value string) error
}

// State is the academic streak record.
type State struct {
	// Count of consecutive qualifying days. Only ever increases or resets to 1.
	Count int `json:"count"`
	// LastQualifyingDate is normalized to local midnight; zero when no day has
	// ever qualified.
	LastQualifyingDate time.Time `json:"lastQualifyingDate"`
	// BonusClaimedToday reports whether the day's extra point was granted. It
	// resets whenever LastQualifyingDate advances to a new day.
	BonusClaimedToday bool `json:"bonusClaimedToday"`
}

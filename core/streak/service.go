package streak

import (
	"strconv"
	"time"

	"github.com/pkg/errors"

	"github.com/yumoapp/aula/core"
)

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// LoadOrAdvance loads the persisted streak and rolls it forward to `now`'s day:
//   - no qualifying day yet: the streak starts at 1;
//   - same day as the last qualifying one: unchanged (reload);
//   - the day right after: the streak grows by 1;
//   - anything else (a gap of 2+ days, or a stored date in the future): reset to 1.
//
// Every branch but the same-day reload advances LastQualifyingDate to today and
// clears the bonus flag. The state is persisted after computing.
func (svc *Service) LoadOrAdvance(now time.Time) (State, error) {
	st := svc.load()
	today := core.Midnight(now)

	switch {
	case st.LastQualifyingDate.IsZero():
		// first qualifying day ever
		st.Count = 1
		st.LastQualifyingDate = today
		st.BonusClaimedToday = false
	case core.SameDay(st.LastQualifyingDate, today):
		// same-day reload; nothing moves
	case core.SameDay(st.LastQualifyingDate.AddDate(0, 0, 1), today):
		st.Count++
		st.LastQualifyingDate = today
		st.BonusClaimedToday = false
	default:
		st.Count = 1
		st.LastQualifyingDate = today
		st.BonusClaimedToday = false
	}

	if err := svc.persist(st); err != nil {
		return State{}, err
	}
	return st, nil
}

// ClaimDailyBonus grants the day's extra point. Claiming twice on the same day
// is a no-op: the flag guards it until LoadOrAdvance moves to a new day.
func (svc *Service) ClaimDailyBonus() (State, error) {
	st := svc.load()
	if st.BonusClaimedToday {
		return st, nil
	}
	st.Count++
	st.BonusClaimedToday = true

	if err := svc.store.Set(KeyCount, strconv.Itoa(st.Count)); err != nil {
		return State{}, errors.Wrap(err, "persisting streak count")
	}
	if err := svc.store.Set(KeyBonusFlag, strconv.FormatBool(st.BonusClaimedToday)); err != nil {
		return State{}, errors.Wrap(err, "persisting bonus flag")
	}
	return st, nil
}

// load reads the three keys; unparsable or absent values read as zero state.
func (svc *Service) load() State {
	var st State
	if val, err := svc.store.Get(KeyCount); err == nil {
		if count, err := strconv.Atoi(val); err == nil && count >= 0 {
			st.Count = count
		}
	}
	if val, err := svc.store.Get(KeyLastDate); err == nil {
		if last, err := time.Parse(lastDateLayout, val); err == nil {
			st.LastQualifyingDate = core.Midnight(last.Local())
		}
	}
	if val, err := svc.store.Get(KeyBonusFlag); err == nil {
		st.BonusClaimedToday = val == "true"
	}
	return st
}

func (svc *Service) persist(st State) error {
	if err := svc.store.Set(KeyCount, strconv.Itoa(st.Count)); err != nil {
		return errors.Wrap(err, "persisting streak count")
	}
	if err := svc.store.Set(KeyLastDate, st.LastQualifyingDate.Format(lastDateLayout)); err != nil {
		return errors.Wrap(err, "persisting last qualifying date")
	}
	if err := svc.store.Set(KeyBonusFlag, strconv.FormatBool(st.BonusClaimedToday)); err != nil {
		return errors.Wrap(err, "persisting bonus flag")
	}
	return nil
}

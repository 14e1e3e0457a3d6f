package passport

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/colonyops/passport/internal/core/doctor"
	"github.com/colonyops/passport/internal/core/kv"
	"github.com/colonyops/passport/internal/core/travel"
	"github.com/colonyops/passport/internal/metrics"
)

// TravelService owns the live travel State for an application session and
// persists it after every change.
type TravelService struct {
	store    kv.KV
	atlas    travel.Atlas
	log      zerolog.Logger
	now      func() time.Time
	wishlist *kv.TypedKV[[]string]
	darkMode *kv.TypedKV[bool]
	observer MutationObserver

	mu     sync.Mutex
	state  travel.State
	format travel.Format
}

// MutationObserver is told the outcome of every mutation.
type MutationObserver interface {
	ObserveMutation(op, outcome string, start time.Time)
}

// NewTravelService creates a TravelService. Call Load before use.
func NewTravelService(store kv.KV, atlas travel.Atlas, log zerolog.Logger) *TravelService {
	return &TravelService{
		store:    store,
		atlas:    atlas,
		log:      log,
		now:      time.Now,
		wishlist: kv.Typed(store, travel.KeyWishlist, travel.DefaultWishlist),
		darkMode: kv.Typed(store, travel.KeyDarkMode, false),
		state:    travel.NewState(nil, travel.DefaultWishlist),
		format:   travel.FormatStructured,
	}
}

// Load reads both lists from storage. Expansion flags of countries that are
// still present survive a reload; new countries start expanded.
func (s *TravelService) Load(ctx context.Context) error {
	visited, format, err := s.loadVisited(ctx)
	if err != nil {
		return err
	}

	wishlist, err := s.wishlist.Load(ctx)
	if err != nil {
		return fmt.Errorf("load wishlist: %w", err)
	}

	next := travel.NewState(visited, wishlist)

	s.mu.Lock()
	defer s.mu.Unlock()

	for name := range next.Expanded {
		if prev, ok := s.state.Expanded[name]; ok {
			next.Expanded[name] = prev
		}
	}
	s.state = next
	s.format = format

	if format == travel.FormatLegacy {
		s.log.Info().Int("countries", len(visited)).Msg("loaded legacy visited countries; next save writes the structured format")
	}
	s.log.Debug().
		Int("visited", len(next.Visited)).
		Int("wishlist", len(next.Wishlist)).
		Msg("travel state loaded")
	return nil
}

func (s *TravelService) loadVisited(ctx context.Context) ([]travel.VisitedCountry, travel.Format, error) {
	entry, err := s.store.GetRaw(ctx, travel.KeyVisitedCountries)
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return []travel.VisitedCountry{}, travel.FormatStructured, nil
		}
		return nil, "", fmt.Errorf("load visited countries: %w", err)
	}

	visited, format, err := travel.DecodeVisited(entry.Value)
	if err != nil {
		return nil, "", err
	}
	return visited, format, nil
}

// State returns a copy of the current state.
func (s *TravelService) State() travel.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Format reports the shape the visited list had when it was last loaded.
func (s *TravelService) Format() travel.Format {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.format
}

// Stats derives the statistics for the current state.
func (s *TravelService) Stats() travel.Stats {
	return travel.ComputeStats(s.State(), s.atlas, s.now())
}

// AddVisitedCountry adds a country. Only form input reports validation errors.
func (s *TravelService) AddVisitedCountry(ctx context.Context, raw string, origin travel.Origin) (bool, error) {
	return s.apply(ctx, "add country", func(st travel.State) (travel.State, bool, error) {
		return st.AddVisitedCountry(s.atlas, raw, origin)
	})
}

// RemoveVisitedCountry removes the country with exactly the given name.
func (s *TravelService) RemoveVisitedCountry(ctx context.Context, name string) (bool, error) {
	return s.apply(ctx, "remove country", pure(func(st travel.State) (travel.State, bool) {
		return st.RemoveVisitedCountry(name)
	}))
}

// AddToWishlist adds a destination to the wishlist.
func (s *TravelService) AddToWishlist(ctx context.Context, raw string) (bool, error) {
	return s.apply(ctx, "add wish", pure(func(st travel.State) (travel.State, bool) {
		return st.AddToWishlist(s.atlas, raw)
	}))
}

// RemoveFromWishlist removes the wishlist entry with exactly the given name.
func (s *TravelService) RemoveFromWishlist(ctx context.Context, name string) (bool, error) {
	return s.apply(ctx, "remove wish", pure(func(st travel.State) (travel.State, bool) {
		return st.RemoveFromWishlist(name)
	}))
}

// AddCity records a city visit within a visited country.
func (s *TravelService) AddCity(ctx context.Context, country, city, date string) (bool, error) {
	return s.apply(ctx, "add city", pure(func(st travel.State) (travel.State, bool) {
		return st.AddCity(country, city, date)
	}))
}

// RemoveCity removes a city from the named country only.
func (s *TravelService) RemoveCity(ctx context.Context, country, city string) (bool, error) {
	return s.apply(ctx, "remove city", pure(func(st travel.State) (travel.State, bool) {
		return st.RemoveCity(country, city)
	}))
}

// ToggleCountryExpanded flips whether a country's cities are shown. Nothing
// is persisted.
func (s *TravelService) ToggleCountryExpanded(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = s.state.ToggleCountryExpanded(name)
}

// PendingCity is a city add waiting for its confirmation delay.
type PendingCity struct {
	timer *time.Timer
}

// Stop cancels the add. It reports false if the add already ran.
func (p *PendingCity) Stop() bool {
	return p.timer.Stop()
}

// ScheduleAddCity applies AddCity after delay, against whatever state is
// current when the timer fires. done, if non-nil, runs on the timer goroutine.
func (s *TravelService) ScheduleAddCity(ctx context.Context, delay time.Duration, country, city, date string, done func(changed bool, err error)) *PendingCity {
	if delay < 0 {
		delay = 0
	}

	s.log.Debug().
		Str("country", country).
		Str("city", city).
		Dur("delay", delay).
		Msg("city add scheduled")

	return &PendingCity{timer: time.AfterFunc(delay, func() {
		var (
			changed bool
			err     error
		)
		if err = ctx.Err(); err == nil {
			changed, err = s.AddCity(ctx, country, city, date)
		}
		if done != nil {
			done(changed, err)
		}
	})}
}

// DarkMode returns the persisted theme flag.
func (s *TravelService) DarkMode(ctx context.Context) (bool, error) {
	dark, err := s.darkMode.Load(ctx)
	if err != nil {
		return false, fmt.Errorf("load dark mode: %w", err)
	}
	return dark, nil
}

// SetDarkMode persists the theme flag.
func (s *TravelService) SetDarkMode(ctx context.Context, dark bool) error {
	if err := s.darkMode.Save(ctx, dark); err != nil {
		return fmt.Errorf("save dark mode: %w", err)
	}
	s.log.Debug().Bool("dark", dark).Msg("theme changed")
	return nil
}

// Snapshot reads the stored documents without normalizing them, for
// integrity checks.
func (s *TravelService) Snapshot(ctx context.Context) (doctor.Snapshot, error) {
	visited, format, err := s.loadVisited(ctx)
	if err != nil {
		return doctor.Snapshot{}, err
	}

	var wishlist []string
	entry, err := s.store.GetRaw(ctx, travel.KeyWishlist)
	switch {
	case errors.Is(err, kv.ErrNotFound):
		wishlist = []string{}
	case err != nil:
		return doctor.Snapshot{}, fmt.Errorf("load wishlist: %w", err)
	default:
		if wishlist, err = travel.DecodeWishlist(entry.Value); err != nil {
			return doctor.Snapshot{}, err
		}
	}

	return doctor.Snapshot{Visited: visited, Wishlist: wishlist, Format: format}, nil
}

// SaveSnapshot overwrites both stored lists with snap and reloads.
func (s *TravelService) SaveSnapshot(ctx context.Context, snap doctor.Snapshot) error {
	if err := s.persist(ctx, travel.State{Visited: snap.Visited, Wishlist: snap.Wishlist}); err != nil {
		return err
	}
	s.log.Info().
		Int("visited", len(snap.Visited)).
		Int("wishlist", len(snap.Wishlist)).
		Msg("travel data rewritten")
	return s.Load(ctx)
}

// Observe registers o for mutation outcomes. Call before the service is shared.
func (s *TravelService) Observe(o MutationObserver) {
	s.observer = o
}

func (s *TravelService) observe(op, outcome string, start time.Time) {
	if s.observer != nil {
		s.observer.ObserveMutation(op, outcome, start)
	}
}

type mutation func(travel.State) (travel.State, bool, error)

func pure(fn func(travel.State) (travel.State, bool)) mutation {
	return func(st travel.State) (travel.State, bool, error) {
		next, changed := fn(st)
		return next, changed, nil
	}
}

// apply runs fn against the live state and persists the result. The live
// state only advances once the save succeeded.
func (s *TravelService) apply(ctx context.Context, op string, fn mutation) (bool, error) {
	start := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	next, changed, err := fn(s.state)
	if err != nil {
		s.log.Debug().Err(err).Str("op", op).Msg("rejected")
		s.observe(op, metrics.OutcomeRejected, start)
		return false, err
	}
	if !changed {
		s.log.Debug().Str("op", op).Msg("no change")
		s.observe(op, metrics.OutcomeUnchanged, start)
		return false, nil
	}

	if err := s.persist(ctx, next); err != nil {
		s.observe(op, metrics.OutcomeFailed, start)
		return false, fmt.Errorf("%s: %w", op, err)
	}

	s.state = next
	s.format = travel.FormatStructured
	s.log.Debug().Str("op", op).Msg("applied")
	s.observe(op, metrics.OutcomeApplied, start)
	return true, nil
}

// persist writes both lists in one batch so a failed save cannot leave the
// visited list and the wishlist out of step.
func (s *TravelService) persist(ctx context.Context, st travel.State) error {
	raw, err := travel.EncodeVisited(st.Visited)
	if err != nil {
		return fmt.Errorf("encode visited countries: %w", err)
	}

	wishlist := st.Wishlist
	if wishlist == nil {
		wishlist = []string{}
	}

	err = kv.SetMany(ctx, s.store,
		kv.Pair{Key: travel.KeyVisitedCountries, Value: json.RawMessage(raw)},
		kv.Pair{Key: s.wishlist.Key(), Value: wishlist},
	)
	if err != nil {
		return fmt.Errorf("save travel log: %w", err)
	}
	return nil
}

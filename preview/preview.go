// Package preview decides when cached live stream previews are refreshed.
package preview

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/metafates/gache"
	"github.com/twitchkit/twitchkit/config"
	"github.com/twitchkit/twitchkit/filesystem"
	"github.com/twitchkit/twitchkit/key"
	"github.com/twitchkit/twitchkit/log"
)

// LivePattern matches the texture cache URLs of live stream previews.
const LivePattern = "%://static-cdn.jtvnw.net/previews-ttv/live_user_%"

// Cleaner removes cached textures whose URL matches pattern.
type Cleaner interface {
	RemoveLike(pattern string, notify bool) error
}

// Refresher clears live previews at most once per configured interval.
type Refresher struct {
	settings config.Settings
	cleaner  Cleaner
	stamps   *gache.Cache[time.Time]
	now      func() time.Time
}

// NewRefresher returns a Refresher recording its stamp at path.
func NewRefresher(settings config.Settings, cleaner Cleaner, path string) *Refresher {
	return &Refresher{
		settings: settings,
		cleaner:  cleaner,
		stamps: gache.New[time.Time](&gache.Options{
			Path:       path,
			FileSystem: &filesystem.GacheFs{},
		}),
		now: time.Now,
	}
}

func (r *Refresher) enabled() bool {
	return r.settings.Get(key.PreviewsEnable) == "true" && r.settings.Get(key.PreviewsRefresh) == "true"
}

// Interval returns the configured refresh interval.
func (r *Refresher) Interval() (time.Duration, error) {
	minutes, err := strconv.Atoi(strings.TrimSpace(r.settings.Get(key.PreviewsRefreshInterval)))
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key.PreviewsRefreshInterval, err)
	}
	return time.Duration(minutes) * time.Minute, nil
}

// Since returns the time elapsed since the last refresh, or false if there was none.
func (r *Refresher) Since() (time.Duration, bool, error) {
	stamp, expired, err := r.stamps.Get()
	if err != nil {
		return 0, false, err
	}
	if expired || stamp.IsZero() {
		return 0, false, nil
	}
	return r.now().Sub(stamp), true, nil
}

// Due reports whether previews should be refreshed now.
func (r *Refresher) Due() (bool, error) {
	if !r.enabled() {
		return false, nil
	}

	interval, err := r.Interval()
	if err != nil {
		return false, err
	}

	since, ok, err := r.Since()
	if err != nil {
		return false, err
	}
	return !ok || since >= interval, nil
}

// Refresh clears live previews when due and records the refresh.
// It reports whether a refresh happened.
func (r *Refresher) Refresh() (bool, error) {
	due, err := r.Due()
	if err != nil || !due {
		return false, err
	}

	if err := r.stamps.Set(r.now()); err != nil {
		return false, fmt.Errorf("record preview refresh: %w", err)
	}

	notify := r.settings.Get(key.PreviewsNotifyRefresh) != "false"
	if err := r.cleaner.RemoveLike(LivePattern, notify); err != nil {
		return false, fmt.Errorf("clear live previews: %w", err)
	}

	log.Info("live previews refreshed")
	return true, nil
}

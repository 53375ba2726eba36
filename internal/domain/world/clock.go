package world

import "ogvalley/internal/domain/catalog"

type Weather string

const (
	WeatherSunny  Weather = "SUNNY"
	WeatherRainy  Weather = "RAINY"
	WeatherStormy Weather = "STORMY"
)

func (w Weather) Wet() bool {
	return w == WeatherRainy || w == WeatherStormy
}

type ClockConfig struct {
	StartOfDay     int
	EndOfDay       int
	MinutesPerTick int
	DaysPerSeason  int
}

type Clock struct {
	cfg ClockConfig
}

// ClockState is the persisted part of the clock. Time is minutes since
// midnight and may run past 1440 up to EndOfDay.
type ClockState struct {
	Day         int     `json:"day"`
	Time        int     `json:"time"`
	SeasonIndex int     `json:"season_index"`
	Weather     Weather `json:"weather"`
	IsPaused    bool    `json:"is_paused"`
	// DayIndex counts days since the world began and never wraps.
	DayIndex int `json:"day_index"`
}

func (s ClockState) Season() catalog.Season {
	return catalog.SeasonAt(s.SeasonIndex)
}

type Rollover struct {
	NewDay    bool
	NewSeason bool
}

func NewClock(cfg ClockConfig) Clock {
	if cfg.StartOfDay <= 0 {
		cfg.StartOfDay = 360
	}
	if cfg.EndOfDay <= cfg.StartOfDay {
		cfg.EndOfDay = 1600
	}
	if cfg.MinutesPerTick <= 0 {
		cfg.MinutesPerTick = 10
	}
	if cfg.DaysPerSeason <= 0 {
		cfg.DaysPerSeason = 28
	}
	return Clock{cfg: cfg}
}

func DefaultClock() Clock {
	return NewClock(ClockConfig{})
}

func (c Clock) StartOfDay() int {
	return c.cfg.StartOfDay
}

func (c Clock) Initial() ClockState {
	return ClockState{Day: 1, Time: c.cfg.StartOfDay, Weather: WeatherSunny, DayIndex: 1}
}

// Advance moves the clock one tick forward. Crossing EndOfDay snaps the time
// back to StartOfDay of the next day, wrapping the season after
// DaysPerSeason days. A paused clock does not move.
func (c Clock) Advance(s ClockState) (ClockState, Rollover) {
	if s.IsPaused {
		return s, Rollover{}
	}
	next := s
	next.Time += c.cfg.MinutesPerTick
	if next.Time < c.cfg.EndOfDay {
		return next, Rollover{}
	}
	next.Time = c.cfg.StartOfDay
	next.Day++
	next.DayIndex++
	roll := Rollover{NewDay: true}
	if next.Day > c.cfg.DaysPerSeason {
		next.Day = 1
		next.SeasonIndex = (next.SeasonIndex + 1) % 4
		roll.NewSeason = true
	}
	return next, roll
}

package valley

import (
	"ogvalley/internal/domain/catalog"
	"ogvalley/internal/domain/world"
)

func cropDef(c *world.Crop) (catalog.Crop, bool) {
	item, ok := catalog.Lookup(c.ProduceID)
	if !ok {
		return catalog.Crop{}, false
	}
	def, ok := item.(catalog.Crop)
	return def, ok
}

// Harvestable reports whether the tile holds a mature, living crop.
func Harvestable(t *world.Tile) bool {
	if t.Crop == nil || t.Crop.Dead {
		return false
	}
	def, ok := cropDef(t.Crop)
	if !ok {
		return false
	}
	return t.Crop.Stage >= def.MaxStage()
}

// Till turns bare ground into tilled dirt.
func Till(t *world.Tile) error {
	if t.HasObject() || t.IsTilled || t.Warp != nil || !t.CanWalk {
		return ErrNoEffect
	}
	if t.Type != world.TileGrass && t.Type != world.TileDirt {
		return ErrNoEffect
	}
	t.Type = world.TileDirt
	t.IsTilled = true
	return nil
}

func Water(t *world.Tile) error {
	if !t.IsTilled {
		return ErrNoEffect
	}
	t.IsWatered = true
	if t.Crop != nil {
		t.Crop.IsWatered = true
	}
	return nil
}

// Plant puts a seed's crop on tilled, empty soil when the season allows it.
func Plant(t *world.Tile, seed catalog.Seed, season catalog.Season) error {
	if !t.IsTilled || t.Crop != nil || t.HasObject() {
		return ErrNoEffect
	}
	def, ok := catalog.CropFor(seed)
	if !ok {
		return ErrNoEffect
	}
	if !def.GrowsIn(season) {
		return reject(MsgWrongSeason, MediumMessage)
	}
	t.Crop = &world.Crop{ProduceID: def.ID, IsWatered: t.IsWatered}
	return nil
}

// GrowDay applies one day of growth. Watered crops advance; crops left dry
// too long or out of season die.
func GrowDay(t *world.Tile, season catalog.Season) {
	c := t.Crop
	if c == nil || c.Dead {
		return
	}
	def, ok := cropDef(c)
	if !ok {
		return
	}
	if !def.GrowsIn(season) {
		c.Dead = true
		return
	}
	if !c.IsWatered {
		c.DryDays++
		if c.DryDays > DryDaysTolerance {
			c.Dead = true
		}
		return
	}
	c.DryDays = 0
	c.DaysGrown++
	if def.DaysToGrow <= 0 {
		c.Stage = def.MaxStage()
		return
	}
	c.Stage = min(def.MaxStage(), c.DaysGrown*def.MaxStage()/def.DaysToGrow)
}

// AdvanceDay runs the farm's overnight update: growth on yesterday's
// watering, then the new day's weather, which waters the farm when wet.
func (w *World) AdvanceDay(rng world.Rand) {
	season := w.Clock.Season()
	for _, g := range w.Grids {
		g.Each(func(t *world.Tile) {
			GrowDay(t, season)
			t.IsWatered = false
			if t.Crop != nil {
				t.Crop.IsWatered = false
			}
		})
	}
	w.Clock.Weather = RollWeather(rng)
	if !w.Clock.Weather.Wet() {
		return
	}
	w.Grids[world.SceneFarm].Each(func(t *world.Tile) {
		if t.IsTilled {
			_ = Water(t)
		}
	})
}

func RollWeather(rng world.Rand) world.Weather {
	r := rng.Float64()
	switch {
	case r < ChanceSunny:
		return world.WeatherSunny
	case r < ChanceSunny+ChanceRainy:
		return world.WeatherRainy
	default:
		return world.WeatherStormy
	}
}

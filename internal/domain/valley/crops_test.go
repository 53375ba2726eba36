package valley

import (
	"testing"

	"ogvalley/internal/domain/catalog"
	"ogvalley/internal/domain/world"
)

func parsnipSeed(t *testing.T) catalog.Seed {
	t.Helper()
	item, _ := catalog.Lookup(catalog.ParsnipSeeds)
	seed, ok := item.(catalog.Seed)
	if !ok {
		t.Fatalf("parsnip seeds are not a seed")
	}
	return seed
}

func TestTillWaterPlant(t *testing.T) {
	tile := &world.Tile{Type: world.TileGrass, CanWalk: true}
	if err := Water(tile); err != ErrNoEffect {
		t.Fatalf("watering untilled ground should do nothing")
	}
	if err := Till(tile); err != nil {
		t.Fatalf("till: %v", err)
	}
	if tile.Type != world.TileDirt || !tile.IsTilled {
		t.Fatalf("expected tilled dirt, got %+v", tile)
	}
	if err := Till(tile); err != ErrNoEffect {
		t.Fatalf("tilling twice should do nothing")
	}
	if err := Water(tile); err != nil || !tile.IsWatered {
		t.Fatalf("expected watered tile")
	}
	if err := Plant(tile, parsnipSeed(t), catalog.Spring); err != nil {
		t.Fatalf("plant: %v", err)
	}
	if tile.Crop == nil || tile.Crop.Stage != 0 || tile.Crop.ProduceID != catalog.Parsnip || !tile.Crop.IsWatered {
		t.Fatalf("unexpected crop %+v", tile.Crop)
	}
	if err := Plant(tile, parsnipSeed(t), catalog.Spring); err != ErrNoEffect {
		t.Fatalf("planting on an occupied tile should do nothing")
	}
}

func TestPlantOutOfSeasonRejects(t *testing.T) {
	tile := &world.Tile{Type: world.TileDirt, IsTilled: true, CanWalk: true}
	err := Plant(tile, parsnipSeed(t), catalog.Summer)
	rej, ok := err.(*Rejection)
	if !ok || rej.Reason != MsgWrongSeason {
		t.Fatalf("expected wrong season rejection, got %v", err)
	}
	if tile.Crop != nil {
		t.Fatalf("crop must not be planted")
	}
}

func TestTillRejectsObjectsAndWarps(t *testing.T) {
	rock := catalog.StoneNode
	if err := Till(&world.Tile{Type: world.TileGrass, CanWalk: true, ObjectID: &rock}); err != ErrNoEffect {
		t.Fatalf("expected no effect on rock")
	}
	if err := Till(&world.Tile{Type: world.TileGrass, CanWalk: true, Warp: &world.Warp{}}); err != ErrNoEffect {
		t.Fatalf("expected no effect on warp")
	}
	if err := Till(&world.Tile{Type: world.TileWater}); err != ErrNoEffect {
		t.Fatalf("expected no effect on water")
	}
}

func TestGrowDayAdvancesWateredCrop(t *testing.T) {
	tile := &world.Tile{IsTilled: true, Crop: &world.Crop{ProduceID: catalog.Parsnip}}
	// Parsnip: 4 days, max stage 4.
	for day := 1; day <= 4; day++ {
		tile.Crop.IsWatered = true
		GrowDay(tile, catalog.Spring)
		if tile.Crop.DaysGrown != day || tile.Crop.Stage != day {
			t.Fatalf("day %d: got %+v", day, tile.Crop)
		}
	}
	if !Harvestable(tile) {
		t.Fatalf("expected harvestable crop")
	}
	tile.Crop.IsWatered = true
	GrowDay(tile, catalog.Spring)
	if tile.Crop.Stage != 4 {
		t.Fatalf("stage must cap at max, got %d", tile.Crop.Stage)
	}
}

func TestGrowDayKillsDryCrop(t *testing.T) {
	tile := &world.Tile{IsTilled: true, Crop: &world.Crop{ProduceID: catalog.Parsnip}}
	for i := 0; i < DryDaysTolerance; i++ {
		GrowDay(tile, catalog.Spring)
		if tile.Crop.Dead {
			t.Fatalf("crop died too early on dry day %d", i+1)
		}
	}
	GrowDay(tile, catalog.Spring)
	if !tile.Crop.Dead || Harvestable(tile) {
		t.Fatalf("expected dead crop")
	}
}

func TestGrowDayKillsOutOfSeasonCrop(t *testing.T) {
	tile := &world.Tile{IsTilled: true, Crop: &world.Crop{ProduceID: catalog.Parsnip, IsWatered: true}}
	GrowDay(tile, catalog.Summer)
	if !tile.Crop.Dead {
		t.Fatalf("expected crop to die when the season ends")
	}
}

func TestAdvanceDayResetsWateringAndRollsWeather(t *testing.T) {
	w := clearWorld(t)
	tile := tileAt(t, w, world.SceneFarm, 8, 7)
	tile.Type = world.TileDirt
	tile.IsTilled = true
	tile.IsWatered = true
	tile.Crop = &world.Crop{ProduceID: catalog.Parsnip, IsWatered: true}

	w.AdvanceDay(fixedRand(0.1))
	if w.Clock.Weather != world.WeatherSunny {
		t.Fatalf("expected sunny, got %s", w.Clock.Weather)
	}
	if tile.IsWatered || tile.Crop.IsWatered {
		t.Fatalf("watering must reset overnight")
	}
	if tile.Crop.DaysGrown != 1 {
		t.Fatalf("expected one day of growth, got %d", tile.Crop.DaysGrown)
	}

	w.AdvanceDay(fixedRand(0.8))
	if w.Clock.Weather != world.WeatherRainy {
		t.Fatalf("expected rain, got %s", w.Clock.Weather)
	}
	if !tile.IsWatered || !tile.Crop.IsWatered {
		t.Fatalf("rain should water tilled farm tiles")
	}
}

func TestRollWeather(t *testing.T) {
	cases := map[float64]world.Weather{
		0.0:  world.WeatherSunny,
		0.69: world.WeatherSunny,
		0.75: world.WeatherRainy,
		0.95: world.WeatherStormy,
	}
	for roll, want := range cases {
		if got := RollWeather(fixedRand(roll)); got != want {
			t.Fatalf("roll %.2f: got %s want %s", roll, got, want)
		}
	}
}

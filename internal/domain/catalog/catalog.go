// Package catalog holds the static item table. Every item belongs to exactly
// one category and carries only the fields valid for it; callers switch on
// the concrete type instead of probing optional fields.
package catalog

type ID int

type Category string

const (
	CategoryTool        Category = "tool"
	CategoryWeapon      Category = "weapon"
	CategorySeed        Category = "seed"
	CategoryCrop        Category = "crop"
	CategoryResource    Category = "resource"
	CategoryObstacle    Category = "obstacle"
	CategoryContainer   Category = "container"
	CategoryInteractive Category = "interactive"
	CategoryWarp        Category = "warp"
)

type Season string

const (
	Spring Season = "Spring"
	Summer Season = "Summer"
	Fall   Season = "Fall"
	Winter Season = "Winter"
)

var Seasons = []Season{Spring, Summer, Fall, Winter}

// SeasonAt maps a cyclic season index onto its name.
func SeasonAt(index int) Season {
	n := len(Seasons)
	return Seasons[((index%n)+n)%n]
}

type ToolAction string

const (
	ActionTill   ToolAction = "till"
	ActionWater  ToolAction = "water"
	ActionClear  ToolAction = "clear"
	ActionBreak  ToolAction = "break"
	ActionFish   ToolAction = "fish"
	ActionAttack ToolAction = "attack"
)

type Fixture string

const (
	FixtureShippingBin Fixture = "shipping_bin"
	FixtureShop        Fixture = "shop"
)

type Base struct {
	ID          ID
	Name        string
	Description string
	Price       int
	SellPrice   int
	Solid       bool
}

type Item interface {
	Info() Base
	Category() Category
}

type Tool struct {
	Base
	Action ToolAction
	Energy int
	Tier   int
}

type Weapon struct {
	Base
	MinDamage int
	MaxDamage int
	Energy    int
}

type Seed struct {
	Base
	CropID ID
}

type Crop struct {
	Base
	DaysToGrow    int
	Stages        int
	Seasons       []Season
	Edible        bool
	EnergyRestore int
}

type Resource struct {
	Base
	Edible        bool
	EnergyRestore int
}

type Obstacle struct {
	Base
	Drop ID
	Soft bool
}

type Container struct {
	Base
	Slots int
}

type Interactive struct {
	Base
	Fixture Fixture
}

type Warp struct {
	Base
}

func (t Tool) Info() Base        { return t.Base }
func (w Weapon) Info() Base      { return w.Base }
func (s Seed) Info() Base        { return s.Base }
func (c Crop) Info() Base        { return c.Base }
func (r Resource) Info() Base    { return r.Base }
func (o Obstacle) Info() Base    { return o.Base }
func (c Container) Info() Base   { return c.Base }
func (i Interactive) Info() Base { return i.Base }
func (w Warp) Info() Base        { return w.Base }

func (Tool) Category() Category        { return CategoryTool }
func (Weapon) Category() Category      { return CategoryWeapon }
func (Seed) Category() Category        { return CategorySeed }
func (Crop) Category() Category        { return CategoryCrop }
func (Resource) Category() Category    { return CategoryResource }
func (Obstacle) Category() Category    { return CategoryObstacle }
func (Container) Category() Category   { return CategoryContainer }
func (Interactive) Category() Category { return CategoryInteractive }
func (Warp) Category() Category        { return CategoryWarp }

// MaxStage is the stage index at which the crop can be harvested.
func (c Crop) MaxStage() int {
	if c.Stages <= 1 {
		return 0
	}
	return c.Stages - 1
}

func (c Crop) GrowsIn(season Season) bool {
	for _, s := range c.Seasons {
		if s == season {
			return true
		}
	}
	return false
}

func Lookup(id ID) (Item, bool) {
	item, ok := items[id]
	return item, ok
}

func Name(id ID) string {
	item, ok := items[id]
	if !ok {
		return ""
	}
	return item.Info().Name
}

func SellPrice(id ID) int {
	item, ok := items[id]
	if !ok {
		return 0
	}
	return item.Info().SellPrice
}

// BlocksMovement reports whether an object on a tile stops the player from
// stepping onto it.
func BlocksMovement(id ID) bool {
	item, ok := items[id]
	if !ok {
		return false
	}
	switch item.(type) {
	case Interactive, Container:
		return true
	default:
		return item.Info().Solid
	}
}

// EnergyCost is what a successful use of the item costs the player.
func EnergyCost(item Item) int {
	switch v := item.(type) {
	case Tool:
		return v.Energy
	case Weapon:
		return v.Energy
	default:
		return 0
	}
}

// Edible returns the energy restored by eating the item.
func Edible(id ID) (int, bool) {
	item, ok := items[id]
	if !ok {
		return 0, false
	}
	switch v := item.(type) {
	case Crop:
		return v.EnergyRestore, v.Edible && v.EnergyRestore > 0
	case Resource:
		return v.EnergyRestore, v.Edible && v.EnergyRestore > 0
	default:
		return 0, false
	}
}

// CropFor resolves the produce definition a seed grows into.
func CropFor(seed Seed) (Crop, bool) {
	item, ok := items[seed.CropID]
	if !ok {
		return Crop{}, false
	}
	crop, ok := item.(Crop)
	return crop, ok
}

func ShopItems() []ID {
	out := make([]ID, len(shopInventory))
	copy(out, shopInventory)
	return out
}

func InShop(id ID) bool {
	for _, s := range shopInventory {
		if s == id {
			return true
		}
	}
	return false
}

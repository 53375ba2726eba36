package valley

import "time"

const (
	InventorySize = 24
	ContainerSize = 9

	MaxEnergy     = 100
	MaxHP         = 100
	StartingMoney = 50

	AffectionPerTalk = 10
	MaxAffection     = 250

	DeathPenaltyRate = 0.1
	DeathPenaltyCap  = 1000

	// A crop left dry for more than this many consecutive days dies.
	DryDaysTolerance = 2

	SlimeHP     = 20
	SlimeDamage = 5

	// Monsters act on a tick with this probability.
	MonsterActChance = 0.3
	MeleeRange       = 1.1
	ChaseRange       = 5.0

	FloatingTextLife  = 40
	FloatingTextDrift = 0.02

	ChanceSunny = 0.7
	ChanceRainy = 0.2
)

const (
	ShortMessage  = time.Second
	MediumMessage = 1500 * time.Millisecond
	LongMessage   = 2 * time.Second
	NoticeMessage = 3 * time.Second
)

const (
	MsgInventoryFull = "Inventory Full!"
	MsgTooTired      = "Too tired!"
	MsgWrongSeason   = "Wrong season for this seed!"
	MsgNotEdible     = "This item isn't edible"
	MsgNotEnoughGold = "Not enough gold!"
	MsgNewDay        = "You passed out... a new day begins!"
	MsgLoaded        = "Game loaded!"
)

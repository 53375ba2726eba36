package catalog

const (
	Weed         ID = 0
	StoneNode    ID = 2
	Twig         ID = 4
	Daffodil     ID = 18
	Parsnip      ID = 24
	CopperNode   ID = 75
	IronNode     ID = 76
	GoldNode     ID = 77
	Hoe          ID = 101
	WateringCan  ID = 102
	Axe          ID = 103
	Pickaxe      ID = 104
	RustySword   ID = 105
	Scythe       ID = 106
	FishingRod   ID = 107
	Chest        ID = 130
	Potato       ID = 192
	CopperOre    ID = 378
	IronOre      ID = 380
	GoldOre      ID = 384
	Wood         ID = 388
	Stone        ID = 390
	ParsnipSeeds ID = 472
	PotatoSeeds  ID = 474
	Fiber        ID = 771
	LadderDown   ID = 903
	LadderUp     ID = 904
	Mailbox      ID = 998
	ShippingBin  ID = 999
)

var shopInventory = []ID{ParsnipSeeds, PotatoSeeds}

var items = map[ID]Item{
	Weed:       Obstacle{Base: Base{ID: Weed, Name: "Weed"}, Drop: Fiber, Soft: true},
	StoneNode:  Obstacle{Base: Base{ID: StoneNode, Name: "Stone Node", Solid: true}, Drop: Stone},
	Twig:       Obstacle{Base: Base{ID: Twig, Name: "Twig", Solid: true}, Drop: Wood, Soft: true},
	CopperNode: Obstacle{Base: Base{ID: CopperNode, Name: "Copper Ore Node", Solid: true}, Drop: CopperOre},
	IronNode:   Obstacle{Base: Base{ID: IronNode, Name: "Iron Ore Node", Solid: true}, Drop: IronOre},
	GoldNode:   Obstacle{Base: Base{ID: GoldNode, Name: "Gold Ore Node", Solid: true}, Drop: GoldOre},

	Daffodil:  Resource{Base: Base{ID: Daffodil, Name: "Daffodil", SellPrice: 30}},
	Wood:      Resource{Base: Base{ID: Wood, Name: "Wood", SellPrice: 2, Description: "A basic building material."}},
	Stone:     Resource{Base: Base{ID: Stone, Name: "Stone", SellPrice: 2, Description: "A common material."}},
	CopperOre: Resource{Base: Base{ID: CopperOre, Name: "Copper Ore", SellPrice: 5, Description: "A common ore. Can be smelted."}},
	IronOre:   Resource{Base: Base{ID: IronOre, Name: "Iron Ore", SellPrice: 10, Description: "A fairly common ore."}},
	GoldOre:   Resource{Base: Base{ID: GoldOre, Name: "Gold Ore", SellPrice: 25, Description: "A precious ore."}},
	Fiber:     Resource{Base: Base{ID: Fiber, Name: "Fiber", SellPrice: 1, Description: "Raw material sourced from plants."}},

	ParsnipSeeds: Seed{Base: Base{ID: ParsnipSeeds, Name: "Parsnip Seeds", Price: 20, Description: "Spring. 4 Days."}, CropID: Parsnip},
	Parsnip: Crop{
		Base:          Base{ID: Parsnip, Name: "Parsnip", SellPrice: 35},
		DaysToGrow:    4,
		Stages:        5,
		Seasons:       []Season{Spring},
		Edible:        true,
		EnergyRestore: 25,
	},
	PotatoSeeds: Seed{Base: Base{ID: PotatoSeeds, Name: "Potato Seeds", Price: 50, Description: "Spring. 6 Days."}, CropID: Potato},
	Potato: Crop{
		Base:       Base{ID: Potato, Name: "Potato", SellPrice: 80},
		DaysToGrow: 6,
		Stages:     5,
		Seasons:    []Season{Spring},
	},

	Hoe:         Tool{Base: Base{ID: Hoe, Name: "Hoe", Description: "Used to till soil."}, Action: ActionTill, Energy: 2, Tier: 1},
	WateringCan: Tool{Base: Base{ID: WateringCan, Name: "Watering Can", Description: "Used to water crops."}, Action: ActionWater, Energy: 2, Tier: 1},
	Axe:         Tool{Base: Base{ID: Axe, Name: "Axe", Description: "Used to chop wood."}, Action: ActionClear, Energy: 2, Tier: 1},
	Pickaxe:     Tool{Base: Base{ID: Pickaxe, Name: "Pickaxe", Description: "Used to break stones."}, Action: ActionBreak, Energy: 2, Tier: 1},
	Scythe:      Tool{Base: Base{ID: Scythe, Name: "Scythe", Description: "Cuts grass and weeds"}, Action: ActionClear, Tier: 1},
	FishingRod:  Tool{Base: Base{ID: FishingRod, Name: "Fishing Rod", Description: "Cast into water to fish"}, Action: ActionFish, Tier: 1},
	RustySword:  Weapon{Base: Base{ID: RustySword, Name: "Rusty Sword", Description: "A rusty old sword."}, MinDamage: 2, MaxDamage: 4},

	Chest: Container{Base: Base{ID: Chest, Name: "Chest", Solid: true, Description: "Stores items."}, Slots: 9},

	LadderDown: Warp{Base: Base{ID: LadderDown, Name: "Ladder Down"}},
	LadderUp:   Warp{Base: Base{ID: LadderUp, Name: "Ladder Up"}},

	ShippingBin: Interactive{Base: Base{ID: ShippingBin, Name: "Shipping Bin", Description: "Ship items."}, Fixture: FixtureShippingBin},
	Mailbox:     Interactive{Base: Base{ID: Mailbox, Name: "Mailbox", Description: "Order seeds."}, Fixture: FixtureShop},
}

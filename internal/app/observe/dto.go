package observe

import (
	"ogvalley/internal/domain/catalog"
	"ogvalley/internal/domain/valley"
	"ogvalley/internal/domain/world"
)

type Response struct {
	Scene         world.Scene           `json:"scene"`
	Grid          world.Grid            `json:"grid"`
	Player        valley.Player         `json:"player"`
	NPCs          []valley.NPC          `json:"npcs"`
	Monsters      []valley.Monster      `json:"monsters"`
	UIMode        valley.UIMode         `json:"ui_mode"`
	ActiveKey     string                `json:"active_container_key,omitempty"`
	Container     valley.Slots          `json:"container,omitempty"`
	FloatingTexts []valley.FloatingText `json:"floating_texts"`
	Message       *valley.Message       `json:"message,omitempty"`
	Dialogue      *valley.Dialogue      `json:"dialogue,omitempty"`
	Tooltip       *Tooltip              `json:"tooltip,omitempty"`
	Clock         ClockView             `json:"clock"`
	Shop          []ShopItem            `json:"shop,omitempty"`
}

type Tooltip struct {
	ItemID      catalog.ID       `json:"item_id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Category    catalog.Category `json:"category"`
	SellPrice   int              `json:"sell_price"`
}

type ClockView struct {
	Day     int            `json:"day"`
	Time    int            `json:"time"`
	Display string         `json:"display"`
	Season  catalog.Season `json:"season"`
	Weather world.Weather  `json:"weather"`
	Paused  bool           `json:"paused"`
}

type ShopItem struct {
	ItemID catalog.ID `json:"item_id"`
	Name   string     `json:"name"`
	Price  int        `json:"price"`
}

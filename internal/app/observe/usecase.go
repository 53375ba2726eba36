package observe

import (
	"context"
	"fmt"

	"ogvalley/internal/app/ports"
	"ogvalley/internal/domain/catalog"
	"ogvalley/internal/domain/valley"
	"ogvalley/internal/domain/world"
)

type UseCase struct {
	Session ports.WorldSession
}

// Execute copies out everything a renderer needs for the current scene. The
// response shares no memory with the live world.
func (u UseCase) Execute(ctx context.Context) (Response, error) {
	var resp Response
	err := u.Session.Do(ctx, func(w *valley.World) error {
		resp = project(w.Clone())
		return nil
	})
	if err != nil {
		return Response{}, err
	}
	return resp, nil
}

func project(w *valley.World) Response {
	scene := w.CurrentScene
	resp := Response{
		Scene:         scene,
		Grid:          w.Grid(),
		Player:        w.Player,
		NPCs:          []valley.NPC{},
		Monsters:      []valley.Monster{},
		UIMode:        w.UIMode,
		FloatingTexts: []valley.FloatingText{},
		Message:       w.Feedback.Message,
		Dialogue:      w.Dialogue,
		Clock:         clockView(w.Clock),
	}
	for _, n := range w.NPCs {
		if n.Scene == scene {
			resp.NPCs = append(resp.NPCs, n)
		}
	}
	for _, m := range w.Monsters {
		if m.Scene == scene && m.HP > 0 {
			resp.Monsters = append(resp.Monsters, m)
		}
	}
	for _, ft := range w.Feedback.Floating {
		if ft.Scene == scene {
			resp.FloatingTexts = append(resp.FloatingTexts, ft)
		}
	}
	if w.UIMode == valley.ModeChest && w.ActiveContainer != "" {
		resp.ActiveKey = w.ActiveContainer
		resp.Container = w.Containers[w.ActiveContainer]
	}
	if w.Tooltip != nil {
		resp.Tooltip = tooltipFor(*w.Tooltip)
	}
	if w.UIMode == valley.ModeShop {
		resp.Shop = shopItems()
	}
	return resp
}

func tooltipFor(id catalog.ID) *Tooltip {
	item, ok := catalog.Lookup(id)
	if !ok {
		return nil
	}
	info := item.Info()
	return &Tooltip{
		ItemID:      id,
		Name:        info.Name,
		Description: info.Description,
		Category:    item.Category(),
		SellPrice:   info.SellPrice,
	}
}

func shopItems() []ShopItem {
	ids := catalog.ShopItems()
	out := make([]ShopItem, 0, len(ids))
	for _, id := range ids {
		item, ok := catalog.Lookup(id)
		if !ok {
			continue
		}
		out = append(out, ShopItem{ItemID: id, Name: item.Info().Name, Price: item.Info().Price})
	}
	return out
}

func clockView(s world.ClockState) ClockView {
	return ClockView{
		Day:     s.Day,
		Time:    s.Time,
		Display: FormatTime(s.Time),
		Season:  s.Season(),
		Weather: s.Weather,
		Paused:  s.IsPaused,
	}
}

// FormatTime renders minutes since midnight as a 12-hour clock. Times past
// midnight wrap.
func FormatTime(minutes int) string {
	h := (minutes / 60) % 24
	m := minutes % 60
	suffix := "AM"
	if h >= 12 {
		suffix = "PM"
	}
	h12 := h % 12
	if h12 == 0 {
		h12 = 12
	}
	return fmt.Sprintf("%d:%02d %s", h12, m, suffix)
}

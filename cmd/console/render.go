package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"ogvalley/internal/app/observe"
	"ogvalley/internal/domain/catalog"
	"ogvalley/internal/domain/valley"
	"ogvalley/internal/domain/world"
)

var (
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	playerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true)
	npcStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)
	monsterStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	cropStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	waterStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("33"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	messageStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	selectedSlot = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("205"))
	panelStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("62")).Padding(0, 1)
)

var terrainGlyphs = map[world.TileType]rune{
	world.TileGrass:      '.',
	world.TileDirt:       ':',
	world.TileWater:      '~',
	world.TileHouseFloor: '_',
	world.TileStoneFloor: ',',
	world.TileDarkDirt:   ' ',
}

// tileGlyph is the plain character for a tile, before entities are drawn
// over it.
func tileGlyph(t world.Tile) rune {
	if id, ok := t.Object(); ok {
		return objectGlyph(id)
	}
	if t.Crop != nil {
		switch {
		case t.Crop.Dead:
			return 'x'
		case cropReady(*t.Crop):
			return 'P'
		default:
			return rune('0' + min(t.Crop.Stage, 9))
		}
	}
	if t.Warp != nil {
		return '>'
	}
	if t.IsTilled {
		if t.IsWatered {
			return '#'
		}
		return '='
	}
	if g, ok := terrainGlyphs[t.Type]; ok {
		return g
	}
	return '?'
}

func cropReady(c world.Crop) bool {
	item, ok := catalog.Lookup(c.ProduceID)
	if !ok {
		return false
	}
	crop, ok := item.(catalog.Crop)
	return ok && c.Stage >= crop.MaxStage()
}

func objectGlyph(id catalog.ID) rune {
	item, ok := catalog.Lookup(id)
	if !ok {
		return '?'
	}
	switch v := item.(type) {
	case catalog.Obstacle:
		if v.Soft {
			return '"'
		}
		return 'o'
	case catalog.Resource:
		return '*'
	case catalog.Container:
		return 'C'
	case catalog.Interactive:
		if v.Fixture == catalog.FixtureShop {
			return 'M'
		}
		return '$'
	case catalog.Warp:
		return '^'
	default:
		return '?'
	}
}

func renderGrid(s observe.Response) string {
	entities := map[world.Point]string{}
	for _, n := range s.NPCs {
		entities[world.Point{X: n.X, Y: n.Y}] = npcStyle.Render("N")
	}
	for _, m := range s.Monsters {
		entities[world.Point{X: m.X, Y: m.Y}] = monsterStyle.Render("s")
	}
	entities[world.Point{X: s.Player.X, Y: s.Player.Y}] = playerStyle.Render("@")

	var b strings.Builder
	for y, row := range s.Grid {
		for x, t := range row {
			if e, ok := entities[world.Point{X: x, Y: y}]; ok {
				b.WriteString(e)
				continue
			}
			g := string(tileGlyph(t))
			switch {
			case t.Crop != nil:
				g = cropStyle.Render(g)
			case t.Type == world.TileWater:
				g = waterStyle.Render(g)
			}
			b.WriteString(g)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func renderStatus(s observe.Response) string {
	c := s.Clock
	lines := []string{
		titleStyle.Render(fmt.Sprintf("%s  Day %d  %s", c.Season, c.Day, c.Display)),
		fmt.Sprintf("%s  %s", c.Weather, s.Scene),
		fmt.Sprintf("Energy %d/%d  HP %d/%d", s.Player.Energy, s.Player.MaxEnergy, s.Player.HP, s.Player.MaxHP),
		fmt.Sprintf("Gold %d", s.Player.Money),
	}
	if c.Paused {
		lines = append(lines, dimStyle.Render("paused"))
	}
	if sel := s.Player.Inventory.At(s.Player.SelectedSlot); sel != nil {
		lines = append(lines, "Holding "+stackLabel(sel))
	}
	if s.Player.CursorItem != nil {
		lines = append(lines, "Cursor "+stackLabel(s.Player.CursorItem))
	}
	return strings.Join(lines, "\n")
}

func stackLabel(st *valley.ItemStack) string {
	name := catalog.Name(st.ItemID)
	if name == "" {
		name = fmt.Sprintf("#%d", st.ItemID)
	}
	if st.Count > 1 {
		return fmt.Sprintf("%s x%d", name, st.Count)
	}
	return name
}

func renderSlots(title string, slots valley.Slots, selected int) string {
	lines := []string{titleStyle.Render(title)}
	for i, st := range slots {
		label := dimStyle.Render("-")
		if st != nil {
			label = stackLabel(st)
		}
		line := fmt.Sprintf("%2d %s", i+1, label)
		if i == selected {
			line = selectedSlot.Render(line)
		}
		lines = append(lines, line)
	}
	return panelStyle.Render(strings.Join(lines, "\n"))
}

func renderShop(items []observe.ShopItem) string {
	lines := []string{titleStyle.Render("Shop")}
	for i, it := range items {
		lines = append(lines, fmt.Sprintf("%d %s  %dg", i+1, it.Name, it.Price))
	}
	return panelStyle.Render(strings.Join(lines, "\n"))
}

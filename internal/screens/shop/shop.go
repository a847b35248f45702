package shop

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/arnavj/mathsprint/internal/engine"
	"github.com/arnavj/mathsprint/internal/screen"
	"github.com/arnavj/mathsprint/internal/shop"
	"github.com/arnavj/mathsprint/internal/ui/components"
	"github.com/arnavj/mathsprint/internal/ui/layout"
	"github.com/arnavj/mathsprint/internal/ui/theme"
)

// ShopScreen lists the catalog and handles purchases.
type ShopScreen struct {
	eng    *engine.Engine
	items  []shop.Item
	cursor int
	coins  int

	status    string
	statusBad bool
}

var _ screen.Screen = (*ShopScreen)(nil)
var _ screen.KeyHintProvider = (*ShopScreen)(nil)

// New creates a new ShopScreen with the current coin balance.
func New(eng *engine.Engine) *ShopScreen {
	s := &ShopScreen{eng: eng, items: shop.Catalog()}
	if p, err := eng.Profile(context.Background()); err == nil {
		s.coins = p.Coins
	}
	return s
}

func (s *ShopScreen) Init() tea.Cmd {
	return nil
}

func (s *ShopScreen) Title() string {
	return "Shop"
}

func (s *ShopScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Buy"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ShopScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
		s.status = ""
	case "down", "j":
		if s.cursor < len(s.items)-1 {
			s.cursor++
		}
		s.status = ""
	case "enter":
		return s, s.buy()
	}
	return s, nil
}

func (s *ShopScreen) buy() tea.Cmd {
	item := s.items[s.cursor]

	res, err := s.eng.Purchase(context.Background(), item.ID)
	if errors.Is(err, shop.ErrInsufficientFunds) {
		s.status = fmt.Sprintf("Not enough coins. %s costs %d, you have %d.", item.Name, item.Price, s.coins)
		s.statusBad = true
		return nil
	}
	if err != nil {
		s.status = err.Error()
		s.statusBad = true
		return nil
	}

	s.coins = res.Profile.Coins
	s.statusBad = false
	if res.ChestReward != nil {
		r := res.ChestReward
		s.status = fmt.Sprintf("%s chest! +%d coins, +%d XP", r.Rarity.DisplayName(), r.Coins, r.XP)
	} else {
		s.status = fmt.Sprintf("Bought %s!", item.Name)
	}

	p := res.Profile
	return func() tea.Msg { return screen.ProfileUpdatedMsg{Profile: p} }
}

func (s *ShopScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var b strings.Builder
	b.WriteString(theme.Coins.Render(fmt.Sprintf("Your coins: %d", s.coins)))
	b.WriteString("\n\n")

	for i, item := range s.items {
		b.WriteString(s.renderItem(item, i == s.cursor, cw))
		b.WriteString("\n")
	}

	if s.status != "" {
		style := lipgloss.NewStyle().Foreground(theme.Success)
		if s.statusBad {
			style = style.Foreground(theme.Error)
		}
		b.WriteString("\n")
		b.WriteString(style.Render(s.status))
	}

	return components.BoardFrame(b.String(), width, height)
}

func (s *ShopScreen) renderItem(item shop.Item, selected bool, cw int) string {
	prefix := "  "
	if selected {
		prefix = "▸ "
	}

	name := fmt.Sprintf("%-16s", item.Name)
	price := theme.Coins.Render(fmt.Sprintf("%4d ●", item.Price))
	desc := lipgloss.NewStyle().Foreground(theme.TextDim).Render("  " + item.Description)

	style := theme.Unselected
	if selected {
		style = theme.Selected
	}
	if item.Price > s.coins {
		style = theme.Locked
	}
	return style.Render(prefix+name) + price + desc
}

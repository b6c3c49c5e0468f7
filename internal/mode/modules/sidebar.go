package modules

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"

	"github.com/zjrosen/berth/internal/catalog"
	"github.com/zjrosen/berth/internal/ui/styles"
)

// sidebarItem is one row in the module list.
type sidebarItem struct {
	key         catalog.Key
	label       string
	placeholder bool
}

func zoneID(prefix string, index int) string {
	return fmt.Sprintf("%smodule-%d", prefix, index)
}

// renderSidebar renders the module list. Each row is a click zone.
func renderSidebar(items []sidebarItem, active, width int, zonePrefix string) string {
	var sb strings.Builder
	textWidth := max(width-3, 1)

	for i, item := range items {
		label := ansi.Truncate(item.label, textWidth, "…")

		var line string
		switch {
		case i == active:
			line = styles.SelectionIndicatorStyle.Render("●") + " " + styles.SelectedItemStyle.Render(label)
		case item.placeholder:
			line = "  " + styles.PlaceholderItemStyle.Render(label)
		default:
			line = "  " + styles.ItemStyle.Render(label)
		}

		sb.WriteString(zone.Mark(zoneID(zonePrefix, i), line))
		if i < len(items)-1 {
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

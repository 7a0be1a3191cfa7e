package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/term-invaders/internal/core"
)

// background is the color behind every cell of the playfield.
var background = tcell.ColorBlack

func fg(index int) tcell.Style {
	return tcell.StyleDefault.Background(background).Foreground(tcell.PaletteColor(index))
}

// colorStyles maps core.Color to tcell styles (ANSI 256-color palette).
var colorStyles = map[core.Color]tcell.Style{
	core.ColorDefault:      tcell.StyleDefault.Background(background),
	core.ColorRed:          fg(1),
	core.ColorGreen:        fg(2),
	core.ColorYellow:       fg(3),
	core.ColorBlue:         fg(4),
	core.ColorMagenta:      fg(5),
	core.ColorCyan:         fg(6),
	core.ColorWhite:        fg(7),
	core.ColorBrightRed:    fg(9),
	core.ColorBrightGreen:  fg(10),
	core.ColorBrightYellow: fg(11),
	core.ColorBrightCyan:   fg(14),
	core.ColorBrightWhite:  fg(15),
	core.ColorOrange:       fg(208),
	core.ColorGray:         fg(245),
}

// StyleFor returns the tcell style for a frame color.
func StyleFor(c core.Color) tcell.Style {
	style, ok := colorStyles[c]
	if !ok {
		return colorStyles[core.ColorDefault]
	}
	return style
}

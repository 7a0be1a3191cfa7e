package core

// Drawable is anything that can paint itself onto a frame.
// Implementations write their own glyphs at their own coordinates and rely on
// Frame.Set to clip anything that falls outside the grid.
type Drawable interface {
	Draw(dst *Frame)
}

// DrawAll paints the drawables onto dst in argument order.
// When two drawables use the same cell the one drawn last wins.
func DrawAll(dst *Frame, ds ...Drawable) {
	for _, d := range ds {
		d.Draw(dst)
	}
}

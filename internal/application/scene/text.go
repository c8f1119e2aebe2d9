package scene

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// Face is the font used by every screen
var Face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)

// DrawText draws str with its top-left corner at (x, y), scaled by scale.
func DrawText(dst *ebiten.Image, str string, x, y, scale float64, clr color.Color) {
	op := &ebtext.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	ebtext.Draw(dst, str, Face, op)
}

// DrawTextCentered draws str horizontally centered on cx.
func DrawTextCentered(dst *ebiten.Image, str string, cx, y, scale float64, clr color.Color) {
	w, _ := ebtext.Measure(str, Face, 0)
	DrawText(dst, str, cx-w*scale/2, y, scale, clr)
}

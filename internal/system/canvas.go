// internal/system/canvas.go
package system

import (
	"image"
	"image/color"
)

// Canvas: то, на чём рисует RenderSystem.
type Canvas interface {
	Fill(clr color.Color)
	StrokeLine(x0, y0, x1, y1, width float32, clr color.Color)
	FillCircle(cx, cy, r float32, clr color.Color)
}

// Surface is a Canvas whose pixels can be read back for capture.
type Surface interface {
	Canvas
	Snapshot() (image.Image, error)
}

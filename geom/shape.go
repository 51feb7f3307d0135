package geom

// Painter receives primitives, usually a drawing surface.
type Painter interface {
	DrawDot(d Dot)
	DrawLine(l Line)
}

// Shape is a primitive that knows how to hand itself to a Painter.
type Shape interface {
	Paint(p Painter)
}

// PaintAll paints every shape in order
func PaintAll(p Painter, shapes []Shape) {
	for _, s := range shapes {
		s.Paint(p)
	}
}

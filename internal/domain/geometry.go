package domain

import "fmt"

// AnnotationKind - тип фигуры аннотации
type AnnotationKind string

const (
	AnnotationRectangle AnnotationKind = "rectangle"
	AnnotationCircle    AnnotationKind = "circle"
	AnnotationArrow     AnnotationKind = "arrow"
	AnnotationFreehand  AnnotationKind = "freehand"
)

// Point - точка freehand-линии в нормализованных координатах
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Geometry - геометрия фигуры. Заполняются только поля своего типа фигуры.
// Все координаты нормализованы к размеру скриншота и должны лежать в [0,1];
// радиус круга - доля меньшей стороны.
type Geometry struct {
	// rectangle
	X *float64 `json:"x,omitempty"`
	Y *float64 `json:"y,omitempty"`
	W *float64 `json:"w,omitempty"`
	H *float64 `json:"h,omitempty"`

	// circle
	CX *float64 `json:"cx,omitempty"`
	CY *float64 `json:"cy,omitempty"`
	R  *float64 `json:"r,omitempty"`

	// arrow
	X1 *float64 `json:"x1,omitempty"`
	Y1 *float64 `json:"y1,omitempty"`
	X2 *float64 `json:"x2,omitempty"`
	Y2 *float64 `json:"y2,omitempty"`

	// freehand
	Points []Point `json:"points,omitempty"`
}

func inUnit(v *float64) bool {
	return v != nil && *v >= 0 && *v <= 1
}

// ValidateGeometry проверяет геометрию аннотации для данного типа фигуры.
// Возвращает ErrInvalidGeometry с пояснением при нарушении инвариантов.
func ValidateGeometry(kind AnnotationKind, g Geometry) error {
	switch kind {
	case AnnotationRectangle:
		if !inUnit(g.X) || !inUnit(g.Y) || !inUnit(g.W) || !inUnit(g.H) {
			return invalidGeometry("rectangle requires x, y, w, h in [0,1]")
		}
		if *g.X+*g.W > 1 || *g.Y+*g.H > 1 {
			return invalidGeometry("rectangle must not extend past the screenshot edge")
		}
	case AnnotationCircle:
		if !inUnit(g.CX) || !inUnit(g.CY) || !inUnit(g.R) {
			return invalidGeometry("circle requires cx, cy, r in [0,1]")
		}
	case AnnotationArrow:
		if !inUnit(g.X1) || !inUnit(g.Y1) || !inUnit(g.X2) || !inUnit(g.Y2) {
			return invalidGeometry("arrow requires x1, y1, x2, y2 in [0,1]")
		}
	case AnnotationFreehand:
		if len(g.Points) < 2 {
			return invalidGeometry("freehand requires at least 2 points")
		}
		for i, p := range g.Points {
			if p.X < 0 || p.X > 1 || p.Y < 0 || p.Y > 1 {
				return invalidGeometry(fmt.Sprintf("freehand point %d is out of [0,1]", i))
			}
		}
	default:
		return invalidGeometry("unknown annotation kind " + string(kind))
	}
	return nil
}

func invalidGeometry(msg string) *Error {
	return NewError(ErrInvalidGeometry.Status, ErrInvalidGeometry.Code, msg, nil)
}

package model

// SurfaceCategory selects which preparation-time rate applies to a surface.
type SurfaceCategory string

const (
	CategoryWall    SurfaceCategory = "wall"
	CategoryCeiling SurfaceCategory = "ceiling"
	CategoryDoor    SurfaceCategory = "door"
	CategoryLinear  SurfaceCategory = "linear"
)

// Valid reports whether c is one of the four known categories.
func (c SurfaceCategory) Valid() bool {
	switch c {
	case CategoryWall, CategoryCeiling, CategoryDoor, CategoryLinear:
		return true
	}
	return false
}

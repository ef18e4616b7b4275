package figure

import "math"

// Physical sizing constants, in centimeters. BaseWidth fills one column of
// a two-column printed page; the minimums keep every panel legible.
const (
	BaseWidth = 15.0
	MinWidth  = 8.0
	MinHeight = 4.0

	rowDecay = 0.8
	colDecay = 0.9
)

// Dimensions is the physical size of a full figure, in centimeters.
type Dimensions struct {
	Width  float64
	Height float64
}

// aspectTable maps curated grid shapes to a width:height ratio chosen for
// visual balance. Shapes outside the table fall back to the decay formula
// in ComputeDimensions.
var aspectTable = map[GridShape]float64{
	{Rows: 1, Cols: 1}: 3.0,
	{Rows: 2, Cols: 1}: 2.5,
	{Rows: 3, Cols: 1}: 1.5,
	{Rows: 4, Cols: 1}: 1.25,
	{Rows: 1, Cols: 2}: 3.0,
	{Rows: 1, Cols: 3}: 3.0,
	{Rows: 1, Cols: 4}: 3.0,
	{Rows: 2, Cols: 2}: 2.5,
}

// ComputeDimensions maps a grid shape to physical figure dimensions.
//
// Shapes in the curated aspect table size to (BaseWidth, BaseWidth/ratio)
// exactly, with no interpolation. Any other shape uses a geometric decay:
// width shrinks by 0.9 per extra column and height by 0.8 per extra row,
// approximating how panels compress within a fixed page area, clamped to
// the documented minimums.
//
// The returned dimensions always satisfy Width >= MinWidth and
// Height >= MinHeight. The function is pure: the same shape always yields
// the identical result.
func ComputeDimensions(shape GridShape) (Dimensions, error) {
	if err := shape.Validate(); err != nil {
		return Dimensions{}, err
	}

	if ratio, ok := aspectTable[shape]; ok {
		return Dimensions{Width: BaseWidth, Height: BaseWidth / ratio}, nil
	}

	rowFactor := math.Pow(rowDecay, float64(shape.Rows-1))
	colFactor := math.Pow(colDecay, float64(shape.Cols-1))

	return Dimensions{
		Width:  math.Max(BaseWidth*colFactor, MinWidth),
		Height: math.Max(BaseWidth/3*rowFactor, MinHeight),
	}, nil
}

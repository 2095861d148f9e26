package svgicon

import (
	"fmt"
	"math"
)

// TargetSize is the edge length of the normalized square frame all icon
// geometry is rescaled into.
const TargetSize = 24.0

// MaxDecimals is the precision scaled parameters are rounded to before
// serialization.
const MaxDecimals = 3

// Mode selects the viewBox policy.
type Mode uint8

const (
	// StrictSquare rejects offset or non-square viewBoxes (beyond a 1%
	// tolerance) and scales uniformly.
	StrictSquare Mode = iota
	// Centering accepts any positive dimensions and any offset, and
	// centers the shorter axis inside the square target frame.
	Centering
)

// ViewBox is the source coordinate frame declared on an SVG root.
type ViewBox struct {
	X, Y, W, H float64
}

// Frame is a resolved viewBox: the scale and shift every parameter of the
// document is rewritten under. Derived once per document, immutable.
type Frame struct {
	ViewBox
	Shortest, Longest float64
	ShiftX, ShiftY    float64
}

// ParseViewBox reads the four whitespace-separated values of a viewBox
// attribute.
func ParseViewBox(attr string) (ViewBox, error) {
	nums := scanNumbers(attr)
	if len(nums) != 4 {
		return ViewBox{}, fmt.Errorf("%w: viewBox needs 4 values, got %d", ErrParamMismatch, len(nums))
	}
	return ViewBox{nums[0], nums[1], nums[2], nums[3]}, nil
}

// ResolveFrame validates a viewBox under the given mode and computes the
// scale frame for the document.
func ResolveFrame(vb ViewBox, mode Mode) (Frame, error) {
	if vb.W <= 0 || vb.H <= 0 {
		return Frame{}, fmt.Errorf("%w: degenerate dimensions %gx%g", ErrParamMismatch, vb.W, vb.H)
	}
	longest := math.Max(vb.W, vb.H)
	shortest := math.Min(vb.W, vb.H)
	switch mode {
	case StrictSquare:
		if math.Abs(vb.W-vb.H) > 0.01*longest {
			return Frame{}, fmt.Errorf("%w: %gx%g", ErrNonSquareViewBox, vb.W, vb.H)
		}
		if vb.X != 0 || vb.Y != 0 {
			return Frame{}, fmt.Errorf("%w: %g,%g", ErrOffsetViewBox, vb.X, vb.Y)
		}
		// Within tolerance the frame is treated as a square of the
		// longer edge.
		return Frame{
			ViewBox:  ViewBox{0, 0, longest, longest},
			Shortest: longest,
			Longest:  longest,
		}, nil
	default:
		f := Frame{ViewBox: vb, Shortest: shortest, Longest: longest}
		shift := (longest - shortest) / longest * TargetSize / 2
		if vb.W < vb.H {
			f.ShiftX = shift
		} else if vb.H < vb.W {
			f.ShiftY = shift
		}
		return f, nil
	}
}

// scaleAxis rescales one axis-tagged value: scale into target units,
// remove the source offset, apply the centering shift.
func (f *Frame) scaleAxis(v, axisOffset, shift float64) float64 {
	scaled := v / f.Longest * TargetSize
	offset := axisOffset / f.Longest * TargetSize
	return roundTo(scaled-offset+shift, MaxDecimals)
}

// ScaleX rescales an x-coordinate into the target frame.
func (f *Frame) ScaleX(v float64) float64 { return f.scaleAxis(v, f.X, f.ShiftX) }

// ScaleY rescales a y-coordinate into the target frame.
func (f *Frame) ScaleY(v float64) float64 { return f.scaleAxis(v, f.Y, f.ShiftY) }

// ScaleMin rescales a radius-like value by the shorter viewBox edge, with
// no offset or shift.
func (f *Frame) ScaleMin(v float64) float64 {
	return roundTo(v/f.Shortest*TargetSize, MaxDecimals)
}

func roundTo(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	r := math.Round(v*p) / p
	if r == 0 {
		return 0 // avoid -0 in output
	}
	return r
}

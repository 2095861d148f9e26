// The svgicon package converts SVG shape primitives into normalized path
// command sequences within a unified 0–24 viewBox, for reuse as inline
// icon data. It rewrites path data rather than rendering it: each
// geometric parameter is classified by axis and rescaled under the
// document's viewBox transform, then re-serialized as valid path syntax.

package svgicon

import (
	"bytes"
	"strings"

	"github.com/rs/zerolog"
)

// IconResult is the converted form of one source file. Concat is set only
// when the icon yielded more than one shape; it is valid as a single path
// only when fill/stroke/colour are uniform across the source shapes,
// which the caller must verify.
type IconResult struct {
	IconName string   `json:"iconName"`
	Paths    []string `json:"paths"`
	Classes  []string `json:"classes"`
	Concat   *string  `json:"concat"`
}

// Converter holds the immutable configuration for a run. Tables are
// injected at construction rather than referenced as globals so the
// pipeline is testable in isolation.
type Converter struct {
	Mode         Mode
	ColorClasses map[string]string
	Log          zerolog.Logger
}

// NewConverter returns a Converter with the default palette table and a
// no-op diagnostic logger.
func NewConverter(mode Mode) *Converter {
	return &Converter{
		Mode:         mode,
		ColorClasses: DefaultColorClasses,
		Log:          zerolog.Nop(),
	}
}

// Convert runs the full pipeline over one SVG source. All state is local
// to the call; a failure aborts this document only.
func (c *Converter) Convert(iconName string, src []byte) (*IconResult, error) {
	doc, err := parseDocument(bytes.NewReader(src))
	if err != nil {
		return nil, err
	}
	vbAttr, ok := doc.rootAttrs["viewbox"]
	if !ok {
		return nil, ErrMissingViewBox
	}
	vb, err := ParseViewBox(vbAttr)
	if err != nil {
		return nil, err
	}
	frame, err := ResolveFrame(vb, c.Mode)
	if err != nil {
		return nil, err
	}
	c.Log.Debug().
		Str("icon", iconName).
		Floats64("viewBox", []float64{vb.X, vb.Y, vb.W, vb.H}).
		Float64("shiftX", frame.ShiftX).
		Float64("shiftY", frame.ShiftY).
		Msg("resolved frame")

	paths := []string{}
	for _, kind := range extractionOrder {
		for _, shape := range doc.shapes[kind] {
			cmds, err := frame.convertShape(shape)
			if err != nil {
				return nil, err
			}
			if len(cmds) == 0 {
				continue // e.g. an empty d attribute
			}
			c.Log.Debug().
				Str("icon", iconName).
				Stringer("shape", kind).
				Int("commands", len(cmds)).
				Msg("converted shape")
			paths = append(paths, FormatPath(cmds))
		}
	}

	res := &IconResult{
		IconName: iconName,
		Paths:    paths,
		Classes:  c.ExtractClasses(src),
	}
	if len(paths) > 1 {
		joined := strings.Join(paths, " ")
		res.Concat = &joined
	}
	return res, nil
}

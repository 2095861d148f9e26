package svgicon

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const twoShapeSVG = `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24" fill="#AFCF5A">
  <circle cx="12" cy="12" r="6"/>
  <path d="M0,0 L24,24"/>
</svg>`

func TestConvertTwoShapes(t *testing.T) {
	c := NewConverter(StrictSquare)
	got, err := c.Convert("badge", []byte(twoShapeSVG))
	if err != nil {
		t.Fatal(err)
	}
	concat := "M0,0 L24,24 M12,6 A6,6,0,1,0,12.001,6 Z"
	want := &IconResult{
		IconName: "badge",
		// Path elements convert before circles regardless of document order.
		Paths:   []string{"M0,0 L24,24", "M12,6 A6,6,0,1,0,12.001,6 Z"},
		Classes: []string{"text-base-primary"},
		Concat:  &concat,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("result mismatch (-want +got):\n%s", diff)
	}
}

func TestConvertSingleShapeNoConcat(t *testing.T) {
	c := NewConverter(StrictSquare)
	got, err := c.Convert("arrow", []byte(
		`<svg viewBox="0 0 24 24"><path d="M0,0 L24,24"/></svg>`))
	if err != nil {
		t.Fatal(err)
	}
	if got.Concat != nil {
		t.Errorf("single shape must not concat: %q", *got.Concat)
	}
	if len(got.Paths) != 1 || got.Paths[0] != "M0,0 L24,24" {
		t.Errorf("got paths %v", got.Paths)
	}
}

func TestConvertDocumentOrderWithinKind(t *testing.T) {
	c := NewConverter(StrictSquare)
	got, err := c.Convert("stack", []byte(
		`<svg viewBox="0 0 24 24"><path d="M1,1"/><path d="M2,2"/></svg>`))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"M1,1", "M2,2"}, got.Paths); diff != "" {
		t.Errorf("path order mismatch (-want +got):\n%s", diff)
	}
}

func TestConvertErrors(t *testing.T) {
	tests := []struct {
		name string
		mode Mode
		src  string
		err  error
	}{
		{
			name: "missingViewBox",
			mode: StrictSquare,
			src:  `<svg><path d="M0,0"/></svg>`,
			err:  ErrMissingViewBox,
		},
		{
			name: "nonSquareStrict",
			mode: StrictSquare,
			src:  `<svg viewBox="0 0 10 20"><path d="M0,0"/></svg>`,
			err:  ErrNonSquareViewBox,
		},
		{
			name: "unhandledRect",
			mode: StrictSquare,
			src:  `<svg viewBox="0 0 24 24"><rect x="0" y="0" width="4" height="4"/></svg>`,
			err:  ErrUnhandledShape,
		},
		{
			name: "unhandledLine",
			mode: StrictSquare,
			src:  `<svg viewBox="0 0 24 24"><line x1="0" y1="0" x2="4" y2="4"/></svg>`,
			err:  ErrUnhandledShape,
		},
		{
			name: "relativeStart",
			mode: StrictSquare,
			src:  `<svg viewBox="0 0 24 24"><path d="m10 10 l5 5"/></svg>`,
			err:  ErrRelativeStart,
		},
		{
			name: "unknownCommand",
			mode: Centering,
			src:  `<svg viewBox="0 0 24 24"><path d="b10,10"/></svg>`,
			err:  ErrUnknownCommand,
		},
		{
			name: "circleMissingRadius",
			mode: StrictSquare,
			src:  `<svg viewBox="0 0 24 24"><circle cx="12" cy="12"/></svg>`,
			err:  ErrMissingAttribute,
		},
		{
			name: "circleMalformedRadius",
			mode: StrictSquare,
			src:  `<svg viewBox="0 0 24 24"><circle cx="12" cy="12" r="abc"/></svg>`,
			err:  ErrInvalidAttribute,
		},
		{
			name: "circleMalformedCenter",
			mode: StrictSquare,
			src:  `<svg viewBox="0 0 24 24"><circle cx="abc" cy="12" r="6"/></svg>`,
			err:  ErrInvalidAttribute,
		},
		{
			name: "oddPolygon",
			mode: StrictSquare,
			src:  `<svg viewBox="0 0 24 24"><polygon points="0,0 24"/></svg>`,
			err:  ErrInvalidPolygon,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := NewConverter(test.mode).Convert("x", []byte(test.src))
			if !errors.Is(err, test.err) {
				t.Errorf("got %v, want %v", err, test.err)
			}
		})
	}
}

func TestConvertCentering(t *testing.T) {
	c := NewConverter(Centering)
	got, err := c.Convert("tall", []byte(
		`<svg viewBox="0 0 10 20"><path d="M0,0 L10,20"/></svg>`))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"M6,0 L18,24"}, got.Paths); diff != "" {
		t.Errorf("centered path mismatch (-want +got):\n%s", diff)
	}
}

func TestConvertCaseInsensitiveViewBoxAttr(t *testing.T) {
	c := NewConverter(StrictSquare)
	if _, err := c.Convert("x", []byte(
		`<svg VIEWBOX="0 0 24 24"><path d="M0,0"/></svg>`)); err != nil {
		t.Fatal(err)
	}
}

func TestConvertSkipsEmptyPathData(t *testing.T) {
	c := NewConverter(StrictSquare)
	got, err := c.Convert("x", []byte(
		`<svg viewBox="0 0 24 24"><path d=""/><path d="M1,1"/></svg>`))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"M1,1"}, got.Paths); diff != "" {
		t.Errorf("paths mismatch (-want +got):\n%s", diff)
	}
}

func TestConvertPolyline(t *testing.T) {
	c := NewConverter(StrictSquare)
	got, err := c.Convert("zigzag", []byte(
		`<svg viewBox="0 0 24 24"><polyline points="0,0 12,12 24,0"/></svg>`))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"M0,0 L12,12,24,0"}, got.Paths); diff != "" {
		t.Errorf("polyline mismatch (-want +got):\n%s", diff)
	}
}

// shapes.go walks the SVG document and converts each recognized shape
// element into normalized path commands.

package svgicon

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/net/html/charset"
)

// ShapeKind enumerates the recognized shape element types. The set is
// closed; conversion dispatch switches exhaustively over it.
type ShapeKind uint8

const (
	ShapePath ShapeKind = iota
	ShapeCircle
	ShapeRect
	ShapeEllipse
	ShapeLine
	ShapePolyline
	ShapePolygon
)

var shapeNames = map[ShapeKind]string{
	ShapePath:     "path",
	ShapeCircle:   "circle",
	ShapeRect:     "rect",
	ShapeEllipse:  "ellipse",
	ShapeLine:     "line",
	ShapePolyline: "polyline",
	ShapePolygon:  "polygon",
}

func (k ShapeKind) String() string { return shapeNames[k] }

// extractionOrder is the fixed priority in which shape kinds contribute
// to an icon's path list. Within a kind, document order is kept.
var extractionOrder = [...]ShapeKind{
	ShapePath, ShapeCircle, ShapeRect, ShapeEllipse,
	ShapeLine, ShapePolyline, ShapePolygon,
}

var kindByElement = map[string]ShapeKind{
	"path":     ShapePath,
	"circle":   ShapeCircle,
	"rect":     ShapeRect,
	"ellipse":  ShapeEllipse,
	"line":     ShapeLine,
	"polyline": ShapePolyline,
	"polygon":  ShapePolygon,
}

// ShapeRecord is one discovered shape element: its kind plus the raw
// attributes it was declared with, keyed by lower-cased attribute name.
type ShapeRecord struct {
	Kind  ShapeKind
	Attrs map[string]string
}

func (s ShapeRecord) attr(name string) (string, error) {
	v, ok := s.Attrs[name]
	if !ok {
		return "", fmt.Errorf("%w: %s needs %q", ErrMissingAttribute, s.Kind, name)
	}
	return v, nil
}

func (s ShapeRecord) floatAttr(name string, def float64) (float64, error) {
	v, ok := s.Attrs[name]
	if !ok {
		return def, nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %s=%q", ErrInvalidAttribute, s.Kind, name, v)
	}
	return f, nil
}

// document is the parsed view of one SVG source: the root element's
// attributes and every shape element grouped by kind in document order.
type document struct {
	rootAttrs map[string]string
	shapes    map[ShapeKind][]ShapeRecord
}

// parseDocument token-walks the SVG, collecting the root attributes and
// the shape records. Non-shape elements are ignored.
func parseDocument(r io.Reader) (*document, error) {
	doc := &document{shapes: make(map[ShapeKind][]ShapeRecord)}
	decoder := xml.NewDecoder(r)
	decoder.CharsetReader = charset.NewReaderLabel
	for {
		t, err := decoder.Token()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, err
		}
		se, ok := t.(xml.StartElement)
		if !ok {
			continue
		}
		name := strings.ToLower(se.Name.Local)
		if name == "svg" {
			if doc.rootAttrs == nil {
				doc.rootAttrs = attrMap(se.Attr)
			}
			continue
		}
		if kind, ok := kindByElement[name]; ok {
			doc.shapes[kind] = append(doc.shapes[kind], ShapeRecord{Kind: kind, Attrs: attrMap(se.Attr)})
		}
	}
	return doc, nil
}

func attrMap(attrs []xml.Attr) map[string]string {
	m := make(map[string]string, len(attrs))
	for _, a := range attrs {
		m[strings.ToLower(a.Name.Local)] = a.Value
	}
	return m
}

// convertShape turns one shape record into normalized path commands.
// Rect, ellipse and line are recognized but have no conversion rule yet;
// they fail loudly rather than producing silently-wrong geometry.
func (f *Frame) convertShape(s ShapeRecord) ([]PathCommand, error) {
	switch s.Kind {
	case ShapePath:
		d, err := s.attr("d")
		if err != nil {
			return nil, err
		}
		cmds, err := ParsePathData(d)
		if err != nil {
			return nil, err
		}
		return f.ScalePath(cmds), nil
	case ShapeCircle:
		rs, err := s.attr("r")
		if err != nil {
			return nil, err
		}
		r, err := strconv.ParseFloat(strings.TrimSpace(rs), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %s r=%q", ErrInvalidAttribute, s.Kind, rs)
		}
		cx, err := s.floatAttr("cx", 0)
		if err != nil {
			return nil, err
		}
		cy, err := s.floatAttr("cy", 0)
		if err != nil {
			return nil, err
		}
		return f.CirclePath(cx, cy, r), nil
	case ShapePolygon, ShapePolyline:
		points, err := s.attr("points")
		if err != nil {
			return nil, err
		}
		return f.PolyPath(points, s.Kind == ShapePolygon)
	case ShapeRect, ShapeEllipse, ShapeLine:
		return nil, fmt.Errorf("%w: %s", ErrUnhandledShape, s.Kind)
	default:
		return nil, fmt.Errorf("%w: kind %d", ErrUnhandledShape, s.Kind)
	}
}

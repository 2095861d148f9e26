// color.go extracts colour literals from raw SVG markup and maps known
// palette values to semantic CSS classes.

package svgicon

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/image/colornames"
)

// hexColorRe matches hex colour literals in raw markup text. Scanning the
// text rather than the DOM is a best-effort heuristic: colours set by
// external or embedded stylesheets are not seen.
var hexColorRe = regexp.MustCompile(`#[0-9a-fA-F]{3,}`)

// namedColorRe matches named colour values in fill/stroke attributes so
// they can be normalized to hex before the class lookup.
var namedColorRe = regexp.MustCompile(`(?i)(?:fill|stroke)\s*=\s*["']([a-z]+)["']`)

// DefaultColorClasses maps the palette hex values used across the icon
// set to their semantic CSS classes. Unmapped colours pass through as
// their lower-cased literal.
var DefaultColorClasses = map[string]string{
	"#afcf5a": "text-base-primary",
	"#2c2d84": "text-base-secondary",
	"#ff6c40": "text-accent",
	"#ffffff": "text-white",
	"#fff":    "text-white",
	"#000000": "text-black",
	"#000":    "text-black",
}

// ExtractClasses scans the raw source text for colour literals, in order
// of appearance, deduplicated. Hex literals are lower-cased; named fill
// and stroke colours are normalized to hex via the SVG 1.1 colour names.
func (c *Converter) ExtractClasses(src []byte) []string {
	var classes []string
	seen := make(map[string]bool)
	add := func(hex string) {
		class, ok := c.ColorClasses[hex]
		if !ok {
			class = hex
		}
		if !seen[class] {
			seen[class] = true
			classes = append(classes, class)
		}
	}
	for _, m := range hexColorRe.FindAll(src, -1) {
		add(strings.ToLower(string(m)))
	}
	for _, m := range namedColorRe.FindAllSubmatch(src, -1) {
		name := strings.ToLower(string(m[1]))
		if name == "none" {
			continue
		}
		if rgba, ok := colornames.Map[name]; ok {
			add(fmt.Sprintf("#%02x%02x%02x", rgba.R, rgba.G, rgba.B))
		}
	}
	return classes
}

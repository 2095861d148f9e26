// pathdata.go implements the scanner for the SVG path data mini-language
// and the per-command parameter axis templates.

package svgicon

import (
	"fmt"

	"github.com/tdewolff/parse/v2/strconv"
)

// Axis classifies one positional parameter of a path command.
type Axis uint8

const (
	// AxisNone passes the literal value through unscaled (arc flags).
	AxisNone Axis = iota
	AxisX
	AxisY
	// AxisMin scales by the shorter viewBox edge with no offset or shift.
	AxisMin
)

// PathCommand is one command letter with its ordered parameters. The
// letter keeps its original case; uppercase is absolute, lowercase
// relative.
type PathCommand struct {
	Letter byte
	Params []float64
}

// axisTemplates maps a case-folded command letter to the axis layout of
// one application of that command. A command occurrence may carry any
// exact multiple of its template length (implicit repetition); z carries
// exactly zero parameters.
var axisTemplates = map[byte][]Axis{
	'm': {AxisX, AxisY},
	'l': {AxisX, AxisY},
	'h': {AxisX},
	'v': {AxisY},
	'c': {AxisX, AxisY, AxisX, AxisY, AxisX, AxisY},
	's': {AxisX, AxisY, AxisX, AxisY},
	'q': {AxisX, AxisY, AxisX, AxisY},
	't': {AxisX, AxisY},
	'a': {AxisX, AxisY, AxisNone, AxisNone, AxisNone, AxisX, AxisY},
	'z': {},
}

func foldCommand(letter byte) byte {
	return letter | 0x20
}

func isRelative(letter byte) bool {
	return 'a' <= letter && letter <= 'z'
}

// isCommandByte reports whether b starts a new command segment. The
// exponent marker is excluded so that 1e-3 stays inside a parameter run.
func isCommandByte(b byte) bool {
	if b == 'e' || b == 'E' {
		return false
	}
	return ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z')
}

// scanNumbers reads every float from an SVG parameter run. Numbers may be
// separated by whitespace, commas, a bare minus sign, or an implicit
// decimal boundary ("1.5.5" is 1.5 and .5). Empty matches are discarded.
func scanNumbers(s string) []float64 {
	var out []float64
	b := []byte(s)
	for i := 0; i < len(b); {
		switch b[i] {
		case ' ', ',', '\t', '\n', '\r':
			i++
			continue
		}
		num, n := strconv.ParseFloat(b[i:])
		if n == 0 {
			i++
			continue
		}
		out = append(out, num)
		i += n
	}
	return out
}

// parseSegment decodes one command letter plus its parameter run.
func parseSegment(seg string) (PathCommand, error) {
	letter := seg[0]
	tmpl, ok := axisTemplates[foldCommand(letter)]
	if !ok {
		return PathCommand{}, fmt.Errorf("%w: %q", ErrUnknownCommand, string(letter))
	}
	params := scanNumbers(seg[1:])
	if len(tmpl) == 0 {
		if len(params) != 0 {
			return PathCommand{}, fmt.Errorf("%w: %q takes no parameters, got %d", ErrParamMismatch, string(letter), len(params))
		}
	} else if len(params)%len(tmpl) != 0 {
		return PathCommand{}, fmt.Errorf("%w: %q takes sets of %d, got %d", ErrParamMismatch, string(letter), len(tmpl), len(params))
	}
	return PathCommand{Letter: letter, Params: params}, nil
}

// ParsePathData tokenizes a path d attribute into command/parameter
// tuples. The first command of the path must be absolute so that shapes
// can later be concatenated safely; a leading relative command is an
// error. Unknown command letters are rejected before the case check.
func ParsePathData(d string) ([]PathCommand, error) {
	var cmds []PathCommand
	flush := func(seg string) error {
		cmd, err := parseSegment(seg)
		if err != nil {
			return err
		}
		if len(cmds) == 0 && isRelative(cmd.Letter) {
			return fmt.Errorf("%w: %q", ErrRelativeStart, string(cmd.Letter))
		}
		cmds = append(cmds, cmd)
		return nil
	}
	last := -1
	for i := 0; i < len(d); i++ {
		if !isCommandByte(d[i]) {
			continue
		}
		if last != -1 {
			if err := flush(d[last:i]); err != nil {
				return nil, err
			}
		}
		last = i
	}
	if last != -1 {
		if err := flush(d[last:]); err != nil {
			return nil, err
		}
	}
	return cmds, nil
}

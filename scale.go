// scale.go rewrites parsed commands and primitive shapes into the target
// frame and serializes them back to path data.

package svgicon

import (
	"fmt"
	"strconv"
	"strings"
)

// circleArcNudge breaks the degenerate zero-length arc when a circle is
// expressed as a single A command: arcs cannot describe a full 360°
// sweep, so the end point is perturbed by a negligible amount, forcing
// two semicircular sweeps that render closed. TODO: verify rendering
// fidelity at very small radii.
const circleArcNudge = 0.001

func (f *Frame) scaleParam(v float64, axis Axis) float64 {
	switch axis {
	case AxisX:
		return f.ScaleX(v)
	case AxisY:
		return f.ScaleY(v)
	case AxisMin:
		return f.ScaleMin(v)
	default:
		return v
	}
}

// ScalePath rescales every geometric parameter of the given commands,
// consulting each command's axis template cyclically so implicit
// repetitions classify the same as the first application.
func (f *Frame) ScalePath(cmds []PathCommand) []PathCommand {
	out := make([]PathCommand, len(cmds))
	for i, cmd := range cmds {
		if len(cmd.Params) == 0 {
			out[i] = cmd
			continue
		}
		tmpl := axisTemplates[foldCommand(cmd.Letter)]
		params := make([]float64, len(cmd.Params))
		for j, v := range cmd.Params {
			axis := AxisNone
			if len(tmpl) > 0 {
				axis = tmpl[j%len(tmpl)]
			}
			params[j] = f.scaleParam(v, axis)
		}
		out[i] = PathCommand{Letter: cmd.Letter, Params: params}
	}
	return out
}

// CirclePath converts a circle into two semicircular arcs around the top
// of the circle. The center scales on the x/y axes, the radius on the
// min-axis. The nudge is applied in source coordinates.
func (f *Frame) CirclePath(cx, cy, r float64) []PathCommand {
	top := cy - r
	return []PathCommand{
		{Letter: 'M', Params: []float64{f.ScaleX(cx), f.ScaleY(top)}},
		{Letter: 'A', Params: []float64{
			f.ScaleMin(r), f.ScaleMin(r), 0, 1, 0,
			f.ScaleX(cx + circleArcNudge), f.ScaleY(top),
		}},
		{Letter: 'Z'},
	}
}

// PolyPath converts a points attribute into M/L commands, closing with Z
// for polygons. At least two coordinate pairs are required and the number
// count must be even.
func (f *Frame) PolyPath(points string, closed bool) ([]PathCommand, error) {
	nums := scanNumbers(points)
	if len(nums) < 4 || len(nums)%2 != 0 {
		return nil, fmt.Errorf("%w: got %d numbers", ErrInvalidPolygon, len(nums))
	}
	scaled := make([]float64, len(nums))
	for i, v := range nums {
		if i%2 == 0 {
			scaled[i] = f.ScaleX(v)
		} else {
			scaled[i] = f.ScaleY(v)
		}
	}
	cmds := []PathCommand{
		{Letter: 'M', Params: scaled[:2]},
		{Letter: 'L', Params: scaled[2:]},
	}
	if closed {
		cmds = append(cmds, PathCommand{Letter: 'Z'})
	}
	return cmds, nil
}

// FormatPath serializes commands back into valid path data: parameters
// comma-joined, the command letter glued directly to the first parameter,
// commands separated by single spaces.
func FormatPath(cmds []PathCommand) string {
	var sb strings.Builder
	for i, cmd := range cmds {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte(cmd.Letter)
		for j, v := range cmd.Params {
			if j > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
		}
	}
	return sb.String()
}

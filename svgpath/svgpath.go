// Package svgpath converts curves to and from the M/L/C/Q/Z subset of SVG
// path data. Only absolute commands are supported, and a path holds a
// single subpath.
package svgpath

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bezfit/bezfit"
)

// Encode renders the curve as SVG path data. Quadratic segments become Q
// commands and cubic segments C commands; closed curves end in Z.
func Encode(c bezfit.Curve) string {
	var sb strings.Builder
	for i, seg := range c.Segments {
		if i == 0 {
			sb.WriteString("M ")
			writePoint(&sb, seg.P0)
		}
		switch seg.Kind {
		case bezfit.QuadKind:
			sb.WriteString(" Q ")
			writePoint(&sb, seg.P1)
			sb.WriteByte(' ')
			writePoint(&sb, seg.P2)
		case bezfit.CubicKind:
			sb.WriteString(" C ")
			writePoint(&sb, seg.P1)
			sb.WriteByte(' ')
			writePoint(&sb, seg.P2)
			sb.WriteByte(' ')
			writePoint(&sb, seg.P3)
		}
	}
	if c.Closed {
		sb.WriteString(" Z")
	}
	return sb.String()
}

func writePoint(sb *strings.Builder, pt bezfit.Point) {
	sb.WriteString(format(pt.X))
	sb.WriteByte(',')
	sb.WriteString(format(pt.Y))
}

func format(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Parse reads SVG path data into a curve. L commands become quadratic
// segments with the control point at the chord midpoint; Z appends a
// closing chord when the path doesn't already end at its start and marks
// the curve closed. Errors wrap [bezfit.ErrInvalidInput].
func Parse(data string) (bezfit.Curve, error) {
	p := parser{tokens: tokenize(data)}
	return p.parse()
}

type parser struct {
	tokens []string
	pos    int
}

func tokenize(data string) []string {
	data = strings.NewReplacer(",", " ", "\n", " ", "\t", " ").Replace(data)
	// Split commands glued to their first coordinate, as in "M10 20".
	var sb strings.Builder
	for _, r := range data {
		if isCommand(r) {
			sb.WriteByte(' ')
			sb.WriteRune(r)
			sb.WriteByte(' ')
		} else {
			sb.WriteRune(r)
		}
	}
	return strings.Fields(sb.String())
}

func isCommand(r rune) bool {
	switch r {
	case 'M', 'L', 'C', 'Q', 'Z', 'm', 'l', 'c', 'q', 'z':
		return true
	}
	return false
}

func (p *parser) parse() (bezfit.Curve, error) {
	if len(p.tokens) == 0 {
		return bezfit.Curve{}, fmt.Errorf("%w: empty path", bezfit.ErrInvalidInput)
	}
	if p.tokens[0] != "M" {
		return bezfit.Curve{}, fmt.Errorf("%w: path must start with M, got %q", bezfit.ErrInvalidInput, p.tokens[0])
	}
	p.pos = 1
	start, err := p.point()
	if err != nil {
		return bezfit.Curve{}, err
	}

	var segments []bezfit.Segment
	current := start
	closed := false
	for p.pos < len(p.tokens) {
		cmd := p.tokens[p.pos]
		p.pos++
		switch cmd {
		case "L":
			end, err := p.point()
			if err != nil {
				return bezfit.Curve{}, err
			}
			segments = append(segments, bezfit.Line{P0: current, P1: end}.Seg())
			current = end
		case "Q":
			ctrl, err := p.point()
			if err != nil {
				return bezfit.Curve{}, err
			}
			end, err := p.point()
			if err != nil {
				return bezfit.Curve{}, err
			}
			segments = append(segments, bezfit.QuadBez{P0: current, P1: ctrl, P2: end}.Seg())
			current = end
		case "C":
			c1, err := p.point()
			if err != nil {
				return bezfit.Curve{}, err
			}
			c2, err := p.point()
			if err != nil {
				return bezfit.Curve{}, err
			}
			end, err := p.point()
			if err != nil {
				return bezfit.Curve{}, err
			}
			segments = append(segments, bezfit.CubicBez{P0: current, P1: c1, P2: c2, P3: end}.Seg())
			current = end
		case "Z":
			if p.pos != len(p.tokens) {
				return bezfit.Curve{}, fmt.Errorf("%w: Z must be the last command", bezfit.ErrInvalidInput)
			}
			if current != start {
				segments = append(segments, bezfit.Line{P0: current, P1: start}.Seg())
				current = start
			}
			closed = true
		case "M":
			return bezfit.Curve{}, fmt.Errorf("%w: multiple subpaths are not supported", bezfit.ErrInvalidInput)
		default:
			return bezfit.Curve{}, fmt.Errorf("%w: unsupported path command %q", bezfit.ErrInvalidInput, cmd)
		}
	}
	if len(segments) == 0 {
		return bezfit.Curve{}, fmt.Errorf("%w: path has no drawing commands", bezfit.ErrInvalidInput)
	}
	if closed {
		return bezfit.NewClosedCurve(segments...)
	}
	return bezfit.NewCurve(segments...)
}

func (p *parser) point() (bezfit.Point, error) {
	x, err := p.number()
	if err != nil {
		return bezfit.Point{}, err
	}
	y, err := p.number()
	if err != nil {
		return bezfit.Point{}, err
	}
	return bezfit.Pt(x, y), nil
}

func (p *parser) number() (float64, error) {
	if p.pos >= len(p.tokens) {
		return 0, fmt.Errorf("%w: unexpected end of path data", bezfit.ErrInvalidInput)
	}
	tok := p.tokens[p.pos]
	f, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: bad coordinate %q", bezfit.ErrInvalidInput, tok)
	}
	p.pos++
	return f, nil
}

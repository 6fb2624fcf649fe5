package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Colour priorities for cells shared by several things.
const (
	zSurface = iota + 1
	zMarker
	zHover
	zSelected
)

// brailleBuf is a cell canvas with a 2x4 micro-pixel grid per cell and one
// foreground colour per cell.
type brailleBuf struct {
	w, h int       // in cells
	m    [][]uint8 // per-cell 8-bit mask
	fg   [][]string
	z    [][]int
}

func newBrailleBuf(w, h int) *brailleBuf {
	w, h = max(w, 0), max(h, 0)
	m := make([][]uint8, h)
	fg := make([][]string, h)
	z := make([][]int, h)
	for i := range m {
		m[i] = make([]uint8, w)
		fg[i] = make([]string, w)
		z[i] = make([]int, w)
	}
	return &brailleBuf{w: w, h: h, m: m, fg: fg, z: z}
}

// Dot bits by micro column, then micro row.
var brailleBits = [2][4]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// setPixel sets a micro-pixel at micro coords (2x4 per cell)
func (b *brailleBuf) setPixel(mx, my int) {
	if mx < 0 || my < 0 {
		return
	}
	cx, cy := mx/2, my/4
	if cy >= b.h || cx >= b.w {
		return
	}
	b.m[cy][cx] |= brailleBits[mx%2][my%4]
}

// colorCell sets the cell colour unless a higher priority already owns it.
func (b *brailleBuf) colorCell(cx, cy int, hex string, z int) {
	if cx < 0 || cy < 0 || cx >= b.w || cy >= b.h || z < b.z[cy][cx] {
		return
	}
	b.fg[cy][cx] = hex
	b.z[cy][cx] = z
}

func (b *brailleBuf) glyph(x, y int) rune {
	if b.m[y][x] == 0 {
		return ' '
	}
	return rune(0x2800 + int(b.m[y][x]))
}

// toLines renders the canvas without colour.
func (b *brailleBuf) toLines() []string {
	out := make([]string, b.h)
	for y := 0; y < b.h; y++ {
		row := make([]rune, b.w)
		for x := 0; x < b.w; x++ {
			row[x] = b.glyph(x, y)
		}
		out[y] = string(row)
	}
	return out
}

// overlay is pre-rendered text drawn over the canvas at cell (x, y).
type overlay struct {
	x, y  int
	lines []string
	width int
}

func newOverlay(x, y int, s string) overlay {
	lines := strings.Split(s, "\n")
	return overlay{x: x, y: y, lines: lines, width: lipgloss.Width(s)}
}

// fit shifts the overlay inside a w x h canvas. It reports false when the
// overlay cannot fit at all.
func (o overlay) fit(w, h int) (overlay, bool) {
	if o.width > w || len(o.lines) > h || o.width == 0 {
		return o, false
	}
	o.x = min(max(o.x, 0), w-o.width)
	o.y = min(max(o.y, 0), h-len(o.lines))
	return o, true
}

func (o overlay) lineAt(x, y int) (string, bool) {
	if x != o.x || y < o.y || y >= o.y+len(o.lines) {
		return "", false
	}
	line := o.lines[y-o.y]
	if pad := o.width - lipgloss.Width(line); pad > 0 {
		line += strings.Repeat(" ", pad)
	}
	return line, true
}

func (o overlay) overlaps(p overlay) bool {
	return o.x < p.x+p.width && p.x < o.x+o.width && o.y < p.y+len(p.lines) && p.y < o.y+len(o.lines)
}

// render draws the canvas with colours, then the overlays in order. An
// overlay that collides with an earlier one is skipped.
func (b *brailleBuf) render(ovs ...overlay) string {
	var placed []overlay
	for _, o := range ovs {
		o, ok := o.fit(b.w, b.h)
		if !ok {
			continue
		}
		clash := false
		for _, p := range placed {
			if o.overlaps(p) {
				clash = true
				break
			}
		}
		if !clash {
			placed = append(placed, o)
		}
	}

	paint := map[string]lipgloss.Style{}
	rows := make([]string, b.h)
	for y := 0; y < b.h; y++ {
		var sb strings.Builder
		x := 0
	row:
		for x < b.w {
			for _, o := range placed {
				if line, ok := o.lineAt(x, y); ok {
					sb.WriteString(line)
					x += o.width
					continue row
				}
			}
			fg := b.fg[y][x]
			run := make([]rune, 0, b.w-x)
			for x < b.w && b.fg[y][x] == fg && !startsOverlay(placed, x, y) {
				run = append(run, b.glyph(x, y))
				x++
			}
			if fg == "" || strings.TrimSpace(string(run)) == "" {
				sb.WriteString(string(run))
				continue
			}
			st, ok := paint[fg]
			if !ok {
				st = lipgloss.NewStyle().Foreground(lipgloss.Color(fg))
				paint[fg] = st
			}
			sb.WriteString(st.Render(string(run)))
		}
		rows[y] = sb.String()
	}
	return strings.Join(rows, "\n")
}

func startsOverlay(ovs []overlay, x, y int) bool {
	for _, o := range ovs {
		if o.x == x && y >= o.y && y < o.y+len(o.lines) {
			return true
		}
	}
	return false
}

package testbed

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	logPanelWidth  = 260
	logMaxEntries  = 40
	logLineHeight  = 14
	logHeaderH     = 16
	logFirstLineY  = 20
	logBottomSlack = 4
)

var (
	panelFill      = color.RGBA{R: 10, G: 12, B: 16, A: 220}
	panelEdge      = color.RGBA{R: 60, G: 70, B: 90, A: 255}
	panelHeader    = color.RGBA{R: 20, G: 24, B: 34, A: 255}
	panelHighlight = color.RGBA{R: 30, G: 36, B: 50, A: 160}
)

// categoryColors marks each event category with a dot in the panel.
var categoryColors = map[string]color.RGBA{
	"sim":  {R: 120, G: 200, B: 120, A: 255},
	"view": {R: 120, G: 160, B: 230, A: 255},
	"draw": {R: 230, G: 200, B: 90, A: 255},
	"clip": {R: 210, G: 120, B: 210, A: 255},
}

var otherCategory = color.RGBA{R: 150, G: 150, B: 150, A: 255}

// EventEntry is a single line in the event log.
type EventEntry struct {
	Tick     int
	Category string // "sim", "view", "draw" or "clip"
	Message  string
}

// EventLog keeps the newest logMaxEntries testbed events, oldest first.
type EventLog struct {
	entries []EventEntry
}

// NewEventLog creates an empty event log.
func NewEventLog() *EventLog {
	return &EventLog{entries: make([]EventEntry, 0, logMaxEntries)}
}

// Add appends an entry, dropping the oldest once full.
func (el *EventLog) Add(tick int, category, msg string) {
	if len(el.entries) == logMaxEntries {
		copy(el.entries, el.entries[1:])
		el.entries = el.entries[:logMaxEntries-1]
	}
	el.entries = append(el.entries, EventEntry{Tick: tick, Category: category, Message: msg})
}

// Addf formats and appends an entry.
func (el *EventLog) Addf(tick int, category, format string, args ...any) {
	el.Add(tick, category, fmt.Sprintf(format, args...))
}

// Recent returns a copy of the entries, oldest first.
func (el *EventLog) Recent() []EventEntry {
	return append([]EventEntry(nil), el.entries...)
}

// Len returns the number of stored entries.
func (el *EventLog) Len() int {
	return len(el.entries)
}

// visible returns the newest entries that fit a panel panelH pixels tall.
func (el *EventLog) visible(panelH int) []EventEntry {
	rows := max(0, (panelH-logFirstLineY-logBottomSlack)/logLineHeight)
	n := min(rows, len(el.entries))
	return el.entries[len(el.entries)-n:]
}

// Draw renders the log panel with its left edge at panelX.
func (el *EventLog) Draw(screen *ebiten.Image, panelX int, panelH int) {
	x, w, h := float32(panelX), float32(logPanelWidth), float32(panelH)
	vector.FillRect(screen, x, 0, w, h, panelFill, false)
	vector.StrokeLine(screen, x, 0, x, h, 1, panelEdge, false)
	vector.FillRect(screen, x, 0, w, logHeaderH, panelHeader, false)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("EVENTS (%d)", el.Len()), panelX+8, 0)

	entries := el.visible(panelH)
	y := logFirstLineY
	for i, e := range entries {
		if i == len(entries)-1 {
			vector.FillRect(screen, x+2, float32(y), w-4, logLineHeight, panelHighlight, false)
		}
		dot, ok := categoryColors[e.Category]
		if !ok {
			dot = otherCategory
		}
		vector.FillCircle(screen, x+9, float32(y)+logLineHeight/2, 3, dot, true)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%5d %s", e.Tick, e.Message), panelX+16, y)
		y += logLineHeight
	}
}

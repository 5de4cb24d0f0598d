package detail

import (
	"encoding/json"
	"strings"

	tea "charm.land/bubbletea/v2"

	nt "bankview/entity"
	"bankview/style"
)

// DetailPanel shows one record as indented json
type DetailPanel struct {
	title string

	record       nt.Record
	contentLines []string // Rendered content split into lines (cached)

	width        int
	height       int
	ScrollOffset int // Line offset for scrolling content
}

func NewDetailPanel(title string, rec nt.Record) DetailPanel {

	pnl := DetailPanel{title: title}
	pnl.record = rec
	pnl.computeContentLines()
	return pnl
}

// Record returns the record on display.
func (pnl DetailPanel) Record() nt.Record {
	return pnl.record
}

func (pnl DetailPanel) Update(msg tea.Msg) (DetailPanel, tea.Cmd) {

	switch msg := msg.(type) {

	case RecordMsg:
		pnl.record = msg.Record
		pnl.computeContentLines()
		pnl.ScrollOffset = 0

	case SizeMsg:
		pnl.width = msg.Width
		pnl.height = msg.Height - 2 // title and spacer
		pnl.ScrollOffset = min(pnl.ScrollOffset, pnl.maxScroll())

	case tea.KeyPressMsg:
		switch msg.String() {
		case "up", "k":
			if pnl.ScrollOffset > 0 {
				pnl.ScrollOffset--
			}

		case "down", "j":
			if pnl.ScrollOffset < pnl.maxScroll() {
				pnl.ScrollOffset++
			}

		case "pgup":
			pnl.ScrollOffset = max(pnl.ScrollOffset-pnl.height, 0)

		case "pgdown":
			pnl.ScrollOffset = min(pnl.ScrollOffset+pnl.height, pnl.maxScroll())

		case "g", "home":
			pnl.ScrollOffset = 0

		case "G", "end":
			pnl.ScrollOffset = pnl.maxScroll()
		}
	}

	return pnl, nil
}

// Render renders the visible portion of the record
func (pnl DetailPanel) Render() string {

	title := style.TitleStyle.Render(pnl.title)
	if pnl.contentLines == nil {
		return title + "\n\n" + style.MutedStyle.Render("Cargando registro...")
	}

	visibleLines := pnl.contentLines[pnl.ScrollOffset:]
	if pnl.height > 0 && len(visibleLines) > pnl.height {
		visibleLines = visibleLines[:pnl.height]
	}

	return title + "\n\n" + strings.Join(visibleLines, "\n")
}

// unexported

func (pnl DetailPanel) maxScroll() int {
	if pnl.height <= 0 || len(pnl.contentLines) <= pnl.height {
		return 0
	}
	return len(pnl.contentLines) - pnl.height
}

// computeContentLines renders the record as json and splits into lines
func (pnl *DetailPanel) computeContentLines() {

	if pnl.record == nil {
		pnl.contentLines = nil
		return
	}

	var buf strings.Builder
	encoder := json.NewEncoder(&buf)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)

	err := encoder.Encode(pnl.record)
	if err != nil {
		pnl.contentLines = []string{style.ErrorStyle.Render("Error pretty-printing JSON: " + err.Error())}
		return
	}

	content := strings.TrimSuffix(buf.String(), "\n")
	pnl.contentLines = strings.Split(content, "\n")
}

package display

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/gdamore/tcell/v2"
)

const DefaultStatusTemplate = `holding {{ .Held | default "nothing" }} | drawer {{ .DrawerUsed }}/{{ .DrawerSlots }} | hamsters {{ .Hamsters }} | esc esc to quit`

var templateFuncs = sprig.TxtFuncMap()

// Status is the data available to the status line template.
type Status struct {
	Held        string
	DrawerUsed  int
	DrawerSlots int
	Hamsters    int
}

// HUD renders a status line along the top of the screen.
type HUD struct {
	tmpl  *template.Template
	style tcell.Style
}

func NewHUD(tmplStr string) (*HUD, error) {
	tmpl, err := template.New("status").Funcs(templateFuncs).Parse(tmplStr)
	if err != nil {
		return nil, fmt.Errorf("parsing status template: %w", err)
	}

	return &HUD{
		tmpl:  tmpl,
		style: tcell.StyleDefault.Dim(true),
	}, nil
}

func (h *HUD) Render(s Status) (string, error) {
	var buf bytes.Buffer
	if err := h.tmpl.Execute(&buf, s); err != nil {
		return "", fmt.Errorf("executing status template: %w", err)
	}
	return buf.String(), nil
}

// Draw renders s wrapped to the screen width, one terminal row per line.
func (h *HUD) Draw(screen tcell.Screen, s Status) error {
	text, err := h.Render(s)
	if err != nil {
		return err
	}

	w, rows := screen.Size()
	for row, line := range strings.Split(Wrap(text, w), "\n") {
		if row >= rows {
			break
		}
		col := 0
		for _, r := range line {
			if col >= w {
				break
			}
			screen.SetContent(col, row, r, nil, h.style)
			col++
		}
	}
	return nil
}

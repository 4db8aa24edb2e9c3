package ui

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"runcfg/internal/resolver"
)

// Picker shows configuration choices in an interactive TUI list
type Picker struct {
	mu        sync.Mutex
	newScreen func() (tcell.Screen, error)
	ready     func(tcell.Screen) // called once the screen is initialised
}

// NewPicker creates a Picker drawing on the terminal
func NewPicker() *Picker {
	return &Picker{}
}

// NewPickerWithScreen creates a Picker drawing on screens returned by newScreen
func NewPickerWithScreen(newScreen func() (tcell.Screen, error)) *Picker {
	return &Picker{newScreen: newScreen}
}

// Pick displays entries and waits for the user. Enter selects the highlighted
// entry; Esc, q or Ctrl+C dismiss the list. A done ctx closes the list and
// its error is returned.
func (p *Picker) Pick(ctx context.Context, entries []resolver.PickEntry, placeholder string) (int, bool, error) {
	// Only one picker can own the terminal at a time
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return 0, false, err
	}
	if len(entries) == 0 {
		return 0, false, nil
	}

	app := tview.NewApplication()
	if p.newScreen != nil {
		screen, err := p.newScreen()
		if err != nil {
			return 0, false, fmt.Errorf("create screen: %w", err)
		}
		app.SetScreen(screen)
		if p.ready != nil {
			p.ready(screen)
		}
	}

	selected := -1

	// Create list for configurations (left side)
	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)
	list.SetBorder(true).SetTitle(" " + placeholder + " ")

	for i, entry := range entries {
		list.AddItem(fmt.Sprintf("[yellow]%d.[white] %s", i+1, tview.Escape(entry.Label)), "", 0, nil)
	}

	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan)

	// Create text view for configuration details (right side)
	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)
	detailsView.SetBorder(true).SetTitle(" Details ")

	updateDetails := func(index int) {
		if index >= 0 && index < len(entries) {
			detailsView.SetText(formatPickDetail(entries[index], index+1))
		}
	}

	list.SetChangedFunc(func(index int, mainText string, secondaryText string, shortcut rune) {
		updateDetails(index)
	})

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEnter:
			selected = list.GetCurrentItem()
			app.Stop()
			return nil
		case tcell.KeyEsc, tcell.KeyCtrlC:
			app.Stop()
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'q' {
				app.Stop()
				return nil
			}
		}
		return event
	})

	updateDetails(0)

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true).
		SetText(fmt.Sprintf(" %d configuration(s) | Use ↑↓ to navigate, Enter to select, Esc to cancel ", len(entries)))

	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(detailsView, 0, 2, false)

	mainLayout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(flex, 0, 1, true)

	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			app.Stop()
		case <-stop:
		}
	}()

	if err := app.SetRoot(mainLayout, true).SetFocus(list).Run(); err != nil {
		return 0, false, fmt.Errorf("failed to run TUI: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return 0, false, err
	}
	if selected < 0 {
		return 0, false, nil
	}
	return selected, true, nil
}

// formatPickDetail formats an entry for the details pane using tview color tags
func formatPickDetail(entry resolver.PickEntry, number int) string {
	var builder strings.Builder
	fmt.Fprintf(&builder, "[cyan]#%d[white] [yellow]%s[white]\n\n", number, tview.Escape(entry.Label))
	detail := entry.Detail
	var indented bytes.Buffer
	if json.Indent(&indented, []byte(detail), "", "  ") == nil {
		detail = indented.String()
	}
	builder.WriteString(tview.Escape(detail))
	builder.WriteString("\n")
	return builder.String()
}

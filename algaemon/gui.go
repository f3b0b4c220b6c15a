package main

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/itohio/algaemon/pkg/config"
)

// logLines caps the scrollback kept in the output view.
const logLines = 200

// runGUI shows the monitor window: a display mirror, mode toggles, a
// command entry, and the protocol output log.
func runGUI(cfg *config.Config, s session) {
	application := app.NewWithID("com.itohio.algaemon")

	window := application.NewWindow("Algae Temperature Monitor")
	window.Resize(fyne.NewSize(700, 500))
	window.CenterOnScreen()

	displayView := widget.NewLabelWithStyle(blankDisplay(cfg), fyne.TextAlignCenter, fyne.TextStyle{Monospace: true})
	if s.Display() == nil {
		displayView.SetText("(display attached to board)")
	}

	logView := widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Monospace: true})
	logView.Wrapping = fyne.TextWrapWord
	logScroll := container.NewVScroll(logView)

	entry := widget.NewEntry()
	entry.SetPlaceHolder("Type a command, e.g. 'status' or 'help'")
	entry.OnSubmitted = func(text string) {
		if strings.TrimSpace(text) == "" {
			return
		}
		s.Send(text)
		entry.SetText("")
	}

	fakeCheck := widget.NewCheck("Simulation", func(on bool) {
		if on {
			s.Send("fake on")
		} else {
			s.Send("fake off")
		}
	})
	debugCheck := widget.NewCheck("Debug", func(on bool) {
		if on {
			s.Send("debug on")
		} else {
			s.Send("debug off")
		}
	})

	toolbar := container.NewHBox(
		widget.NewButton("Status", func() { s.Send("status") }),
		widget.NewButton("Scan", func() { s.Send("scan") }),
		widget.NewButton("Calibrate", func() { s.Send("calibrate") }),
		widget.NewButton("Help", func() { s.Send("help") }),
		fakeCheck,
		debugCheck,
	)

	// Pump session output into the widgets.
	go func() {
		var backlog []string
		output := s.Output()
		displayCh := s.Display()

		for {
			select {
			case line, ok := <-output:
				if !ok {
					return
				}
				backlog = append(backlog, line)
				if len(backlog) > logLines {
					backlog = backlog[len(backlog)-logLines:]
				}
				text := strings.Join(backlog, "\n")
				fyne.Do(func() {
					logView.SetText(text)
					logScroll.ScrollToBottom()
				})
			case lines := <-displayCh:
				text := strings.Join(lines, "\n")
				fyne.Do(func() {
					displayView.SetText(text)
				})
			}
		}
	}()

	content := container.NewBorder(
		container.NewVBox(toolbar, displayView),
		entry,
		nil,
		nil,
		logScroll,
	)

	window.SetContent(content)
	window.ShowAndRun()
}

// blankDisplay renders an empty panel of the configured geometry.
func blankDisplay(cfg *config.Config) string {
	rows := make([]string, cfg.LCD.Rows)
	for i := range rows {
		rows[i] = strings.Repeat(" ", cfg.LCD.Cols)
	}
	return strings.Join(rows, "\n")
}

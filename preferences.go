package main

import (
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// App-wide display settings.  Deliberately in-memory only: the scope is a
// demo and everything resets to defaults on the next launch.

const defaultRefreshHz = 60

type SettingsT struct {
	refreshHz int
}

var Settings = SettingsT{refreshHz: defaultRefreshHz}

func (s *SettingsT) RefreshRate() int {
	if s.refreshHz <= 0 {
		return defaultRefreshHz
	}
	return s.refreshHz
}

func (s *SettingsT) SetRefreshRate(hz int) {
	s.refreshHz = hz
}

// ShowPreferencesDialog lets the user pick the display refresh rate.  The
// new cadence applies to every open scope view on the next frame.
func (s *SettingsT) ShowPreferencesDialog(tabs *ScopeTabs) {
	refreshRateSelector := widget.NewSelect([]string{"30Hz", "60Hz"}, func(_ string) {})
	if s.RefreshRate() == 60 {
		refreshRateSelector.SetSelectedIndex(1)
	} else {
		refreshRateSelector.SetSelectedIndex(0)
	}

	entries := []*widget.FormItem{
		widget.NewFormItem("Display refresh rate", refreshRateSelector),
	}

	dialog.ShowForm("Preferences", "Apply", "Cancel", entries, func(apply bool) {
		if !apply {
			return
		}
		if refreshRateSelector.SelectedIndex() == 0 {
			s.SetRefreshRate(30)
		} else {
			s.SetRefreshRate(60)
		}
		for _, ti := range tabs.DocTabs.Items {
			if sc, ok := ti.Content.(*ScopeContainer); ok {
				sc.Clock().SetRefreshRate(s.RefreshRate())
			}
		}
	}, mainWindow)
}

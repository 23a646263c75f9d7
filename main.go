package main

import (
	"runtime"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
)

var mainWindow fyne.Window

func main() {
	myApp := app.NewWithID("com.github.pneumaticdeath.sinescope")
	mainWindow = myApp.NewWindow("Sine Scope")

	tabs := NewScopeTabs(NewScopeContainer())

	var modKey fyne.KeyModifier
	if runtime.GOOS == "darwin" {
		modKey = fyne.KeyModifierSuper
	} else {
		modKey = fyne.KeyModifierControl
	}

	newTabMenuItem := fyne.NewMenuItem("New Scope", func() {
		tabs.NewTab(NewScopeContainer())
	})
	newTabMenuItem.Shortcut = &desktop.CustomShortcut{KeyName: fyne.KeyN, Modifier: modKey}

	closeTabMenuItem := fyne.NewMenuItem("Close current scope", func() {
		tabs.CloseCurrent()
	})
	closeTabMenuItem.Shortcut = &desktop.CustomShortcut{KeyName: fyne.KeyW, Modifier: modKey}

	preferencesMenuItem := fyne.NewMenuItem("Preferences", func() {
		Settings.ShowPreferencesDialog(tabs)
	})

	fileMenu := fyne.NewMenu("File", newTabMenuItem, closeTabMenuItem,
		fyne.NewMenuItemSeparator(), preferencesMenuItem)
	helpMenu := fyne.NewMenu("Help", fyne.NewMenuItem("Welcome", ShowWelcome))
	mainWindow.SetMainMenu(fyne.NewMainMenu(fileMenu, helpMenu))

	mainWindow.SetContent(tabs)

	toggleRun := func(shortcut fyne.Shortcut) {
		if sc := tabs.CurrentScope(); sc != nil {
			sc.PauseResume()
		}
	}
	mainWindow.Canvas().AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyR, Modifier: modKey}, toggleRun)

	mainWindow.SetCloseIntercept(func() {
		for _, ti := range tabs.DocTabs.Items {
			if sc, ok := ti.Content.(*ScopeContainer); ok {
				sc.Shutdown()
			}
		}
		mainWindow.Close()
	})

	mainWindow.Resize(fyne.NewSize(900, 600))
	mainWindow.ShowAndRun()
}

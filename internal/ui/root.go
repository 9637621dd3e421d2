package ui

import (
	"fmt"
	"log"
	"math"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/image-drop/internal/config"
	"github.com/ytget/image-drop/internal/model"
	"github.com/ytget/image-drop/internal/platform"
	"github.com/ytget/image-drop/internal/upload"
)

var _ View = (*RootUI)(nil)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	version      string
	settings     *config.Settings
	localization *Localization
	store        *config.ImageStore
	controller   *Controller

	dropZone *DropZone

	errorLabel  *widget.Label
	errorBanner *fyne.Container
	loading     *widget.ProgressBarInfinite

	fileNameLabel *widget.Label
	fileSizeLabel *widget.Label
	fileInfo      *fyne.Container

	progressBar   *widget.ProgressBar
	progressTheme *progressTheme
	progressFill  *container.ThemeOverride
	percentLabel  *canvas.Text
	progressRow   *fyne.Container
	lastPercent   int
	bouncing      *fyne.Animation

	previewImage  *canvas.Image
	restoredLabel *widget.Label
	previewBox    *fyne.Container
	shownDataURI  string

	successLabel *widget.Label
	replaceBtn   *widget.Button
	removeBtn    *widget.Button
	actions      *fyne.Container
}

// NewRootUI creates and initializes the main UI. It owns the window title.
func NewRootUI(window fyne.Window, app fyne.App, version string, uploader upload.Uploader, previewer Previewer, scheduler upload.Scheduler) *RootUI {
	// Initialize settings
	settings := config.NewSettings(app)

	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		version:      version,
		settings:     settings,
		localization: localization,
		store:        config.NewImageStore(app.Preferences(), settings.GetStorageQuota),
	}
	ui.controller = NewController(ui, ui.store, uploader, previewer, scheduler, localization)

	window.SetTitle(ui.windowTitle())

	ui.setupUI()
	ui.setupInput()
	log.Printf("RootUI initialized (language=%s)", localization.GetCurrentLanguage())

	if settings.GetRestoreOnStartup() {
		ui.controller.Restore()
	}
	return ui
}

// Controller returns the controller driving this view
func (ui *RootUI) Controller() *Controller {
	return ui.controller
}

// windowTitle is the localized app title with the build version
func (ui *RootUI) windowTitle() string {
	title := ui.localization.GetText(KeyAppTitle)
	if ui.version == "" {
		return title
	}
	return fmt.Sprintf("%s v%s", title, ui.version)
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	// Create menu
	ui.createMenu()

	ui.dropZone = NewDropZone(
		ui.localization.GetText(KeyDropPrompt),
		ui.localization.GetText(KeyDropHint),
		ui.localization.GetText(KeySupportedFormats),
		ui.controller.Replace,
	)

	// Error banner
	ui.errorLabel = widget.NewLabel("")
	ui.errorLabel.Importance = widget.DangerImportance
	ui.errorLabel.Wrapping = fyne.TextWrapWord
	ui.errorBanner = container.NewStack(canvas.NewRectangle(theme.Color(theme.ColorNameInputBackground)), ui.errorLabel)
	ui.errorBanner.Hide()

	ui.loading = widget.NewProgressBarInfinite()
	ui.loading.Hide()

	// File info row
	ui.fileNameLabel = widget.NewLabel("")
	ui.fileNameLabel.Truncation = fyne.TextTruncateEllipsis
	ui.fileSizeLabel = widget.NewLabel("")
	ui.fileSizeLabel.Importance = widget.LowImportance
	ui.fileInfo = container.NewBorder(nil, nil, nil, ui.fileSizeLabel, ui.fileNameLabel)
	ui.fileInfo.Hide()

	// Progress row
	ui.progressBar = widget.NewProgressBar()
	ui.progressBar.TextFormatter = func() string { return "" }
	ui.progressTheme = &progressTheme{}
	ui.progressFill = container.NewThemeOverride(ui.progressBar, ui.progressTheme)
	ui.percentLabel = canvas.NewText(fmt.Sprintf(ProgressLabelFormat, 0), theme.Color(theme.ColorNameForeground))
	ui.percentLabel.TextStyle = fyne.TextStyle{Bold: true}
	ui.progressRow = container.NewBorder(nil, nil, nil, container.NewCenter(ui.percentLabel), ui.progressFill)
	ui.progressRow.Hide()

	// Preview
	ui.previewImage = canvas.NewImageFromResource(nil)
	ui.previewImage.FillMode = canvas.ImageFillContain
	ui.previewImage.SetMinSize(fyne.NewSize(DropZoneMinWidth, PreviewMinHeight))
	ui.restoredLabel = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Italic: true})
	ui.restoredLabel.Importance = widget.LowImportance
	ui.restoredLabel.Hide()
	ui.previewBox = container.NewVBox(ui.previewImage, ui.restoredLabel)
	ui.previewBox.Hide()

	ui.successLabel = widget.NewLabelWithStyle(IconSuccess+" "+ui.localization.GetText(KeyUploadComplete), fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	ui.successLabel.Importance = widget.SuccessImportance
	ui.successLabel.Hide()

	// Actions
	ui.replaceBtn = widget.NewButton(IconReplace+" "+ui.localization.GetText(KeyReplace), ui.controller.Replace)
	ui.replaceBtn.Importance = widget.HighImportance
	ui.removeBtn = widget.NewButton(IconRemove+" "+ui.localization.GetText(KeyRemove), ui.controller.Remove)
	ui.removeBtn.Importance = widget.DangerImportance
	ui.actions = container.NewGridWithColumns(2, ui.replaceBtn, ui.removeBtn)
	ui.actions.Hide()

	content := container.NewVBox(
		ui.dropZone,
		ui.errorBanner,
		ui.loading,
		ui.fileInfo,
		ui.progressRow,
		ui.previewBox,
		ui.successLabel,
		ui.actions,
	)

	ui.window.SetContent(container.NewPadded(container.NewVScroll(content)))

	// UI setup completed
	log.Printf("UI setup completed successfully")
}

// setupInput wires window drops and keyboard shortcuts to the controller
func (ui *RootUI) setupInput() {
	ui.window.SetOnDropped(func(_ fyne.Position, uris []fyne.URI) {
		if len(uris) == 0 {
			return
		}
		if len(uris) > 1 {
			log.Printf("Dropped %d files, using the first", len(uris))
		}
		ui.dropZone.Squeeze()
		ui.handleURI(uris[0])
	})

	canv := ui.window.Canvas()
	canv.SetOnTypedKey(func(ev *fyne.KeyEvent) {
		if ev.Name == fyne.KeyEscape {
			ui.controller.HandleEscape()
		}
	})
	canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyR, Modifier: fyne.KeyModifierControl}, func(fyne.Shortcut) {
		ui.controller.Replace()
	})
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	// Settings menu item
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	// Language submenu
	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))

	availableLanguages := ui.localization.GetAvailableLanguages()
	for code, name := range availableLanguages {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})

		// Mark current language
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	// Create main menu
	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)

	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.windowTitle())

	ui.dropZone.SetTexts(
		ui.localization.GetText(KeyDropPrompt),
		ui.localization.GetText(KeyDropHint),
		ui.localization.GetText(KeySupportedFormats),
	)
	ui.successLabel.SetText(IconSuccess + " " + ui.localization.GetText(KeyUploadComplete))
	ui.replaceBtn.SetText(IconReplace + " " + ui.localization.GetText(KeyReplace))
	ui.removeBtn.SetText(IconRemove + " " + ui.localization.GetText(KeyRemove))

	// Error banner and restore note come from the controller
	ui.controller.RefreshTexts()
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, func() {
		ui.localization.SetLanguage(ui.settings.GetLanguage())
		ui.refreshUITexts()
		ui.createMenu()
	})
}

// handleURI turns a dropped or picked URI into a descriptor for the controller
func (ui *RootUI) handleURI(uri fyne.URI) {
	desc, err := platform.DescriptorFromURI(uri)
	if err != nil {
		name := ""
		if uri != nil {
			name = uri.Name()
		}
		ui.controller.HandleUnreadable(name, err)
		return
	}
	ui.controller.HandleFile(desc)
}

// Render draws the controller state
func (ui *RootUI) Render(state model.UIState) {
	if state.ErrorVisible() {
		ui.errorLabel.SetText(IconError + " " + state.ErrorMessage)
		ui.errorBanner.Show()
	} else {
		ui.errorBanner.Hide()
	}

	if state.Loading {
		ui.loading.Show()
	} else {
		ui.loading.Hide()
	}

	if state.FileName != "" {
		ui.fileNameLabel.SetText(state.FileIcon + " " + state.FileName)
		ui.fileSizeLabel.SetText(state.FileSize)
		ui.fileInfo.Show()
	} else {
		ui.fileInfo.Hide()
	}

	ui.renderProgress(state.Percent)
	if state.ProgressVisible {
		ui.progressRow.Show()
	} else {
		ui.progressRow.Hide()
	}

	ui.renderPreview(state)

	if state.SuccessVisible {
		ui.successLabel.Show()
	} else {
		ui.successLabel.Hide()
	}

	if state.ActionsVisible {
		ui.actions.Show()
	} else {
		ui.actions.Hide()
	}
}

// renderProgress fills the bar, turning it green at 100%, and bounces the label on quarter steps
func (ui *RootUI) renderProgress(percent int) {
	ui.progressBar.SetValue(float64(percent) / 100)

	if complete := percent >= 100; complete != ui.progressTheme.complete {
		ui.progressTheme.complete = complete
		ui.progressFill.Refresh()
	}

	ui.percentLabel.Text = fmt.Sprintf(ProgressLabelFormat, percent)
	ui.percentLabel.Color = theme.Color(theme.ColorNameForeground)
	ui.percentLabel.Refresh()

	if shouldBounce(ui.lastPercent, percent) {
		ui.bouncePercent()
	}
	ui.lastPercent = percent
}

func (ui *RootUI) bouncePercent() {
	if ui.bouncing != nil {
		ui.bouncing.Stop()
	}
	base := theme.TextSize()
	ui.bouncing = fyne.NewAnimation(PercentBounceDuration, func(progress float32) {
		ui.percentLabel.TextSize = base * bounceScale(progress)
		ui.percentLabel.Refresh()
	})
	ui.bouncing.Start()
}

// shouldBounce is true when the percentage lands on a new 25% step
func shouldBounce(prev, percent int) bool {
	return percent != prev && percent > 0 && percent%25 == 0
}

// bounceScale grows the text to PercentBounceScale at mid-animation and back
func bounceScale(progress float32) float32 {
	if progress <= 0 || progress >= 1 {
		return 1
	}
	return 1 + (PercentBounceScale-1)*float32(math.Sin(math.Pi*float64(progress)))
}

func (ui *RootUI) renderPreview(state model.UIState) {
	if !state.Phase.ShowsPreview() || !state.PreviewVisible {
		ui.previewBox.Hide()
		return
	}

	if state.DataURI != ui.shownDataURI {
		ui.shownDataURI = state.DataURI
		ui.previewImage.Resource = nil
		if state.DataURI != "" {
			if _, data, err := platform.DecodeDataURI(state.DataURI); err != nil {
				log.Printf("Cannot display preview: %v", err)
			} else {
				ui.previewImage.Resource = fyne.NewStaticResource("preview", data)
			}
		}
	}

	if state.PreviewDimmed {
		ui.previewImage.Translucency = 0.5
	} else {
		ui.previewImage.Translucency = 0
	}
	ui.previewImage.Refresh()

	if state.RestoredNote != "" {
		ui.restoredLabel.SetText(state.RestoredNote)
		ui.restoredLabel.Show()
	} else {
		ui.restoredLabel.Hide()
	}
	ui.previewBox.Show()
}

// Shake jiggles the drop zone
func (ui *RootUI) Shake() {
	ui.dropZone.Shake()
}

// OpenFileChooser shows a file dialog filtered to image extensions
func (ui *RootUI) OpenFileChooser() {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			log.Printf("File chooser failed: %v", err)
			return
		}
		if reader == nil {
			return
		}
		uri := reader.URI()
		if cerr := reader.Close(); cerr != nil {
			log.Printf("Failed to close %s: %v", uri.Name(), cerr)
		}
		ui.handleURI(uri)
	}, ui.window)

	fd.SetFilter(storage.NewExtensionFileFilter(platform.ImageExtensions))
	fd.Resize(fyne.NewSize(WindowWidth, WindowHeight*0.8))
	fd.Show()
}

// Notify shows a short toast in the top-right corner
func (ui *RootUI) Notify(message string) {
	label := widget.NewLabel(message)
	label.Alignment = fyne.TextAlignCenter
	toastPopup := widget.NewPopUp(label, ui.window.Canvas())

	canvasSize := ui.window.Canvas().Size()
	toastSize := fyne.NewSize(ToastWidth, ToastHeight)
	toastPopup.Resize(toastSize)
	toastPopup.Move(fyne.NewPos(canvasSize.Width-toastSize.Width-ToastMargin, ToastMargin))
	toastPopup.Show()

	// Auto-hide after configured time
	go func() {
		time.Sleep(ToastAutoHide)
		fyne.Do(toastPopup.Hide)
	}()
}

package main

import (
	"fmt"
	"io"
	"log"
	"runtime"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"

	"github.com/ytget/image-drop/internal/config"
	"github.com/ytget/image-drop/internal/preview"
	"github.com/ytget/image-drop/internal/ui"
	"github.com/ytget/image-drop/internal/upload"
)

// prefsFlushDelay gives Fyne time to write preferences before a CLI command exits
const prefsFlushDelay = 200 * time.Millisecond

// runWindow opens the uploader window and blocks until it is closed
func runWindow() error {
	log.Printf("%s v%s starting...", AppName, version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewUploaderTheme())

	// RootUI owns the title so it follows the selected language
	myWindow := myApp.NewWindow("")
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))
	myWindow.SetIcon(ui.AppIcon)

	// Timers and preview reads report back on the UI goroutine
	scheduler := upload.NewScheduler(fyne.Do)
	simulator := upload.NewSimulator(scheduler, upload.NewRandomPacer())
	renderer := preview.NewRenderer(fyne.Do)

	ui.NewRootUI(myWindow, myApp, version, simulator, renderer, scheduler)

	myWindow.ShowAndRun()
	return nil
}

func clearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Forget the saved image",
		Long:  `Remove the image and timestamp kept from the last upload.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			myApp := app.NewWithID(AppID)
			if clearSavedImage(myApp.Preferences(), cmd.OutOrStdout()) {
				time.Sleep(prefsFlushDelay)
			}
			return nil
		},
	}
}

// clearSavedImage removes the persisted image and reports whether there was one
func clearSavedImage(prefs fyne.Preferences, out io.Writer) bool {
	store := config.NewImageStore(prefs, nil)

	if _, ok := store.Load(); !ok {
		fmt.Fprintln(out, "No saved image")
		return false
	}
	store.Clear()
	fmt.Fprintln(out, "Saved image removed")
	return true
}

func versionCmd() *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print version, commit, and build information for Image Drop.`,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			if short {
				fmt.Fprintln(out, version)
				return
			}

			fmt.Fprintf(out, "%s\n\n", AppName)
			fmt.Fprintf(out, "  Version:    %s\n", version)
			fmt.Fprintf(out, "  Commit:     %s\n", commit)
			fmt.Fprintf(out, "  Built:      %s\n", date)
			fmt.Fprintf(out, "  Go version: %s\n", runtime.Version())
			fmt.Fprintf(out, "  OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}

	cmd.Flags().BoolVarP(&short, "short", "s", false, "Print only version number")

	return cmd
}

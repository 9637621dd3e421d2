package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const (
	AppID   = "com.ytget.image-drop"
	AppName = "Image Drop"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "image-drop",
		Short: "Drag-and-drop image uploader",
		Long: `Image Drop is a desktop widget for picking or dropping a JPG, PNG or GIF,
watching it upload and keeping the last image across restarts.

Run without arguments to open the window.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWindow()
		},
	}

	rootCmd.AddCommand(
		clearCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

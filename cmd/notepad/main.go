package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/GabrielSantos23/notepad/internal/clipboard"
	"github.com/GabrielSantos23/notepad/internal/config"
	"github.com/GabrielSantos23/notepad/internal/logger"
	"github.com/GabrielSantos23/notepad/internal/note"
	"github.com/GabrielSantos23/notepad/internal/ui"
)

var version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:   "notepad",
	Short: "Terminal notes with live markdown styling",
	Long: `A block based note editor for the terminal.

Paragraphs and checklist items are styled as you type:
**bold**, *italic*, ~~strikethrough~~ and ` + "`inline code`" + `.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runNotepad,
}

func init() {
	rootCmd.PersistentPreRunE = initConfig
	rootCmd.AddCommand(annotateCmd)

	rootCmd.PersistentFlags().String("config", "", "Config file (default: search notepad.yaml in the usual places)")
	rootCmd.PersistentFlags().String("log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")
	rootCmd.Flags().Bool("no-sidebar", false, "Start with the note list closed")

	viper.BindPFlag("log_file", rootCmd.PersistentFlags().Lookup("log-file"))
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
}

func initConfig(cmd *cobra.Command, args []string) error {
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		config.SetConfigFile(path)
	}
	if err := config.Init(); err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	return nil
}

// openLogger opens the configured log file. Logging is best effort: when
// the file cannot be opened the returned logger discards everything.
func openLogger() (*logger.Logger, func()) {
	level, err := logger.ParseLevel(config.GetLogLevel())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	log, cleanup, err := logger.NewFileLogger(config.GetLogFile(), level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		return logger.Discard(), func() {}
	}
	return log, cleanup
}

func runNotepad(cmd *cobra.Command, args []string) error {
	if closed, _ := cmd.Flags().GetBool("no-sidebar"); closed {
		config.SetSidebar(false)
	}

	log, cleanup := openLogger()
	defer cleanup()
	log.ConfigLoaded(config.ConfigFileUsed(), config.GetSidebar())

	err := ui.Run(note.Sample(), ui.Options{
		Sidebar:   config.GetSidebar(),
		Clipboard: clipboard.System(),
		Logger:    log,
	})
	if err != nil {
		log.Error("notepad exited", "error", err)
	}
	return err
}

func main() {
	rootCmd.Version = version
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

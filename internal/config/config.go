package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"
)

// Config holds the application configuration
type Config struct {
	Sidebar       bool   `mapstructure:"sidebar"`
	SidebarWidth  int    `mapstructure:"sidebar_width"`
	ColorText     string `mapstructure:"color_text"`
	ColorHeader   string `mapstructure:"color_header"`
	ColorMuted    string `mapstructure:"color_muted"`
	ColorSelected string `mapstructure:"color_selected"`
	ColorAccent   string `mapstructure:"color_accent"`
	ColorCodeFg   string `mapstructure:"color_code_fg"`
	ColorCodeBg   string `mapstructure:"color_code_bg"`
	LogFile       string `mapstructure:"log_file"`
	LogLevel      string `mapstructure:"log_level"`
}

// C is the global config instance
var C Config

// configFile is the explicit config path, empty when searching
var configFile string

const (
	minSidebarWidth = 12
	maxSidebarWidth = 60
)

// Init initializes configuration with viper
func Init() error {
	setDefaults()

	viper.SetConfigName("notepad")
	viper.SetConfigType("yaml")

	viper.AddConfigPath(filepath.Join(xdg.ConfigHome, "notepad"))
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(filepath.Join(home, ".config", "notepad"))
		viper.AddConfigPath(home)
	}
	viper.AddConfigPath(".")

	// SetConfigName clears any explicit file, so it is applied last
	if configFile != "" {
		viper.SetConfigFile(configFile)
	}

	viper.SetEnvPrefix("NOTEPAD")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// A missing file is fine, a broken one is not
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	if err := viper.Unmarshal(&C); err != nil {
		return fmt.Errorf("failed to decode config: %w", err)
	}
	return Validate()
}

func setDefaults() {
	viper.SetDefault("sidebar", true)
	viper.SetDefault("sidebar_width", 24)
	viper.SetDefault("color_text", "252")
	viper.SetDefault("color_header", "36") // Cyan
	viper.SetDefault("color_muted", "241") // Gray
	viper.SetDefault("color_selected", "236")
	viper.SetDefault("color_accent", "212")  // Pink
	viper.SetDefault("color_code_fg", "203") // Red
	viper.SetDefault("color_code_bg", "235")
	viper.SetDefault("log_file", defaultLogFile())
	viper.SetDefault("log_level", "info")
}

// Validate checks values that would break the layout
func Validate() error {
	w := viper.GetInt("sidebar_width")
	if w < minSidebarWidth || w > maxSidebarWidth {
		return fmt.Errorf("sidebar_width must be between %d and %d, got %d", minSidebarWidth, maxSidebarWidth, w)
	}
	return nil
}

// Reset clears all configuration (useful for testing)
func Reset() {
	viper.Reset()
	C = Config{}
	configFile = ""
	setDefaults()
}

// SetConfigFile uses an explicit config file instead of the search paths.
// Unlike a searched file, a missing explicit file is an error.
func SetConfigFile(path string) {
	configFile = expandTilde(path)
}

// ConfigFileUsed returns the config file that was read, if any
func ConfigFileUsed() string {
	return viper.ConfigFileUsed()
}

func defaultLogFile() string {
	return filepath.Join(xdg.StateHome, "notepad", "notepad.log")
}

// expandTilde expands ~ to the user's home directory
func expandTilde(path string) string {
	if len(path) == 0 {
		return path
	}
	if path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// GetSidebar returns whether the notes sidebar starts open
func GetSidebar() bool {
	return viper.GetBool("sidebar")
}

// GetSidebarWidth returns the sidebar width in cells
func GetSidebarWidth() int {
	return viper.GetInt("sidebar_width")
}

// GetColorText returns the color for body text
func GetColorText() string {
	return viper.GetString("color_text")
}

// GetColorHeader returns ANSI color code for header blocks
func GetColorHeader() string {
	return viper.GetString("color_header")
}

// GetColorMuted returns the color for hints and checked todos
func GetColorMuted() string {
	return viper.GetString("color_muted")
}

// GetColorSelected returns the selection background
func GetColorSelected() string {
	return viper.GetString("color_selected")
}

// GetColorAccent returns the color for the cursor and pins
func GetColorAccent() string {
	return viper.GetString("color_accent")
}

// GetColorCodeFg returns the inline code foreground
func GetColorCodeFg() string {
	return viper.GetString("color_code_fg")
}

// GetColorCodeBg returns the inline code background
func GetColorCodeBg() string {
	return viper.GetString("color_code_bg")
}

// GetLogFile returns the log file path with tilde expansion
func GetLogFile() string {
	return expandTilde(viper.GetString("log_file"))
}

// GetLogLevel returns the log level name
func GetLogLevel() string {
	return viper.GetString("log_level")
}

// SetSidebar sets the sidebar state at runtime
func SetSidebar(open bool) {
	viper.Set("sidebar", open)
	C.Sidebar = open
}

// SetLogFile sets the log file at runtime
func SetLogFile(path string) {
	viper.Set("log_file", path)
	C.LogFile = path
}

// SetLogLevel sets the log level at runtime
func SetLogLevel(level string) {
	viper.Set("log_level", level)
	C.LogLevel = level
}

package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"
)

// Window size constants
const (
	defaultWidth  = 480
	defaultHeight = 800
	minWidth      = 240
	minHeight     = 320
)

// Sort method constants
const (
	SortNatural    = 0 // Natural sort order (e.g., file1, file2, file10)
	SortSimple     = 1 // Simple string sort (lexicographical)
	SortEntryOrder = 2 // Keep the order images were found in
)

// Gesture tuning defaults
const (
	defaultDeadZone           = 2.0   // px before a move gets a direction
	defaultSwipeCriticalRatio = 0.4   // share of viewport width that commits a swipe
	defaultSwipeShortTimeMs   = 300   // swipes faster than this commit in their direction
	defaultMinTop             = -60.0 // bottom overscroll limit while panning
	defaultMaxTop             = 60.0  // top overscroll limit while panning
	defaultMaxScale           = 3.0   // pinch ceiling
	defaultMinScale           = 0.1   // pinch floor
	defaultTapSlop            = 10.0  // px a tap may wander
	defaultTapTimeoutMs       = 500   // taps must be shorter than this
	defaultNeighborSizeRatio  = 0.9   // neighbour tile size relative to viewport width
)

// GestureSettings holds the thresholds of the touch engine
type GestureSettings struct {
	DeadZone           float64 `json:"dead_zone"`
	SwipeCriticalRatio float64 `json:"swipe_critical_ratio"`
	SwipeShortTimeMs   int     `json:"swipe_short_time_ms"`
	MinTop             float64 `json:"min_top"`
	MaxTop             float64 `json:"max_top"`
	MaxScale           float64 `json:"max_scale"`
	MinScale           float64 `json:"min_scale"`
	TapSlop            float64 `json:"tap_slop"`
	TapTimeoutMs       int     `json:"tap_timeout_ms"`
	NeighborSizeRatio  float64 `json:"neighbor_size_ratio"`
}

func (g GestureSettings) swipeShortTime() time.Duration {
	return time.Duration(g.SwipeShortTimeMs) * time.Millisecond
}

func (g GestureSettings) tapTimeout() time.Duration {
	return time.Duration(g.TapTimeoutMs) * time.Millisecond
}

// DefaultGestureSettings returns the stock thresholds
func DefaultGestureSettings() GestureSettings {
	return GestureSettings{
		DeadZone:           defaultDeadZone,
		SwipeCriticalRatio: defaultSwipeCriticalRatio,
		SwipeShortTimeMs:   defaultSwipeShortTimeMs,
		MinTop:             defaultMinTop,
		MaxTop:             defaultMaxTop,
		MaxScale:           defaultMaxScale,
		MinScale:           defaultMinScale,
		TapSlop:            defaultTapSlop,
		TapTimeoutMs:       defaultTapTimeoutMs,
		NeighborSizeRatio:  defaultNeighborSizeRatio,
	}
}

// validate resets out-of-range thresholds to their defaults and reports
// which ones were touched
func (g *GestureSettings) validate() []string {
	var warnings []string
	d := DefaultGestureSettings()

	if g.DeadZone < 0 {
		g.DeadZone = d.DeadZone
		warnings = append(warnings, "gestures.dead_zone must not be negative")
	}
	if g.SwipeCriticalRatio <= 0 || g.SwipeCriticalRatio > 1 {
		g.SwipeCriticalRatio = d.SwipeCriticalRatio
		warnings = append(warnings, "gestures.swipe_critical_ratio must be in (0, 1]")
	}
	if g.SwipeShortTimeMs < 0 {
		g.SwipeShortTimeMs = d.SwipeShortTimeMs
		warnings = append(warnings, "gestures.swipe_short_time_ms must not be negative")
	}
	if g.MinTop > 0 || g.MaxTop < 0 {
		g.MinTop = d.MinTop
		g.MaxTop = d.MaxTop
		warnings = append(warnings, "gestures.min_top must be <= 0 and gestures.max_top >= 0")
	}
	if g.MaxScale < 1 {
		g.MaxScale = d.MaxScale
		warnings = append(warnings, "gestures.max_scale must be at least 1")
	}
	if g.MinScale <= 0 || g.MinScale > 1 {
		g.MinScale = d.MinScale
		warnings = append(warnings, "gestures.min_scale must be in (0, 1]")
	}
	if g.TapSlop < 0 {
		g.TapSlop = d.TapSlop
		warnings = append(warnings, "gestures.tap_slop must not be negative")
	}
	if g.TapTimeoutMs <= 0 {
		g.TapTimeoutMs = d.TapTimeoutMs
		warnings = append(warnings, "gestures.tap_timeout_ms must be positive")
	}
	if g.NeighborSizeRatio <= 0 || g.NeighborSizeRatio > 1 {
		g.NeighborSizeRatio = d.NeighborSizeRatio
		warnings = append(warnings, "gestures.neighbor_size_ratio must be in (0, 1]")
	}

	return warnings
}

// ConfigLoadResult contains the result of loading configuration
type ConfigLoadResult struct {
	Config   Config
	HasError bool
	Warnings []string
	Status   string // "OK", "Default", "Warning", "Error"
}

type Config struct {
	WindowWidth        int             `json:"window_width"`
	WindowHeight       int             `json:"window_height"`
	Fullscreen         bool            `json:"fullscreen"`
	SortMethod         int             `json:"sort_method"`
	CacheSize          int             `json:"cache_size"`
	PreloadEnabled     bool            `json:"preload_enabled"`
	PreloadCount       int             `json:"preload_count"`
	ShowPageIndicator  bool            `json:"show_page_indicator"`
	FontSize           float64         `json:"font_size"`
	EnableMousePointer bool            `json:"enable_mouse_pointer"`
	Gestures           GestureSettings `json:"gestures"`
}

// DefaultConfig returns the configuration used when no file exists
func DefaultConfig() Config {
	return Config{
		WindowWidth:        defaultWidth,
		WindowHeight:       defaultHeight,
		Fullscreen:         false,
		SortMethod:         SortNatural,
		CacheSize:          16,
		PreloadEnabled:     true,
		PreloadCount:       2,
		ShowPageIndicator:  true,
		FontSize:           18.0,
		EnableMousePointer: true,
		Gestures:           DefaultGestureSettings(),
	}
}

func getConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "swipeview.json"
	}
	return filepath.Join(homeDir, ".swipeview.json")
}

func loadConfig() ConfigLoadResult {
	return loadConfigFromPath(getConfigPath())
}

func loadConfigFromPath(configPath string) ConfigLoadResult {
	config := DefaultConfig()

	result := ConfigLoadResult{
		Config:   config,
		HasError: false,
		Warnings: []string{},
		Status:   "OK",
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		// Config file not found is not an error - use defaults
		result.Status = "Default"
		return result
	}

	if err := json.Unmarshal(data, &config); err != nil {
		log.Printf("Warning: Invalid config file %s, using defaults: %v", configPath, err)
		result.HasError = true
		result.Status = "Error"
		result.Warnings = append(result.Warnings, fmt.Sprintf("Invalid config file: %v", err))
		return result
	}

	if config.WindowWidth < minWidth {
		config.WindowWidth = defaultWidth
	}
	if config.WindowHeight < minHeight {
		config.WindowHeight = defaultHeight
	}

	if config.SortMethod < SortNatural || config.SortMethod > SortEntryOrder {
		config.SortMethod = SortNatural
	}

	// Cache must at least hold the active tile and both neighbours
	if config.CacheSize < 3 {
		config.CacheSize = 16
	} else if config.CacheSize > 64 {
		config.CacheSize = 64
	}

	if config.PreloadCount < 1 {
		config.PreloadCount = 2
	} else if config.PreloadCount > 16 {
		config.PreloadCount = 16
	}

	if config.FontSize < 8.0 {
		config.FontSize = 18.0
	}

	if warnings := config.Gestures.validate(); len(warnings) > 0 {
		for _, w := range warnings {
			log.Printf("Warning: %s, using default", w)
		}
		result.Status = "Warning"
		result.Warnings = append(result.Warnings, warnings...)
	}

	result.Config = config
	return result
}

func saveConfig(config Config, configPath string) {
	// Don't save if size is too small
	if config.WindowWidth < minWidth || config.WindowHeight < minHeight {
		log.Printf("Warning: Not saving config with invalid window size: %dx%d",
			config.WindowWidth, config.WindowHeight)
		return
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		log.Printf("Error: Failed to marshal config: %v", err)
		return
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		log.Printf("Error: Failed to save config to %s: %v", configPath, err)
	}
}

// Package config provides configuration management for art-exposure.
//
// This package handles:
//   - Loading and saving settings from TOML files
//   - Default configuration values
//   - Range validation
//
// # Default Settings
//
//	settings := config.DefaultSettings()
//	// Searches for "Impressionism", 20 attempts
//	// 100 px transparent border, no caption
//	// Writes to ~/.art-exposure and sets the wallpaper
//
// # Loading from File
//
//	settings, err := config.Load("/path/to/config.toml")
//	if err != nil {
//	    // Uses defaults if file doesn't exist
//	}
//
// # Saving Settings
//
//	settings.Query = "Hokusai"
//	err := settings.Save("/path/to/config.toml")
//
// Command line flags override the values read from the file.
package config

package config

import "github.com/thenoetrevino/bulletin/internal/config/colors"

// ColorScheme is the configurable palette
type ColorScheme = colors.ColorScheme

// DefaultColorScheme returns the slate and teal default palette
func DefaultColorScheme() ColorScheme {
	return *colors.Default()
}

// MonochromeColorScheme returns a black and white color scheme
func MonochromeColorScheme() ColorScheme {
	return *colors.Monochrome()
}

package config

// WindowTitle is shown by the window frontend
const WindowTitle = "Invaders must die"

// GetWindowSize returns the window size for a viewport
func GetWindowSize(c *Config) (width, height int) {
	return int(c.Width), int(c.Height)
}

package model

// MaxRecentJobs caps the recent-jobs list kept in AppConfig.
const MaxRecentJobs = 10

// AppConfig holds application-wide preferences and default job settings.
type AppConfig struct {
	// Defaults applied to new jobs
	DefaultZoom          int         `json:"default_zoom" yaml:"default_zoom"`
	DefaultSpacingInches float64     `json:"default_spacing_inches" yaml:"default_spacing_inches"`
	DefaultWastePercent  float64     `json:"default_waste_percent" yaml:"default_waste_percent"`
	DefaultColorScheme   string      `json:"default_color_scheme" yaml:"default_color_scheme"`
	DefaultDrawingMode   DrawingMode `json:"default_drawing_mode" yaml:"default_drawing_mode"`
	DefaultPricing       Pricing     `json:"default_pricing" yaml:"default_pricing"`

	// Application preferences
	RecentJobs []string `json:"recent_jobs" yaml:"recent_jobs"`
	Theme      string   `json:"theme" yaml:"theme"` // "light", "dark", "system"
}

// DefaultAppConfig returns an AppConfig populated with the same values
// NewJob uses.
func DefaultAppConfig() AppConfig {
	job := NewJob()
	return AppConfig{
		DefaultZoom:          job.Scale.Zoom,
		DefaultSpacingInches: job.Lights.SpacingInches,
		DefaultWastePercent:  job.Lights.WastePercent,
		DefaultColorScheme:   job.Lights.ColorScheme,
		DefaultDrawingMode:   job.DrawingMode,
		DefaultPricing:       job.Pricing,
		RecentJobs:           []string{},
		Theme:                "system",
	}
}

// ApplyToJob copies the saved defaults into a job.
// This is used when creating a new job so it inherits the user's preferences.
func (c AppConfig) ApplyToJob(j *Job) {
	if c.DefaultZoom > 0 {
		j.Scale.Zoom = c.DefaultZoom
	}
	if c.DefaultSpacingInches > 0 {
		j.Lights.SpacingInches = c.DefaultSpacingInches
	}
	j.Lights.WastePercent = c.DefaultWastePercent
	if c.DefaultColorScheme != "" {
		j.Lights.ColorScheme = c.DefaultColorScheme
	}
	if c.DefaultDrawingMode != "" {
		j.DrawingMode = c.DefaultDrawingMode
	}
	j.Pricing = c.DefaultPricing
}

// AddRecentJob moves path to the front of the recent list, dropping
// duplicates and anything past MaxRecentJobs.
func (c *AppConfig) AddRecentJob(path string) {
	recent := []string{path}
	for _, p := range c.RecentJobs {
		if p != path {
			recent = append(recent, p)
		}
	}
	if len(recent) > MaxRecentJobs {
		recent = recent[:MaxRecentJobs]
	}
	c.RecentJobs = recent
}

package dto

// ThemeRequest sets the display theme.
type ThemeRequest struct {
	Theme string `json:"theme" binding:"required,oneof=light dark"`
}

// PreferencesResponse lists operator preferences.
type PreferencesResponse struct {
	Theme string `json:"theme"`
}

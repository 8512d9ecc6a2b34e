package profile

// UserProfile is the human user's identity, optionally shared into the
// responder prompt.
type UserProfile struct {
	Name   string `json:"name"`
	About  string `json:"about"`
	Status string `json:"status"`
	Avatar string `json:"avatar"`
}

// AppSettings is cross-cutting configuration read by the responder.
// Theme and APIKey are stored for the client but never interpreted here.
type AppSettings struct {
	Theme         string `json:"theme"`
	APIKey        string `json:"apiKey,omitempty"`
	Model         string `json:"model"`
	ShareUserInfo bool   `json:"shareUserInfo"`
	ShareTime     bool   `json:"shareTime"`
	CalendarNotes string `json:"calendarNotes,omitempty"`
}

// DefaultProfile matches the identity a fresh install starts with.
func DefaultProfile() UserProfile {
	return UserProfile{
		Name:   "You",
		About:  "Hey there! I am using WhatsApp.",
		Status: "Available",
		Avatar: "https://images.unsplash.com/photo-1535713875002-d1d0cf377fde?w=200&h=200&fit=crop",
	}
}

// DefaultSettings returns the initial app settings.
func DefaultSettings() AppSettings {
	return AppSettings{
		Theme:         "light",
		Model:         "gemini-2.5-flash",
		ShareUserInfo: true,
		ShareTime:     true,
	}
}

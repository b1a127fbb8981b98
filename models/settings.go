package models

// AppSettings is the singleton application settings record.
type AppSettings struct {
	Theme    string `json:"theme"`
	Currency string `json:"currency"`
}

// DefaultSettings returns the settings used when nothing has been saved yet.
func DefaultSettings() AppSettings {
	return AppSettings{Theme: "system", Currency: "€"}
}

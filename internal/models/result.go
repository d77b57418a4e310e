package models

// MediaResult is the response body for /download. On failure only Ok and
// Message are populated.
type MediaResult struct {
	Ok       bool     `json:"ok"`
	Message  string   `json:"message"`
	Avatar   string   `json:"avatar,omitempty"`
	Caption  string   `json:"caption,omitempty"`
	URL      []string `json:"url,omitempty"`
	Username string   `json:"username,omitempty"`
}

type HealthStatus struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

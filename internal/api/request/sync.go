package request

// ConfigureSyncRequest carries the upstream sync settings. The token is
// accepted here once and stored encrypted; it is never echoed back.
type ConfigureSyncRequest struct {
	BaseURL         string `json:"baseUrl"`
	Token           string `json:"token"`
	AutoSyncEnabled bool   `json:"autoSyncEnabled"`
}

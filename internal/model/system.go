package model

// VersionInfo contains version information for the application and its
// database schema.
type VersionInfo struct {
	AppVersion string `json:"app_version"`
	DbVersion  string `json:"db_version"`
}

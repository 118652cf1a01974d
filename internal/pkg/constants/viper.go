package constants

const (
	ViperKeyBaseURL   = "base-url"
	ViperKeyOutputDir = "output-dir"
)

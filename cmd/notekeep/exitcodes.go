package main

// Exit codes returned by notekeep.
const (
	ExitSuccess      = 0 // Success
	ExitError        = 1 // General error, including usage errors
	ExitConfigError  = 2 // Configuration error (unreadable config, bad log level)
	ExitDataError    = 3 // Validation failure or unsupported export format
	ExitLicenseError = 4 // License key doesn't match email
	ExitIOError      = 5 // Export file could not be written
)

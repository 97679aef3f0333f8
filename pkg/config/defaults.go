package config

// Default values for configuration.
const (
	DefaultFileExtension   = ".zip"
	DefaultDelimiter       = ","
	DefaultTimestampFormat = "%I:%M:%S %p"
	DefaultTimestampDelta  = "00:15:00"
)

// EnvPrefix is the prefix of the environment variables that override
// configuration values, e.g. CSVSIFT_FILE_FOLDER.
const EnvPrefix = "csvsift"

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		FileExtension:   DefaultFileExtension,
		FileDelimiter:   DefaultDelimiter,
		OutputDelimiter: DefaultDelimiter,
	}
}

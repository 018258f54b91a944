package config

// Config is the top-level lendctl configuration.
type Config struct {
	Data    DataConfig    `mapstructure:"data" yaml:"data"`
	Display DisplayConfig `mapstructure:"display" yaml:"display"`
}

// DataConfig says where the library state file lives.
type DataConfig struct {
	Path string `mapstructure:"path" yaml:"path"`
}

// DisplayConfig holds list-rendering preferences.
type DisplayConfig struct {
	// FullLoanIDs disables the 8-character loan-id shortening in lists.
	FullLoanIDs bool `mapstructure:"full_loan_ids" yaml:"full_loan_ids"`
}

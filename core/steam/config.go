package steam

// Config holds configuration for the Steam Web API.
type Config struct {
	// APIKey is the Steam Web API key.
	APIKey string `mapstructure:"api_key" default:""`
	// AccountID is the 64-bit SteamID of the account to sync.
	AccountID string `mapstructure:"account_id" default:""`
}

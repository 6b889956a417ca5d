package notion

// Config holds configuration for the Notion API.
type Config struct {
	// Token is the integration token used as the bearer credential.
	Token string `mapstructure:"token" default:""`
	// DatabaseID is the identifier of the library database.
	DatabaseID string `mapstructure:"database_id" default:""`
}

package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// JwtSecret is the key used to sign admin session tokens.
	JwtSecret string `mapstructure:"jwt_secret" default:""`
	// TokenTTLHours is the session token lifetime in hours.
	TokenTTLHours int `mapstructure:"token_ttl_hours" default:"24"`
	// AdminUsername is the username seeded for the admin credential.
	AdminUsername string `mapstructure:"admin_username" default:"admin"`
	// AdminPassword is the initial password seeded for the admin credential.
	AdminPassword string `mapstructure:"admin_password" default:"admin123"`
}

// Validate checks that the configuration is usable for serving requests.
func (c Config) Validate() error {
	if c.JwtSecret == "" {
		return ErrMissingJwtSecret
	}
	if c.TokenTTLHours <= 0 {
		return ErrInvalidTokenTTL
	}
	return nil
}

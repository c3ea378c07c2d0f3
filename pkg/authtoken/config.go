package authtoken

import "time"

type Config struct {
	SigningKey string        `env:"JWT_SIGNING_KEY"`
	Issuer     string        `env:"JWT_ISSUER" envDefault:"posaccess"`
	Audience   string        `env:"JWT_AUDIENCE" envDefault:"pos"`
	TTL        time.Duration `env:"JWT_TTL" envDefault:"12h"`
	Leeway     time.Duration `env:"JWT_LEEWAY" envDefault:"30s"`
}

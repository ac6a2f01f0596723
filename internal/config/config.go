package config

import "github.com/caarlos0/env/v10"

// Config centraliza la configuración del servicio.
type Config struct {
	HTTPPort       string `env:"HTTP_PORT" envDefault:"5000"`
	MongoURI       string `env:"MONGO_URI,required"`
	MongoDatabase  string `env:"MONGO_DB" envDefault:"studentTracker"`
	JWTSecret      string `env:"JWT_SECRET,required"`
	SessionTTLDays int    `env:"SESSION_TTL_DAYS" envDefault:"365"`
	Environment    string `env:"APP_ENV" envDefault:"development"`
	RedisAddr      string `env:"REDIS_ADDR"`
	RedisPassword  string `env:"REDIS_PASSWORD"`
	RedisDB        int    `env:"REDIS_DB" envDefault:"0"`
}

// LoadConfig carga la configuración desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// IsProduction indica si el proceso corre en modo producción, lo que
// cambia los atributos de la cookie de sesión.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

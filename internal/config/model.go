package config

import "time"

// HTTP holds web-server tunables.
type HTTP struct {
	ListenAddr     string   `koanf:"listen_addr" validate:"required"`
	AllowedOrigins []string `koanf:"allowed_origins"`
	SecureCookies  bool     `koanf:"secure_cookies"`
}

// Storage selects the lead/template repository backend.
type Storage struct {
	Driver string `koanf:"driver" validate:"required,oneof=postgres memory"`
}

type Database struct {
	URL     string `koanf:"url"`
	MaxOpen int    `koanf:"max_open" validate:"gte=1"`
	MaxIdle int    `koanf:"max_idle" validate:"gte=0"`
	Migrate bool   `koanf:"migrate"`
}

// Auth is the single static credential pair. Both values must come from
// the environment or a config file; there are no built-in defaults.
type Auth struct {
	Username string `koanf:"username" validate:"required"`
	Password string `koanf:"password" validate:"required"`
}

// RabbitMQ is optional; an empty URL disables event publishing.
type RabbitMQ struct {
	URL string `koanf:"url"`
}

type Log struct {
	Level string `koanf:"level" validate:"oneof=debug info warn error"`
	File  string `koanf:"file"`
}

type Stats struct {
	Interval time.Duration `koanf:"interval" validate:"gt=0"`
}

type Config struct {
	HTTP     HTTP     `koanf:"http"`
	Storage  Storage  `koanf:"storage"`
	Database Database `koanf:"database"`
	Auth     Auth     `koanf:"auth"`
	RabbitMQ RabbitMQ `koanf:"rabbitmq"`
	Log      Log      `koanf:"log"`
	Stats    Stats    `koanf:"stats"`
}

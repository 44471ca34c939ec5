package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel   string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort   string `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	SocketPort string `yaml:"socket-port" env:"SOCKET_PORT" env-default:"9091"`
	Redis      Redis  `yaml:"redis"`
	Puzzle     Puzzle `yaml:"puzzle"`
}

type Redis struct {
	Host     string        `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port     string        `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	StateTTL time.Duration `yaml:"state-ttl" env:"REDIS_STATE_TTL" env-default:"24h"`
}

// Puzzle holds the board geometry. Coordinates are in client pixels.
type Puzzle struct {
	AssetsDir   string  `yaml:"assets-dir" env:"PUZZLE_ASSETS_DIR" env-default:"./assets"`
	GridSize    int     `yaml:"grid-size" env:"PUZZLE_GRID_SIZE" env-default:"4"`
	PieceSize   int     `yaml:"piece-size" env:"PUZZLE_PIECE_SIZE" env-default:"120"`
	BorderWidth int     `yaml:"border-width" env:"PUZZLE_BORDER_WIDTH" env-default:"2"`
	Seed        int64   `yaml:"seed" env:"PUZZLE_SEED" env-default:"0"`
	Staging     Staging `yaml:"staging"`
}

// Staging is the viewport area unplaced pieces are scattered over.
type Staging struct {
	X      float64 `yaml:"x" env:"PUZZLE_STAGING_X" env-default:"520"`
	Y      float64 `yaml:"y" env:"PUZZLE_STAGING_Y" env-default:"0"`
	Width  float64 `yaml:"width" env:"PUZZLE_STAGING_WIDTH" env-default:"400"`
	Height float64 `yaml:"height" env:"PUZZLE_STAGING_HEIGHT" env-default:"480"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}

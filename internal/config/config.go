package config

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env         string        `yaml:"env" env-default:"local"`
	DatabaseUrl string        `yaml:"database_url" env-required:"false"`
	Server      ServerConfig  `yaml:"rest" env-required:"false"`
	Storage     StorageConfig `yaml:"storage" env-required:"false"`
	Export      ExportConfig  `yaml:"export" env-required:"false"`
	CORS        CORSConfig    `yaml:"cors" env-required:"false"`
}

type ServerConfig struct {
	Port string `yaml:"port" env-default:"8080"`
}

// StorageConfig points the file-backed store at its data directory. It is
// ignored when database_url selects the Postgres store.
type StorageConfig struct {
	DataDir string `yaml:"data_dir" env-default:"./data"`
}

type ExportConfig struct {
	Dir           string        `yaml:"dir" env-default:"./exports"`
	Retention     time.Duration `yaml:"retention" env-default:"168h"`
	SweepInterval time.Duration `yaml:"sweep_interval" env-default:"1h"`
}

type CORSConfig struct {
	AllowedOrigin string `yaml:"allowed_origin" env-default:"http://localhost:3000"`
}

func MustLoad() *Config {
	path := fetchConfigPath()

	if path == "" {
		panic("Config file not found in path")
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		panic("Config file not found in path")
	}

	var config Config
	log.Printf("Loading config from %s", path)
	if err := cleanenv.ReadConfig(path, &config); err != nil {
		panic(err)
	}
	return &config

}

func fetchConfigPath() string {
	var res string

	flag.StringVar(&res, "config", "./config/local.yaml", "config path")
	flag.Parse()

	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}

	return res
}

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Transportes suportados pelo servidor MCP
const (
	TransportStdio = "stdio"
	TransportSSE   = "sse"
	TransportHTTP  = "http"
)

type Config struct {
	App    App    `mapstructure:",squash"`
	Server Server `mapstructure:",squash"`
	Meta   Meta   `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Transport string `mapstructure:"transport"`
	Host      string `mapstructure:"host"`
	Port      string `mapstructure:"port"`
}

type Meta struct {
	BaseURL string `mapstructure:"meta_base_url"`
	Version string `mapstructure:"meta_version"`
	URL     string `mapstructure:"-"`
}

func SetDefaults() {
	viper.SetDefault("TRANSPORT", TransportStdio)
	viper.SetDefault("HOST", "0.0.0.0")
	viper.SetDefault("PORT", "8000")

	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("META_VERSION", "v22.0")

	viper.SetDefault("LOG_LEVEL", "info")
}

// RegisterFlags declara as flags de linha de comando do servidor.
// O valor de --fb-token também é lido diretamente de os.Args pelo
// TokenResolver; declarar a flag aqui evita erro de flag desconhecida.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("fb-token", "", "Facebook access token")
	fs.String("transport", TransportStdio, "Transport mode: stdio (local), sse or http (remote)")
	fs.String("host", "0.0.0.0", "Bind host for sse/http transports")
	fs.String("port", "8000", "Bind port for sse/http transports")
}

func NewConfig(fs *pflag.FlagSet) (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Arquivo .env não lido pelo viper, usando variáveis de ambiente: ", err)
	}

	if fs != nil {
		for env, flag := range map[string]string{
			"TRANSPORT": "transport",
			"HOST":      "host",
			"PORT":      "port",
		} {
			if err := viper.BindPFlag(env, fs.Lookup(flag)); err != nil {
				return nil, err
			}
		}
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Meta.URL = fmt.Sprintf("%s/%s", config.Meta.BaseURL, config.Meta.Version)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
	}

	for _, location := range locations {
		if _, statErr := os.Stat(location); statErr != nil {
			continue
		}
		if err := godotenv.Load(location); err == nil {
			logrus.Debugf("Arquivo .env carregado de: %s", location)
			return
		}
	}
}

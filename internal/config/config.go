package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App           App           `mapstructure:",squash"`
	Server        Server        `mapstructure:",squash"`
	SalesAPI      SalesAPI      `mapstructure:",squash"`
	Dashboard     Dashboard     `mapstructure:",squash"`
	UpstreamCheck UpstreamCheck `mapstructure:",squash"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type App struct {
	Env      string `mapstructure:"app_env"`
	LogLevel string `mapstructure:"log_level"`
}

// SalesAPI aponta para a fonte remota dos registros de venda.
// Timeout zero significa requisição sem limite de tempo.
type SalesAPI struct {
	URL     string        `mapstructure:"sales_api_url"`
	Timeout time.Duration `mapstructure:"sales_api_timeout"`
}

type Dashboard struct {
	MinYear    int `mapstructure:"dashboard_min_year"`
	MaxYear    int `mapstructure:"dashboard_max_year"`
	TopSellers int `mapstructure:"dashboard_top_sellers"`
}

type UpstreamCheck struct {
	CronSchedule string `mapstructure:"upstream_check_cron"`
	Enabled      bool   `mapstructure:"upstream_check_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:8501")

	viper.SetDefault("SALES_API_URL", "https://labdados.com/produtos")
	viper.SetDefault("SALES_API_TIMEOUT", "0s")

	viper.SetDefault("DASHBOARD_MIN_YEAR", 2020)
	viper.SetDefault("DASHBOARD_MAX_YEAR", 2023)
	viper.SetDefault("DASHBOARD_TOP_SELLERS", 5)

	viper.SetDefault("UPSTREAM_CHECK_CRON", "*/10 * * * *") // A cada 10 minutos
	viper.SetDefault("UPSTREAM_CHECK_ENABLED", false)

	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
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
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}

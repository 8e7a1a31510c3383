package config

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server   Server
	Database Database
	Mail     Mail
}

type Server struct {
	Port       string
	HostDomain string
}

type Database struct {
	URI       string
	Namespace string
}

type Mail struct {
	SendgridAPIKey string
	FromEmail      string
	FromName       string
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("MONGODB_NS", "bosedb")

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Server.HostDomain = viper.GetString("SERVER_HOST_DOMAIN")
	config.Database.URI = viper.GetString("MONGODB_URI")
	config.Database.Namespace = viper.GetString("MONGODB_NS")
	config.Mail.SendgridAPIKey = viper.GetString("SENDGRID_API_KEY")
	config.Mail.FromEmail = viper.GetString("EMAIL_FROM")
	config.Mail.FromName = viper.GetString("EMAIL_FROM_NAME")

	log.Info().Str("port", config.Server.Port).Str("namespace", config.Database.Namespace).Msg("Config loaded")
	return &config, nil
}

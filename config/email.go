package config

import "github.com/spf13/viper"

// Email email sender config struct
type Email struct {
	From string
	SMTP *SMTP
}

// SMTP smtp server config struct
type SMTP struct {
	Host     string
	Port     int
	Username string
	Password string
}

func getEmailConfig(v *viper.Viper) *Email {
	return &Email{
		From: v.GetString("email.from"),
		SMTP: &SMTP{
			Host:     v.GetString("email.smtp.host"),
			Port:     v.GetInt("email.smtp.port"),
			Username: v.GetString("email.smtp.username"),
			Password: v.GetString("email.smtp.password"),
		},
	}
}

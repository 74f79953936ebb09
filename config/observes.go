package config

import "github.com/spf13/viper"

// Observes observability config struct
type Observes struct {
	SentryDSN string
}

func getObservesConfig(v *viper.Viper) *Observes {
	return &Observes{
		SentryDSN: v.GetString("observes.sentry.dsn"),
	}
}

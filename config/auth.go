package config

import "github.com/spf13/viper"

// Auth auth config struct
type Auth struct {
	JWT        *JWT
	BcryptCost int
}

// JWT jwt config struct
type JWT struct {
	Secret string
	Expire int // access token lifetime in minutes
}

func getAuthConfig(v *viper.Viper) *Auth {
	auth := &Auth{
		JWT: &JWT{
			Secret: v.GetString("auth.jwt.secret"),
			Expire: v.GetInt("auth.jwt.expire"),
		},
		BcryptCost: v.GetInt("auth.bcrypt_cost"),
	}
	if auth.JWT.Expire <= 0 {
		auth.JWT.Expire = 30
	}
	return auth
}

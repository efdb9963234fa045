package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/studentteacher/internal/flagx"
	"github.com/dmitrijs2005/studentteacher/internal/timex"
)

// JsonConfig is the on-disk shape of the configuration file. Pointer fields
// distinguish "absent" from zero values so the file only overrides what it
// names. SweepInterval accepts "1m" style strings or integer nanoseconds.
type JsonConfig struct {
	EndpointAddrGRPC   *string         `json:"endpoint_addr_grpc"`
	DatabaseDSN        *string         `json:"database_dsn"`
	SecretKey          *string         `json:"secret_key"`
	TokenExpireTime    *string         `json:"token_expire_time"`
	CodeStore          *string         `json:"code_store"`
	RedisAddr          *string         `json:"redis_addr"`
	RedisPassword      *string         `json:"redis_password"`
	RedisDB            *int            `json:"redis_db"`
	SweepInterval      *timex.Duration `json:"sweep_interval"`
	SendGridAPIKey     *string         `json:"sendgrid_api_key"`
	MailFrom           *string         `json:"mail_from"`
	MetricsAddr        *string         `json:"metrics_addr"`
	RevalidatePassword *bool           `json:"revalidate_password"`
	LogLevel           *string         `json:"log_level"`
}

// parseJson loads the file named by -c / -config into config. Without the
// flag nothing happens; an unreadable file or invalid JSON panics.
func parseJson(config *Config, args []string) {
	jsonConfigFile := flagx.JsonConfigFlags(args)
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	overlay(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	overlay(&config.DatabaseDSN, c.DatabaseDSN)
	overlay(&config.SecretKey, c.SecretKey)
	overlay(&config.TokenExpireTime, c.TokenExpireTime)
	overlay(&config.CodeStore, c.CodeStore)
	overlay(&config.RedisAddr, c.RedisAddr)
	overlay(&config.RedisPassword, c.RedisPassword)
	overlay(&config.RedisDB, c.RedisDB)
	overlay(&config.SendGridAPIKey, c.SendGridAPIKey)
	overlay(&config.MailFrom, c.MailFrom)
	overlay(&config.MetricsAddr, c.MetricsAddr)
	overlay(&config.RevalidatePassword, c.RevalidatePassword)
	overlay(&config.LogLevel, c.LogLevel)
	if c.SweepInterval != nil {
		config.SweepInterval = c.SweepInterval.Duration
	}
}

func overlay[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

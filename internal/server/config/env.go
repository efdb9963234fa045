package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/dmitrijs2005/studentteacher/internal/flagx"
	"github.com/joho/godotenv"
)

const defaultEnvFile = ".env"

// Environment variable names.
const (
	envGRPCAddr           = "STM_GRPC_ADDR"
	envDatabaseDSN        = "STM_DATABASE_DSN"
	envSecretKey          = "STM_SECRET_KEY"
	envTokenExpireTime    = "STM_TOKEN_EXPIRE_TIME"
	envCodeStore          = "STM_CODE_STORE"
	envRedisAddr          = "STM_REDIS_ADDR"
	envRedisPassword      = "STM_REDIS_PASSWORD"
	envRedisDB            = "STM_REDIS_DB"
	envSweepInterval      = "STM_SWEEP_INTERVAL"
	envSendGridAPIKey     = "STM_SENDGRID_API_KEY"
	envMailFrom           = "STM_MAIL_FROM"
	envMetricsAddr        = "STM_METRICS_ADDR"
	envRevalidatePassword = "STM_REVALIDATE_PASSWORD"
	envLogLevel           = "STM_LOG_LEVEL"
)

// parseEnv overlays STM_* environment variables onto config.
//
// Before reading the environment it loads a dotenv file: the one named by
// -env, or ./.env when present. Variables already set in the process
// environment win over the file. An explicitly named file that cannot be
// read, or a malformed numeric value, panics like the other loaders.
func parseEnv(config *Config, args []string) {
	envFile := flagx.StringFlag(args, "env")
	explicit := envFile != ""
	if !explicit {
		envFile = defaultEnvFile
	}

	if err := godotenv.Load(envFile); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			panic(err)
		}
	}

	setString(&config.EndpointAddrGRPC, envGRPCAddr)
	setString(&config.DatabaseDSN, envDatabaseDSN)
	setString(&config.SecretKey, envSecretKey)
	setString(&config.TokenExpireTime, envTokenExpireTime)
	setString(&config.CodeStore, envCodeStore)
	setString(&config.RedisAddr, envRedisAddr)
	setString(&config.RedisPassword, envRedisPassword)
	setString(&config.SendGridAPIKey, envSendGridAPIKey)
	setString(&config.MailFrom, envMailFrom)
	setString(&config.MetricsAddr, envMetricsAddr)
	setString(&config.LogLevel, envLogLevel)

	if v, ok := os.LookupEnv(envRedisDB); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			panic(err)
		}
		config.RedisDB = n
	}
	if v, ok := os.LookupEnv(envSweepInterval); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(err)
		}
		config.SweepInterval = d
	}
	if v, ok := os.LookupEnv(envRevalidatePassword); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			panic(err)
		}
		config.RevalidatePassword = b
	}
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok {
		*dst = v
	}
}

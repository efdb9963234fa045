package config

import (
	"flag"
	"io"

	"github.com/dmitrijs2005/studentteacher/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   gRPC bind address (e.g., ":50051")
//	-d string   PostgreSQL DSN
//	-s string   JWT HMAC secret key
//	-t string   token lifetime, minutes or Go duration
//	-k string   code store backend (memory|redis)
//	-r string   Redis address
//	-g string   SendGrid API key
//	-f string   sender address for outbound mail
//	-m string   metrics bind address
//	-l string   log level
//
// Only the flags above are picked out of args (see flagx.FilterArgs), so
// -c / -env and flags of other components do not collide.
func parseFlags(config *Config, args []string) {
	filtered := flagx.FilterArgs(args, []string{"-a", "-d", "-s", "-t", "-k", "-r", "-g", "-f", "-m", "-l"})

	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")
	fs.StringVar(&config.TokenExpireTime, "t", config.TokenExpireTime, "token expire time (minutes)")
	fs.StringVar(&config.CodeStore, "k", config.CodeStore, "code store backend (memory|redis)")
	fs.StringVar(&config.RedisAddr, "r", config.RedisAddr, "redis address")
	fs.StringVar(&config.SendGridAPIKey, "g", config.SendGridAPIKey, "SendGrid API key")
	fs.StringVar(&config.MailFrom, "f", config.MailFrom, "mail sender address")
	fs.StringVar(&config.MetricsAddr, "m", config.MetricsAddr, "metrics address")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")

	if err := fs.Parse(filtered); err != nil {
		panic(err)
	}
}

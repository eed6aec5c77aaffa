package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"os"
	"strconv"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags from the process arguments.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "1h", "30m")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-payment-key-id payment provider key id
//	-payment-key-secret payment provider key secret
//	-payment-webhook-secret payment provider webhook secret
//	-unlock-fee unlock fee in minor currency units
//	-currency ISO 4217 currency of the unlock fee
//	-unlock-requires-payment refuse free unlocks while payments are enabled
//	-redis redis address for the keyed locker
func ParseFlags() *StructuredConfig {
	cfg, _ := parseFlagSet(flag.NewFlagSet(os.Args[0], flag.ExitOnError), os.Args[1:])
	return cfg
}

func parseFlagSet(fs *flag.FlagSet, args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var requestTimeout time.Duration
	var paymentKeyID string
	var paymentKeySecret string
	var paymentWebhookSecret string
	var unlockFee int64
	var currency string
	var unlockRequiresPayment bool
	var redisAddress string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&paymentKeyID, "payment-key-id", "", "Payment provider key id")
	fs.StringVar(&paymentKeySecret, "payment-key-secret", "", "Payment provider key secret")
	fs.StringVar(&paymentWebhookSecret, "payment-webhook-secret", "", "Payment provider webhook secret")
	fs.Int64Var(&unlockFee, "unlock-fee", 0, "Unlock fee in minor currency units")
	fs.StringVar(&currency, "currency", "", "ISO 4217 currency of the unlock fee")
	fs.BoolVar(&unlockRequiresPayment, "unlock-requires-payment", false, "Refuse free unlocks while payments are enabled")
	fs.StringVar(&redisAddress, "redis", "", "Redis address host:port for the keyed locker")

	if err := fs.Parse(args); err != nil {
		return &StructuredConfig{}, err
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:          tokenSignKey,
			TokenIssuer:           tokenIssuer,
			TokenDuration:         tokenDuration,
			UnlockRequiresPayment: unlockRequiresPayment,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			Payment: Payment{
				KeyID:         paymentKeyID,
				KeySecret:     paymentKeySecret,
				WebhookSecret: paymentWebhookSecret,
				UnlockFee:     unlockFee,
				Currency:      currency,
			},
		},
		Locker: Locker{
			RedisAddress: redisAddress,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses host:port. The host may be empty, "localhost" or an IP
// literal (IPv6 in brackets); the port must be in 1..65535.
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return fmt.Errorf("need address in a form `host:port`: %w", err)
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return fmt.Errorf("invalid port %q: %w", portStr, err)
	}
	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1..65535")
	}

	if host != "localhost" && host != "" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}

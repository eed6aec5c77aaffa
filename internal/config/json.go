package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON field names.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey          string   `json:"token_sign_key"`
		TokenIssuer           string   `json:"token_issuer"`
		TokenDuration         Duration `json:"token_duration"`
		Version               string   `json:"version"`
		UnlockRequiresPayment bool     `json:"unlock_requires_payment"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Adapter struct {
		Payment struct {
			Provider       string   `json:"provider"`
			BaseURL        string   `json:"base_url"`
			KeyID          string   `json:"key_id"`
			KeySecret      string   `json:"key_secret"`
			WebhookSecret  string   `json:"webhook_secret"`
			UnlockFee      int64    `json:"unlock_fee"`
			Currency       string   `json:"currency"`
			RequestTimeout Duration `json:"request_timeout"`
		} `json:"payment,omitempty"`
	} `json:"adapter,omitempty"`

	Locker struct {
		RedisAddress  string   `json:"redis_address"`
		RedisPassword string   `json:"redis_password"`
		RedisDB       int      `json:"redis_db"`
		TTL           Duration `json:"ttl"`
	} `json:"locker,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	payment := jsonCfg.Adapter.Payment
	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:          jsonCfg.App.TokenSignKey,
			TokenIssuer:           jsonCfg.App.TokenIssuer,
			TokenDuration:         time.Duration(jsonCfg.App.TokenDuration),
			Version:               jsonCfg.App.Version,
			UnlockRequiresPayment: jsonCfg.App.UnlockRequiresPayment,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Adapter: Adapter{
			Payment: Payment{
				Provider:       payment.Provider,
				BaseURL:        payment.BaseURL,
				KeyID:          payment.KeyID,
				KeySecret:      payment.KeySecret,
				WebhookSecret:  payment.WebhookSecret,
				UnlockFee:      payment.UnlockFee,
				Currency:       payment.Currency,
				RequestTimeout: time.Duration(payment.RequestTimeout),
			},
		},
		Locker: Locker{
			RedisAddress:  jsonCfg.Locker.RedisAddress,
			RedisPassword: jsonCfg.Locker.RedisPassword,
			RedisDB:       jsonCfg.Locker.RedisDB,
			TTL:           time.Duration(jsonCfg.Locker.TTL),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

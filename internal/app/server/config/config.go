package config

import (
	"encoding/hex"
	"errors"
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	envPath  = ".env"
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"
)

// ErrNoJournalKey is returned when JOURNAL_MASTER_KEY is missing. The server
// refuses to start without it: a silently generated ephemeral key would make
// every previously sealed journal entry unrecoverable after a restart.
var ErrNoJournalKey = errors.New("journal master key is not configured")

type Config struct {
	Env     string
	DB      db
	Server  server
	Session session
	Journal journal
	Media   media
	Logger  logger
}

type db struct {
	DatabaseURI string
	Migrations  string
}

type server struct {
	RunAddress string
}

type session struct {
	Secret string // HS256 signing secret for session tokens
}

type journal struct {
	// MasterKey is the deployment-wide AES-256 key for journal entries,
	// decoded from a 64-character hex string.
	MasterKey []byte
}

type media struct {
	Endpoint  string
	Region    string
	Bucket    string
	AccessKey string
	SecretKey string
}

type logger struct {
	LogLevel string
}

// Load reads configuration from the environment (plus an optional .env file).
// The session secret and journal master key are required; everything else has
// a workable default.
func Load() (*Config, error) {
	if err := godotenv.Load(envPath); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	viper.AutomaticEnv()

	conf := &Config{
		Env: viper.GetString("app_env"),
		DB: db{
			DatabaseURI: viper.GetString("database_uri"),
			Migrations:  viper.GetString("migrations_path"),
		},
		Server: server{
			RunAddress: viper.GetString("run_address"),
		},
		Session: session{
			Secret: viper.GetString("session_secret"),
		},
		Media: media{
			Endpoint:  viper.GetString("s3_endpoint"),
			Region:    viper.GetString("s3_region"),
			Bucket:    viper.GetString("s3_bucket"),
			AccessKey: viper.GetString("s3_access_key"),
			SecretKey: viper.GetString("s3_secret_key"),
		},
		Logger: logger{
			LogLevel: viper.GetString("log_level"),
		},
	}

	if conf.Env == "" {
		conf.Env = EnvLocal
	}
	if conf.Server.RunAddress == "" {
		conf.Server.RunAddress = ":8080"
	}
	if conf.DB.Migrations == "" {
		conf.DB.Migrations = "migrations"
	}

	if conf.Session.Secret == "" {
		return nil, errors.New("session secret is not configured")
	}

	key, err := DecodeMasterKey(viper.GetString("journal_master_key"))
	if err != nil {
		return nil, err
	}
	conf.Journal.MasterKey = key

	return conf, nil
}

// DecodeMasterKey validates and decodes the hex-encoded journal master key.
func DecodeMasterKey(keyHex string) ([]byte, error) {
	if keyHex == "" {
		return nil, ErrNoJournalKey
	}
	key, err := hex.DecodeString(keyHex)
	if err != nil {
		return nil, fmt.Errorf("decode journal master key: %w", err)
	}
	if len(key) != 32 {
		return nil, fmt.Errorf("journal master key must be 32 bytes, got %d", len(key))
	}
	return key, nil
}

// MustLoad is Load for main: any configuration error is fatal.
func MustLoad() *Config {
	conf, err := Load()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}
	return conf
}

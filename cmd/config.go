package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/Keloce-2005/Back-office/internal/pkg/errs"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

const (
	StorageDriverS3    = "s3"
	StorageDriverLocal = "local"
)

type Config struct {
	HTTPPort string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	LogLevel         string
	LogFormat        string
	LogOutput        string
	GormLogLevel     string
	GormSlowQueryLog time.Duration

	JWTSecret     string
	JWTIssuer     string
	JWTExpiration time.Duration
	BcryptCost    int

	StorageDriver    string
	LocalStorageRoot string
	LocalStorageURL  string
	S3Endpoint       string
	S3Region         string
	S3Bucket         string
	S3AccessKey      string
	S3SecretKey      string
	S3UsePathStyle   bool
	S3PresignTTL     time.Duration

	OneSignalAppID  string
	OneSignalAPIKey string
	OneSignalURL    string

	ChromeRemoteURL string
	ChromeNoSandbox bool

	JobsEnabled bool
}

// DSN builds the libpq connection string shared by GORM and the migrator.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func (c Config) Validate() error {
	var errList []error
	for _, required := range []struct{ name, value string }{
		{"HTTP_PORT", c.HTTPPort},
		{"DB_HOST", c.DBHost},
		{"DB_USER", c.DBUser},
		{"DB_NAME", c.DBName},
		{"JWT_SECRET", c.JWTSecret},
		{"JWT_ISSUER", c.JWTIssuer},
	} {
		if required.value == "" {
			errList = append(errList, errs.NewValueIsRequiredError(required.name))
		}
	}

	if len(c.JWTSecret) > 0 && len(c.JWTSecret) < 32 {
		errList = append(errList, errs.NewValueIsOutOfRangeError("JWT_SECRET length", len(c.JWTSecret), 32, "unbounded"))
	}
	if c.JWTExpiration <= 0 {
		errList = append(errList, errs.NewValueIsInvalidError("JWT_EXPIRATION"))
	}
	if c.BcryptCost < 4 || c.BcryptCost > 31 {
		errList = append(errList, errs.NewValueIsOutOfRangeError("BCRYPT_COST", c.BcryptCost, 4, 31))
	}

	switch c.StorageDriver {
	case StorageDriverS3:
		if c.S3Bucket == "" {
			errList = append(errList, errs.NewValueIsRequiredError("S3_BUCKET"))
		}
	case StorageDriverLocal:
		if c.LocalStorageRoot == "" {
			errList = append(errList, errs.NewValueIsRequiredError("LOCAL_STORAGE_ROOT"))
		}
	default:
		errList = append(errList, errs.NewValueIsInvalidError("STORAGE_DRIVER"))
	}

	return errors.Join(errList...)
}

// LoadConfig reads .env (when present), then the environment, then the
// command-line flags. Later sources win.
func LoadConfig(flags *pflag.FlagSet, args []string) (Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	cfg := Config{
		HTTPPort:         env("HTTP_PORT", "8080"),
		DBHost:           env("DB_HOST", "localhost"),
		DBPort:           env("DB_PORT", "5432"),
		DBUser:           env("DB_USER", ""),
		DBPassword:       env("DB_PASSWORD", ""),
		DBName:           env("DB_NAME", ""),
		DBSslMode:        env("DB_SSLMODE", "disable"),
		LogLevel:         env("LOG_LEVEL", "info"),
		LogFormat:        env("LOG_FORMAT", "console"),
		LogOutput:        env("LOG_OUTPUT", "stdout"),
		GormLogLevel:     env("GORM_LOG_LEVEL", "warn"),
		JWTSecret:        env("JWT_SECRET", ""),
		JWTIssuer:        env("JWT_ISSUER", "back-office"),
		StorageDriver:    env("STORAGE_DRIVER", StorageDriverLocal),
		LocalStorageRoot: env("LOCAL_STORAGE_ROOT", "./media"),
		LocalStorageURL:  env("LOCAL_STORAGE_URL", "/media"),
		S3Endpoint:       env("S3_ENDPOINT", ""),
		S3Region:         env("S3_REGION", "eu-west-3"),
		S3Bucket:         env("S3_BUCKET", ""),
		S3AccessKey:      env("S3_ACCESS_KEY", ""),
		S3SecretKey:      env("S3_SECRET_KEY", ""),
		OneSignalAppID:   env("ONESIGNAL_APP_ID", ""),
		OneSignalAPIKey:  env("ONESIGNAL_REST_API_KEY", ""),
		OneSignalURL:     env("ONESIGNAL_URL", ""),
		ChromeRemoteURL:  env("CHROME_REMOTE_URL", ""),
	}

	var err error
	var errList []error
	if cfg.GormSlowQueryLog, err = envDuration("GORM_SLOW_QUERY", 200*time.Millisecond); err != nil {
		errList = append(errList, err)
	}
	if cfg.JWTExpiration, err = envDuration("JWT_EXPIRATION", 24*time.Hour); err != nil {
		errList = append(errList, err)
	}
	if cfg.S3PresignTTL, err = envDuration("S3_PRESIGN_TTL", 15*time.Minute); err != nil {
		errList = append(errList, err)
	}
	if cfg.BcryptCost, err = envInt("BCRYPT_COST", 12); err != nil {
		errList = append(errList, err)
	}
	if cfg.S3UsePathStyle, err = envBool("S3_USE_PATH_STYLE", false); err != nil {
		errList = append(errList, err)
	}
	if cfg.ChromeNoSandbox, err = envBool("CHROME_NO_SANDBOX", false); err != nil {
		errList = append(errList, err)
	}
	if cfg.JobsEnabled, err = envBool("JOBS_ENABLED", true); err != nil {
		errList = append(errList, err)
	}
	if len(errList) > 0 {
		return Config{}, errors.Join(errList...)
	}

	flags.StringVar(&cfg.HTTPPort, "http-port", cfg.HTTPPort, "HTTP listen port")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn, error")
	flags.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "log format: json, console")
	flags.StringVar(&cfg.StorageDriver, "storage", cfg.StorageDriver, "document storage: s3, local")
	flags.BoolVar(&cfg.JobsEnabled, "jobs", cfg.JobsEnabled, "run the scheduled jobs")
	if err = flags.Parse(args); err != nil {
		return Config{}, err
	}

	return cfg, cfg.Validate()
}

func env(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) (time.Duration, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause(key, err)
	}
	return d, nil
}

func envInt(key string, fallback int) (int, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause(key, err)
	}
	return n, nil
}

func envBool(key string, fallback bool) (bool, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, errs.NewValueIsInvalidErrorWithCause(key, err)
	}
	return b, nil
}

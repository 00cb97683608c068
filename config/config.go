package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	envPrefix         = "SHADES"
	configFileEnvName = envPrefix + "_CONFIG_FILE"
	defaultConfigFile = "config.yaml"
)

const (
	VerifierStatic = "static"
	VerifierJWT    = "jwt"
)

type cors struct {
	AllowOrigins []string `mapstructure:"allow_origins"`
}

type auth struct {
	Verifier        string        `mapstructure:"verifier"`
	StaticToken     string        `mapstructure:"static_token"`
	StaticUserID    string        `mapstructure:"static_user_id"`
	StaticUserEmail string        `mapstructure:"static_user_email"`
	JWTSecret       string        `mapstructure:"jwt_secret"`
	JWTTTL          time.Duration `mapstructure:"jwt_ttl"`
}

type users struct {
	BcryptCost int `mapstructure:"bcrypt_cost"`
}

type Config struct {
	LogLevel        string        `mapstructure:"log_level"`
	GinMode         string        `mapstructure:"gin_mode"`
	HTTPServerAddr  string        `mapstructure:"http_server_addr"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	CORS            cors          `mapstructure:"cors"`
	Auth            auth          `mapstructure:"auth"`
	Users           users         `mapstructure:"users"`
}

// Load reads the configuration from the process arguments and environment
// and exits the process when it is unusable.
func Load() Config {
	cfg, err := Parse(os.Args[1:])
	if err != nil {
		die(err)
	}
	return cfg
}

// Parse builds the configuration from args, the optional YAML file they
// point to and SHADES_* environment variables, in rising precedence.
// A missing config file is not an error.
func Parse(args []string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	path, err := configFilepath(args)
	if err != nil {
		return Config{}, err
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("read %s: %w", path, err)
	}

	var cfg Config
	if err := v.UnmarshalExact(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log_level", "info")
	v.SetDefault("gin_mode", "release")
	v.SetDefault("http_server_addr", ":3001")
	v.SetDefault("shutdown_timeout", 10*time.Second)
	v.SetDefault("cors.allow_origins", []string{"*"})
	v.SetDefault("auth.verifier", VerifierStatic)
	v.SetDefault("auth.static_token", "fake-jwt-token")
	v.SetDefault("auth.static_user_id", "u1")
	v.SetDefault("auth.static_user_email", "test@test.com")
	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.jwt_ttl", 24*time.Hour)
	v.SetDefault("users.bcrypt_cost", 10)
}

func configFilepath(args []string) (string, error) {
	cmdLine := pflag.NewFlagSet("shades", pflag.ContinueOnError)
	arg := cmdLine.String("config", defaultConfigFile, "config file")
	if err := cmdLine.Parse(args); err != nil {
		return "", err
	}
	if env, ok := os.LookupEnv(configFileEnvName); ok {
		return env, nil
	}
	return *arg, nil
}

func (c Config) validate() error {
	switch c.Auth.Verifier {
	case VerifierStatic:
		if c.Auth.StaticToken == "" {
			return errors.New("auth.static_token must not be empty")
		}
	case VerifierJWT:
		if c.Auth.JWTSecret == "" {
			return errors.New("auth.jwt_secret is required for the jwt verifier")
		}
		if c.Auth.JWTTTL <= 0 {
			return errors.New("auth.jwt_ttl must be positive")
		}
	default:
		return fmt.Errorf("unknown auth.verifier %q", c.Auth.Verifier)
	}
	return nil
}

func die(err error) {
	fmt.Printf("failed to load config: %v\n", err)
	os.Exit(2)
}

func (c Config) Print() {
	template := `
	General:
	LogLevel=%q
	GinMode=%q
	HTTPServerAddr=%q
	ShutdownTimeout=%s
	CORS.AllowOrigins=%q

	Auth:
	Verifier=%q
	StaticUserID=%q
	JWTTTL=%s
	Users.BcryptCost=%d

`
	fmt.Println("Loaded config:")
	fmt.Printf(
		strings.TrimLeft(template, "\n"),
		c.LogLevel,
		c.GinMode,
		c.HTTPServerAddr,
		c.ShutdownTimeout,
		c.CORS.AllowOrigins,
		c.Auth.Verifier,
		c.Auth.StaticUserID,
		c.Auth.JWTTTL,
		c.Users.BcryptCost,
	)
}

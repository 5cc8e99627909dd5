package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config 服務啟動所需的所有設定，來源為環境變數（可由 .env 補上）
type Config struct {
	// HTTP
	Port             string
	CORSAllowOrigins []string
	Debug            bool
	// 反向代理的 CIDR；空值代表直接以連線來源當作客戶端 IP
	TrustedProxies   []string

	// Database
	DatabaseURL       string
	DBMaxConns        int
	DBMaxConnLifetime time.Duration

	// Auth
	JWTSecret       string
	LoginRateLimit  int
	LoginRateWindow time.Duration

	// Redis（選用，REDIS_ADDR 為空則停用）
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Logging
	LogLevel  string
	LogFormat string
}

// 測試可覆寫
var loadDotenv = func() error { return godotenv.Load() }

// Load 先讀取 .env（不存在則略過，且不覆蓋既有環境變數），再組出 Config
func Load() *Config {
	_ = loadDotenv()

	return &Config{
		Port:             getEnv("PORT", "8080"),
		CORSAllowOrigins: getEnvList("CORS_ALLOW_ORIGINS", []string{"*"}),
		Debug:            getEnvBool("DEBUG", false),
		TrustedProxies:   getEnvList("TRUSTED_PROXIES", nil),

		DatabaseURL:       getEnv("DATABASE_URL", ""),
		DBMaxConns:        getEnvInt("DB_MAX_CONNS", 0),
		DBMaxConnLifetime: getEnvDuration("DB_MAX_CONN_LIFETIME", 0),

		JWTSecret:       getEnv("JWT_SECRET", ""),
		LoginRateLimit:  getEnvInt("LOGIN_RATE_LIMIT", 10),
		LoginRateWindow: getEnvDuration("LOGIN_RATE_WINDOW", time.Minute),

		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),

		LogLevel:  strings.ToLower(getEnv("LOG_LEVEL", "info")),
		LogFormat: strings.ToLower(getEnv("LOG_FORMAT", "text")),
	}
}

// Addr 回傳 echo 監聽位址
func (c *Config) Addr() string {
	return ":" + c.Port
}

// RedisEnabled 是否設定了 Redis
func (c *Config) RedisEnabled() bool {
	return c.RedisAddr != ""
}

// Validate 檢查所有設定並一次回報全部問題
func (c *Config) Validate() error {
	var problems []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		problems = append(problems, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	for _, cidr := range c.TrustedProxies {
		if _, _, err := net.ParseCIDR(cidr); err != nil {
			problems = append(problems, fmt.Sprintf("invalid TRUSTED_PROXIES entry '%s': must be a CIDR", cidr))
		}
	}

	if c.DatabaseURL == "" {
		problems = append(problems, "DATABASE_URL is required")
	}
	if c.JWTSecret == "" {
		problems = append(problems, "JWT_SECRET is required")
	}
	if c.DBMaxConns < 0 {
		problems = append(problems, fmt.Sprintf("invalid DB_MAX_CONNS %d: must not be negative", c.DBMaxConns))
	}
	if c.RedisDB < 0 {
		problems = append(problems, fmt.Sprintf("invalid REDIS_DB %d: must not be negative", c.RedisDB))
	}
	if c.LoginRateLimit < 0 {
		problems = append(problems, fmt.Sprintf("invalid LOGIN_RATE_LIMIT %d: use 0 to disable", c.LoginRateLimit))
	}
	if c.LoginRateWindow < time.Second {
		problems = append(problems, fmt.Sprintf("invalid LOGIN_RATE_WINDOW %v: must be at least 1 second", c.LoginRateWindow))
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		problems = append(problems, fmt.Sprintf("invalid LOG_LEVEL '%s': must be one of debug, info, warn, error", c.LogLevel))
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		problems = append(problems, fmt.Sprintf("invalid LOG_FORMAT '%s': must be text or json", c.LogFormat))
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(problems, "\n- "))
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}

package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	Backend BackendConfig
	JWT     JWTConfig
	List    ListConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// HTTPConfig configuración del servidor HTTP propio (el que consume la UI).
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// BackendConfig configuración del API REST de inventario (colaborador externo).
type BackendConfig struct {
	BaseURL            string // ej. https://api.inventario.local/api/v1
	TimeoutSeconds     int    // timeout de red general por petición
	StockLookupSeconds int    // timeout del lookup de stock por producto; al expirar se degrada a vacío
}

// Timeout devuelve el timeout general como duración.
func (c BackendConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// StockLookupTimeout devuelve el timeout del lookup de stock como duración.
func (c BackendConfig) StockLookupTimeout() time.Duration {
	return time.Duration(c.StockLookupSeconds) * time.Second
}

// JWTConfig configuración de JWT.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// ListConfig parámetros del pipeline de listados (filtro + paginación).
// LowStockThreshold era una constante mágica (10) en la UI original; aquí es configurable.
type ListConfig struct {
	DefaultPageSize   int
	MaxPageSize       int
	LowStockThreshold int
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, BACKEND_BASE_URL, JWT_SECRET, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "catalogo-admin"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Backend: BackendConfig{
			BaseURL:            getString(v, "BACKEND_BASE_URL", "http://localhost:8000/api"),
			TimeoutSeconds:     getInt(v, "BACKEND_TIMEOUT_SECONDS", 25),
			StockLookupSeconds: getInt(v, "BACKEND_STOCK_LOOKUP_SECONDS", 10),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 60),
			Issuer:     getString(v, "JWT_ISSUER", "catalogo-admin"),
		},
		List: ListConfig{
			DefaultPageSize:   getInt(v, "LIST_DEFAULT_PAGE_SIZE", 10),
			MaxPageSize:       getInt(v, "LIST_MAX_PAGE_SIZE", 100),
			LowStockThreshold: getInt(v, "LIST_LOW_STOCK_THRESHOLD", 10),
		},
	}

	if cfg.Backend.BaseURL == "" {
		return nil, fmt.Errorf("config: BACKEND_BASE_URL es requerido")
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

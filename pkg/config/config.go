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
	App   AppConfig
	JWT   JWTConfig
	HTTP  HTTPConfig
	Store StoreConfig
	Dash  DashConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// StoreConfig configuración del item store remoto (backend headless de donde se
// leen facturas, devoluciones, productos, cobranzas, etc.).
type StoreConfig struct {
	BaseURL        string // ej. https://cms.empresa.com (sin slash final)
	Token          string // Bearer token; vacío = peticiones sin autenticar
	TimeoutSeconds int    // timeout por página (default 60)
	PageSize       int    // tamaño fijo de página (default 500)
	MaxPages       int    // tope de páginas por colección para evitar loops infinitos
}

// Timeout devuelve el timeout por página como time.Duration.
func (c StoreConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// DashConfig credenciales de los usuarios fijos del dashboard.
// Es un stub de autenticación: no hay tabla de usuarios, solo tres cuentas
// (executive, manager, divisionshead) cuyas contraseñas vienen del entorno.
type DashConfig struct {
	ExecutivePassword string
	ManagerPassword   string
	DivHeadPassword   string
}

// JWTConfig configuración de JWT.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, STORE_BASE_URL, JWT_SECRET, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	// También intenta config.env
	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	// Bind de variables de entorno (Viper las lee automáticamente si AutomaticEnv está activo)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "sales-bi"),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 480),
			Issuer:     getString(v, "JWT_ISSUER", "sales-bi"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Store: StoreConfig{
			BaseURL:        strings.TrimRight(getString(v, "STORE_BASE_URL", "http://localhost:8055"), "/"),
			Token:          getString(v, "STORE_TOKEN", ""),
			TimeoutSeconds: getInt(v, "STORE_TIMEOUT_SECONDS", 60),
			PageSize:       getInt(v, "STORE_PAGE_SIZE", 500),
			MaxPages:       getInt(v, "STORE_MAX_PAGES", 40),
		},
		Dash: DashConfig{
			ExecutivePassword: getString(v, "DASH_EXEC_PASSWORD", ""),
			ManagerPassword:   getString(v, "DASH_MANAGER_PASSWORD", ""),
			DivHeadPassword:   getString(v, "DASH_DIVHEAD_PASSWORD", ""),
		},
	}

	if cfg.Store.PageSize <= 0 {
		cfg.Store.PageSize = 500
	}
	if cfg.Store.MaxPages <= 0 {
		cfg.Store.MaxPages = 40
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

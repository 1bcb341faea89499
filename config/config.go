package config

import (
	"os"
	"strconv"
	"strings"
)

// Auth transports recognized by AUTH_TRANSPORT.
const (
	TransportCookie = "cookie"
	TransportBearer = "bearer"
)

// Settings holds everything read from the environment at startup.
type Settings struct {
	Port              string
	MongoURI          string
	DBName            string
	JWTSecret         []byte
	StripeKey         string
	AuthTransport     string
	EnableAdminRoutes bool
	AllowedOrigins    []string
}

var App Settings

// Load reads the environment into App. Call once from main after godotenv.
func Load() {
	App = Settings{
		Port:              getenv("PORT", "5000"),
		MongoURI:          getenv("MONGO_URL", "mongodb://localhost:27017"),
		DBName:            getenv("DB_NAME", "Toys"),
		JWTSecret:         []byte(os.Getenv("ACCESS_TOKEN_SECRET")),
		StripeKey:         os.Getenv("STRIPE_SECRET_KEY"),
		AuthTransport:     getenv("AUTH_TRANSPORT", TransportCookie),
		EnableAdminRoutes: getenvBool("ENABLE_ADMIN_ROUTES", true),
		AllowedOrigins:    splitOrigins(os.Getenv("ALLOWED_ORIGINS")),
	}
	if App.AuthTransport != TransportBearer {
		App.AuthTransport = TransportCookie
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func splitOrigins(raw string) []string {
	if raw == "" {
		return []string{
			"https://playtoy-1c00b.web.app",
			"https://playtoy-1c00b.firebaseapp.com",
		}
	}
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

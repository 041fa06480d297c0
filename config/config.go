package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

func New() map[string]string {
	environ := os.Environ()
	envAsMap := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry != "" {
			key, value := split(entry)
			envAsMap[key] = value
		}
	}
	return envAsMap
}

// assumes entry is not the empty string
func split(entry string) (key, value string) {
	parts := strings.SplitN(entry, "=", 2)
	if len(parts) < 2 {
		return parts[0], ""
	}
	return parts[0], parts[1]
}

func GetString(config map[string]string, key string, defaultValue string) string {
	if config == nil {
		return defaultValue
	}

	if val, ok := config[key]; ok && val != "" {
		return val
	}
	return defaultValue
}

func GetInt(config map[string]string, key string, defaultValue int) int {
	s := GetString(config, key, "")
	if s == "" {
		return defaultValue
	}

	asInt, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return defaultValue
	}

	return asInt
}

// GetBool accepts anything strconv.ParseBool does ("true", "1", "TRUE", ...).
func GetBool(config map[string]string, key string, defaultValue bool) bool {
	s := GetString(config, key, "")
	if s == "" {
		return defaultValue
	}

	asBool, err := strconv.ParseBool(strings.TrimSpace(s))
	if err != nil {
		return defaultValue
	}
	return asBool
}

// GetSeconds reads an integer number of seconds.
func GetSeconds(config map[string]string, key string, defaultSeconds int) time.Duration {
	return time.Duration(GetInt(config, key, defaultSeconds)) * time.Second
}

// GetStrings splits a comma separated value, dropping blanks.
func GetStrings(config map[string]string, key string, defaultValue []string) []string {
	s := GetString(config, key, "")
	if s == "" {
		return defaultValue
	}

	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}

// DatabaseDSN returns DATABASE_URL when set, otherwise a URL assembled from
// the libpq PG* variables.
func DatabaseDSN(config map[string]string) (string, error) {
	if dsn := GetString(config, "DATABASE_URL", ""); dsn != "" {
		return dsn, nil
	}

	dbName := GetString(config, "PGDATABASE", "")
	if dbName == "" {
		return "", fmt.Errorf("DATABASE_URL or PGDATABASE must be set")
	}

	u := url.URL{
		Scheme: "postgres",
		Host:   GetString(config, "PGHOST", "localhost") + ":" + GetString(config, "PGPORT", "5432"),
		Path:   "/" + dbName,
	}
	user := GetString(config, "PGUSER", "")
	if pw, ok := config["PGPASSWORD"]; ok && pw != "" {
		u.User = url.UserPassword(user, pw)
	} else if user != "" {
		u.User = url.User(user)
	}
	u.RawQuery = url.Values{"sslmode": {GetString(config, "PGSSLMODE", "disable")}}.Encode()

	return u.String(), nil
}

package dsn

import (
	"fmt"
	"os"
)

// FromEnv собирает строку подключения к Postgres из DB_HOST, DB_PORT,
// DB_NAME, DB_USER, DB_PASS
func FromEnv() string {
	host := getEnv("DB_HOST", "localhost")
	port := getEnv("DB_PORT", "5432")
	name := getEnv("DB_NAME", "mydb")
	user := getEnv("DB_USER", "feivn")
	pass := getEnv("DB_PASS", "1453")

	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		host, port, user, pass, name)
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

package configs

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type EnvConfig struct {
	ApplicationName string
	ContextPath     string
	Port            string
	PropertiesPath  string
	MessagesPath    string
}

// LoadEnv reads an optional .env file into the process environment and then
// snapshots the variables the service cares about.
func LoadEnv(files ...string) *EnvConfig {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, file := range files {
		if _, err := os.Stat(file); err == nil {
			_ = godotenv.Load(file)
		}
	}

	env := viper.New()
	env.AutomaticEnv()

	return &EnvConfig{
		ApplicationName: getStringOrDefault(env, "APPLICATION_NAME", "weather-dashboard"),
		ContextPath:     getStringOrDefault(env, "CONTEXT_PATH", ""),
		Port:            getStringOrDefault(env, "PORT", ""),
		PropertiesPath:  getStringOrDefault(env, "PROPERTIES_FILE_PATH", "configs/application.yml"),
		MessagesPath:    getStringOrDefault(env, "MESSAGES_FILE_PATH", "configs/messages.yml"),
	}
}

func getStringOrDefault(env *viper.Viper, key, defaultValue string) string {
	value := env.GetString(key)
	if value == "" {
		return defaultValue
	}
	return value
}

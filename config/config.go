package config

import (
	"time"

	"github.com/pellrad/sitegen/internal/models"
	"github.com/spf13/viper"
)

type Config struct {
	Site struct {
		BaseURL string
	}
	Paths struct {
		Routes  string
		Content string
		Sitemap string
		Robots  string
	}
	Generator struct {
		Languages         []string
		DefaultLanguage   string
		Include           []string
		Exclude           []string
		RouteExtensions   []string
		ContentExtensions []string
		RegenInterval     string
	}
	Database struct {
		Driver string
		URL    string
	}
	Server struct {
		Enabled bool
		Port    int
	}
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Default values
	viper.SetDefault("paths.routes", "routes")
	viper.SetDefault("paths.content", "content")
	viper.SetDefault("paths.sitemap", "public/sitemap.xml")
	viper.SetDefault("paths.robots", "public/robots.txt")
	viper.SetDefault("generator.routeextensions", []string{".html"})
	viper.SetDefault("generator.contentextensions", []string{".md"})
	viper.SetDefault("generator.regeninterval", "1h")
	viper.SetDefault("database.driver", "sqlite3")
	viper.SetDefault("server.port", 8080)

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) GetRegenDuration() time.Duration {
	duration, err := time.ParseDuration(c.Generator.RegenInterval)
	if err != nil {
		return time.Hour
	}
	return duration
}

// SitemapOptions builds the generator options from the config surface.
func (c *Config) SitemapOptions() *models.SitemapOptions {
	return &models.SitemapOptions{
		Languages:         c.Generator.Languages,
		DefaultLanguage:   c.Generator.DefaultLanguage,
		Include:           c.Generator.Include,
		Exclude:           c.Generator.Exclude,
		RouteExtensions:   c.Generator.RouteExtensions,
		ContentExtensions: c.Generator.ContentExtensions,
	}
}

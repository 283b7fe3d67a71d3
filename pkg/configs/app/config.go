package app

import (
	"errors"
	"fmt"
	"net/url"
	"path"
	"strings"
)

// Configuration of an extlite server.
type Config struct {
	Server   ServerConfig `yaml:"server"`
	Views    ViewsConfig  `yaml:"views"`
	DB       DBConfig     `yaml:"db"`
	LogLevel string       `yaml:"loglevel"`
}

type ServerConfig struct {
	// port to listen. default = "8080"
	Port string `yaml:"port"`

	// path prefix where controllers are mounted, like "/app". default = "" (root)
	Prefix string `yaml:"prefix"`
}

type ViewsConfig struct {
	// directory of templates. default = "views"
	Base string `yaml:"base"`

	// extension of templates. default = ".html"
	Ext string `yaml:"ext"`

	// when true, parsed templates are dropped when files under Base are changed.
	Watch bool `yaml:"watch"`
}

// Database connection.
//
// URL can contain placeholders "{db}", "{host}" and "{port}",
// which are replaced with DB, Host and Port.
type DBConfig struct {
	// "postgres" or "sqlite". default = "postgres"
	Driver   string `yaml:"driver"`
	URL      string `yaml:"url"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DB       string `yaml:"db"`
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
}

var ErrInvalidConfig = errors.New("config: invalid")

// DSN returns the connection string for the driver.
//
// Placeholders in URL are expanded.
// For postgres, User and Password are set into the URL unless it has userinfo already.
func (d DBConfig) DSN() (string, error) {
	dsn := strings.NewReplacer(
		"{db}", d.DB,
		"{host}", d.Host,
		"{port}", d.Port,
	).Replace(d.URL)

	if d.Driver != "postgres" || d.User == "" {
		return dsn, nil
	}

	u, err := url.Parse(dsn)
	if err != nil {
		return "", fmt.Errorf("%w: db.url: %w", ErrInvalidConfig, err)
	}
	if u.User == nil {
		if d.Password == "" {
			u.User = url.User(d.User)
		} else {
			u.User = url.UserPassword(d.User, d.Password)
		}
	}
	return u.String(), nil
}

// fill default values, and verify the config.
func (c *Config) complete() error {
	if c.Server.Port == "" {
		c.Server.Port = "8080"
	}
	if c.Server.Prefix != "" {
		p := path.Clean("/" + c.Server.Prefix)
		if p == "/" {
			p = ""
		}
		c.Server.Prefix = p
	}

	if c.Views.Base == "" {
		c.Views.Base = "views"
	}
	if c.Views.Ext == "" {
		c.Views.Ext = ".html"
	} else if !strings.HasPrefix(c.Views.Ext, ".") {
		c.Views.Ext = "." + c.Views.Ext
	}

	if c.DB.Driver == "" {
		c.DB.Driver = "postgres"
	}
	switch c.DB.Driver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("%w: db.driver: unknown driver %q", ErrInvalidConfig, c.DB.Driver)
	}
	if c.DB.URL == "" {
		return fmt.Errorf("%w: db.url is empty", ErrInvalidConfig)
	}

	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	return nil
}

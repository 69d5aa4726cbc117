package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// AppConfig 汇总运行服务所需的基础配置。
type AppConfig struct {
	ListenAddr  string          `yaml:"listen_addr"`
	Port        string          `yaml:"port"`
	GinMode     string          `yaml:"gin_mode"`
	LogLevel    string          `yaml:"log_level"`
	TemplateDir string          `yaml:"template_dir"`
	StaticDir   string          `yaml:"static_dir"`
	CORSOrigins []string        `yaml:"cors_origins"`
	Database    DatabaseConfig  `yaml:"database"`
	Sanitizer   SanitizerConfig `yaml:"sanitizer"`
}

// DatabaseConfig selects the gorm dialector.
type DatabaseConfig struct {
	Driver string `yaml:"driver"` // sqlite, mysql, postgres
	DSN    string `yaml:"dsn"`
}

// SanitizerConfig 描述富文本允许保留的标签与属性，启动时读取一次。
// AllowedAttributes 的键为标签名，"*" 表示对所有允许的标签生效。
type SanitizerConfig struct {
	AllowedTags       []string            `yaml:"allowed_tags"`
	AllowedAttributes map[string][]string `yaml:"allowed_attributes"`
}

// Default returns the configuration used when neither file nor env provide values.
func Default() AppConfig {
	return AppConfig{
		Port:        "8080",
		GinMode:     "release",
		LogLevel:    "info",
		TemplateDir: "web/template",
		StaticDir:   "web/static",
		Database: DatabaseConfig{
			Driver: "sqlite",
			DSN:    "sitecms.db",
		},
		Sanitizer: DefaultSanitizer(),
	}
}

// DefaultSanitizer mirrors the tag set produced by the admin rich-text editor.
func DefaultSanitizer() SanitizerConfig {
	return SanitizerConfig{
		AllowedTags: []string{
			"p", "br", "b", "strong", "i", "em", "u", "s",
			"h2", "h3", "h4", "ul", "ol", "li",
			"blockquote", "a", "img", "figure", "figcaption",
			"table", "thead", "tbody", "tr", "th", "td",
		},
		AllowedAttributes: map[string][]string{
			"a":   {"href", "title", "target"},
			"img": {"src", "alt", "width", "height"},
			"td":  {"colspan", "rowspan"},
			"th":  {"colspan", "rowspan"},
		},
	}
}

// Load 依次应用默认值、YAML 配置文件与环境变量。
// path 为空时读取 CONFIG_PATH，文件不存在时不视为错误。
func Load(path string) (AppConfig, error) {
	cfg := Default()

	configPath := strings.TrimSpace(path)
	if configPath == "" {
		configPath = strings.TrimSpace(os.Getenv("CONFIG_PATH"))
	}
	if configPath != "" {
		data, err := os.ReadFile(configPath)
		switch {
		case err == nil:
			// yaml merges into existing maps, so the attribute defaults apply only when the file omits them.
			cfg.Sanitizer.AllowedAttributes = nil
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return AppConfig{}, fmt.Errorf("parse config %s: %w", configPath, err)
			}
			if cfg.Sanitizer.AllowedAttributes == nil {
				cfg.Sanitizer.AllowedAttributes = DefaultSanitizer().AllowedAttributes
			}
		case os.IsNotExist(err):
		default:
			return AppConfig{}, fmt.Errorf("read config %s: %w", configPath, err)
		}
	}

	cfg.overrideFromEnv()
	cfg.applyDefaults()
	return cfg, nil
}

func (c *AppConfig) overrideFromEnv() {
	if port := strings.TrimSpace(os.Getenv("PORT")); port != "" {
		c.Port = port
	}
	if listenAddr := strings.TrimSpace(os.Getenv("LISTEN_ADDR")); listenAddr != "" {
		c.ListenAddr = listenAddr
	}
	if ginMode := strings.TrimSpace(os.Getenv("GIN_MODE")); ginMode != "" {
		c.GinMode = ginMode
	}
	if level := strings.TrimSpace(os.Getenv("LOG_LEVEL")); level != "" {
		c.LogLevel = level
	}
	if dir := strings.TrimSpace(os.Getenv("TEMPLATE_DIR")); dir != "" {
		c.TemplateDir = dir
	}
	if dir := strings.TrimSpace(os.Getenv("STATIC_DIR")); dir != "" {
		c.StaticDir = dir
	}
	if origins := strings.TrimSpace(os.Getenv("CORS_ORIGINS")); origins != "" {
		c.CORSOrigins = splitAndTrim(origins)
	}
	if driver := strings.TrimSpace(os.Getenv("DB_DRIVER")); driver != "" {
		c.Database.Driver = driver
	}
	if dsn := strings.TrimSpace(os.Getenv("DB_DSN")); dsn != "" {
		c.Database.DSN = dsn
	}
	if tags := strings.TrimSpace(os.Getenv("SANITIZER_ALLOWED_TAGS")); tags != "" {
		c.Sanitizer.AllowedTags = splitAndTrim(tags)
	}
}

func (c *AppConfig) applyDefaults() {
	if c.Port == "" {
		c.Port = "8080"
	}
	if c.ListenAddr == "" {
		c.ListenAddr = fmt.Sprintf(":%s", c.Port)
	}
	if c.GinMode == "" {
		c.GinMode = "release"
	}
	if c.Database.Driver == "" {
		c.Database.Driver = "sqlite"
	}
	if c.Sanitizer.AllowedAttributes == nil {
		c.Sanitizer.AllowedAttributes = map[string][]string{}
	}
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

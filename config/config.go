package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config ilovaning konfiguratsiyasi
type Config struct {
	Env      string `yaml:"env" env:"ENV" env-default:"local"`
	LogLevel string `yaml:"log_level" env:"LOG_LEVEL" env-default:"info"`

	Gemini struct {
		APIKey string `yaml:"api_key" env:"GEMINI_API_KEY" env-default:""`
		Model  string `yaml:"model" env:"GEMINI_MODEL" env-default:"gemini-2.0-flash-exp"`
	} `yaml:"gemini"`

	OpenAI struct {
		APIKey  string `yaml:"api_key" env:"OPENAI_API_KEY" env-default:""`
		BaseURL string `yaml:"base_url" env:"OPENAI_BASE_URL" env-default:""`
		Model   string `yaml:"model" env:"OPENAI_MODEL" env-default:"gpt-4o"`
	} `yaml:"openai"`

	DefaultProvider string `yaml:"default_provider" env:"DEFAULT_PROVIDER" env-default:"Gemini"`

	CatalogPath        string `yaml:"catalog_path" env:"CATALOG_PATH" env-default:"data/catalog.yaml"`
	PromptTemplatePath string `yaml:"prompt_template_path" env:"PROMPT_TEMPLATE_PATH" env-default:"data/prompt_template.txt"`
	PromptPlaceholder  string `yaml:"prompt_placeholder" env:"PROMPT_PLACEHOLDER" env-default:"{keyword}"`

	RequestTimeout     time.Duration `yaml:"request_timeout" env:"REQUEST_TIMEOUT" env-default:"60s"`
	RequestMinInterval time.Duration `yaml:"request_min_interval" env:"REQUEST_MIN_INTERVAL" env-default:"350ms"`

	Telegram struct {
		Token          string  `yaml:"token" env:"TELEGRAM_BOT_TOKEN" env-default:""`
		AllowedChatIDs []int64 `yaml:"allowed_chat_ids" env:"TELEGRAM_ALLOWED_CHAT_IDS" env-separator:","`
	} `yaml:"telegram"`
}

// Load konfiguratsiyani yuklash. path bo'sh bo'lsa faqat environment o'qiladi.
func Load(path string) (*Config, error) {
	// .env faylini yuklash (mavjud bo'lsa)
	_ = godotenv.Load()

	cfg := &Config{}
	var err error
	if path != "" {
		err = cleanenv.ReadConfig(path, cfg)
	} else {
		err = cleanenv.ReadEnv(cfg)
	}
	if err != nil {
		desc, _ := cleanenv.GetDescription(cfg, nil)
		return nil, fmt.Errorf("failed to read config: %w; %s", err, desc)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.PromptPlaceholder) == "" {
		return fmt.Errorf("PROMPT_PLACEHOLDER must not be empty")
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("REQUEST_TIMEOUT must be positive, got %s", c.RequestTimeout)
	}
	if c.RequestMinInterval < 0 {
		return fmt.Errorf("REQUEST_MIN_INTERVAL must not be negative, got %s", c.RequestMinInterval)
	}
	return nil
}

// ChatAllowed chat ruxsat ro'yxatida borligini tekshirish; ro'yxat bo'sh bo'lsa hammaga ruxsat
func (c *Config) ChatAllowed(chatID int64) bool {
	if len(c.Telegram.AllowedChatIDs) == 0 {
		return true
	}
	for _, id := range c.Telegram.AllowedChatIDs {
		if id == chatID {
			return true
		}
	}
	return false
}

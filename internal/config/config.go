package config

import (
	"gopkg.in/yaml.v3"
	"os"
)

type AdminConfig struct {
	// Break-glass аккаунт администратора. В БД такой записи нет,
	// вход проверяется только сравнением с этими значениями.
	Login    string `yaml:"login"`
	Password string `yaml:"password"`
	FullName string `yaml:"full_name"`
	Email    string `yaml:"email"`
	Phone    string `yaml:"phone"`
}

type TelegramConfig struct {
	BotToken string `yaml:"bot_token"`
	ChatID   int64  `yaml:"chat_id"`
}

type ReportsConfig struct {
	RootDir  string `yaml:"root_dir"`
	FontPath string `yaml:"font_path"`
}

type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`
	Database struct {
		DSN string `yaml:"url"`
	} `yaml:"database"`
	Session struct {
		File string `yaml:"file"`
	} `yaml:"session"`
	JWT struct {
		Secret string `yaml:"secret"`
	} `yaml:"jwt"`
	Email struct {
		SMTPHost     string `yaml:"smtp_host"`
		SMTPPort     int    `yaml:"smtp_port"`
		SMTPUser     string `yaml:"smtp_user"`
		SMTPPassword string `yaml:"smtp_password"`
		FromEmail    string `yaml:"from_email"`
		LeadsEmail   string `yaml:"leads_email"`
	} `yaml:"email"`
	Admin    AdminConfig    `yaml:"admin"`
	Telegram TelegramConfig `yaml:"telegram"`
	Reports  ReportsConfig  `yaml:"reports"`
}

func LoadConfig() *Config {
	f, err := os.Open("config/config.yaml")
	if err != nil {
		panic("Failed to open config.yaml: " + err.Error())
	}
	defer f.Close()

	var cfg Config
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		panic("Failed to parse config.yaml: " + err.Error())
	}

	if cfg.Session.File == "" {
		cfg.Session.File = "./data/session.json"
	}
	if cfg.Reports.RootDir == "" {
		cfg.Reports.RootDir = "./files"
	}
	return &cfg
}

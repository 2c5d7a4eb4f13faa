package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Archive  ArchiveConfig  `mapstructure:"archive"`
	Quiz     QuizConfig     `mapstructure:"quiz"`
	Embedded EmbeddedConfig `mapstructure:"embedded"`
	Tracing  TracingConfig  `mapstructure:"tracing"`
	CORS     CORSConfig     `mapstructure:"cors"`
}

type ServerConfig struct {
	Port string
	Mode string
}

// ArchiveConfig 远端题库归档的位置与抓取参数。
// Backend 选择抓取实现：http（原始仓库直链）、minio（对象存储镜像）或 local（本地目录）。
type ArchiveConfig struct {
	Backend       string            `mapstructure:"backend"`
	BaseURL       string            `mapstructure:"base_url"`
	LocalPath     string            `mapstructure:"local_path"`
	MinioEndpoint string            `mapstructure:"minio_endpoint"`
	MinioAccessID string            `mapstructure:"minio_access_key"`
	MinioSecret   string            `mapstructure:"minio_secret_key"`
	MinioBucket   string            `mapstructure:"minio_bucket"`
	MinioUseSSL   bool              `mapstructure:"minio_use_ssl"`
	FetchTimeout  time.Duration     `mapstructure:"fetch_timeout_seconds"`
	Concurrency   int               `mapstructure:"concurrency"`
	SubjectFiles  map[string]string `mapstructure:"subject_files"`
}

type ClusterConfig struct {
	Name     string   `mapstructure:"name"`
	Subjects []string `mapstructure:"subjects"`
}

type QuizConfig struct {
	Period              int             `mapstructure:"period"`
	GeneratedDate       string          `mapstructure:"generated_date"`
	ValidationStatus    string          `mapstructure:"validation_status"`
	ExpectedPerSubject  int             `mapstructure:"expected_per_subject"`
	SingleTimerMinutes  int             `mapstructure:"single_timer_minutes"`
	ClusterTimerMinutes int             `mapstructure:"cluster_timer_minutes"`
	Clusters            []ClusterConfig `mapstructure:"clusters"`
}

// EmbeddedConfig 启动时加载的内嵌题目数据文件。路径为空则对应层级启动时为空。
type EmbeddedConfig struct {
	CurrentFile  string `mapstructure:"current_file"`
	PreviousFile string `mapstructure:"previous_file"`
}

type TracingConfig struct {
	Enabled           bool   `mapstructure:"enabled"`
	CollectorEndpoint string `mapstructure:"collector_endpoint"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// 归档仓库的固定文件名约定
var defaultSubjectFiles = map[string]string{
	"mathematics": "JAMB_Mathematics_Q1-35.txt",
	"english":     "JAMB_English_Q1-35.txt",
	"physics":     "JAMB_Physics_Q1-35.txt",
	"chemistry":   "JAMB_Chemistry_Q1-35.txt",
	"biology":     "JAMB_Biology_Q1-35.txt",
	"literature":  "JAMB_Literature_Q1-35.txt",
	"government":  "JAMB_Government_Q1-35.txt",
	"crs":         "JAMB_Crs_Q1-35.txt",
	"accounting":  "JAMB_Accounting_Q1-35.txt",
	"commerce":    "JAMB_Commerce_Q1-35.txt",
	"economics":   "JAMB_Economics_Q1-35.txt",
}

func defaultClusters() []ClusterConfig {
	return []ClusterConfig{
		{Name: "science-cluster-a", Subjects: []string{"mathematics", "english", "physics", "chemistry"}},
		{Name: "science-cluster-b", Subjects: []string{"biology", "english", "physics", "chemistry"}},
		{Name: "arts-cluster-a", Subjects: []string{"english", "literature", "government", "crs"}},
		{Name: "commercial-cluster-a", Subjects: []string{"english", "accounting", "commerce", "economics"}},
		{Name: "commercial-cluster-b", Subjects: []string{"english", "mathematics", "economics", "government"}},
		{Name: "commercial-cluster-c", Subjects: []string{"english", "economics", "government", "commerce"}},
	}
}

func LoadConfig(path string) (*Config, error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetEnvPrefix("UTME_PREP")
	viper.AutomaticEnv()

	// Server
	viper.BindEnv("server.port", "SERVER_PORT")
	viper.BindEnv("server.mode", "SERVER_MODE")

	// Archive
	viper.BindEnv("archive.backend", "ARCHIVE_BACKEND")
	viper.BindEnv("archive.base_url", "ARCHIVE_BASE_URL")
	viper.BindEnv("archive.local_path", "ARCHIVE_LOCAL_PATH")
	viper.BindEnv("archive.minio_endpoint", "MINIO_ENDPOINT")
	viper.BindEnv("archive.minio_access_key", "MINIO_ACCESS_KEY")
	viper.BindEnv("archive.minio_secret_key", "MINIO_SECRET_KEY")
	viper.BindEnv("archive.minio_bucket", "MINIO_BUCKET")

	// Quiz
	viper.BindEnv("quiz.period", "QUIZ_PERIOD")
	viper.BindEnv("quiz.generated_date", "QUIZ_GENERATED_DATE")
	viper.BindEnv("quiz.validation_status", "QUIZ_VALIDATION_STATUS")

	// Tracing
	viper.BindEnv("tracing.enabled", "TRACING_ENABLED")
	viper.BindEnv("tracing.collector_endpoint", "TRACING_COLLECTOR_ENDPOINT")

	viper.SetDefault("server.port", "8080")
	viper.SetDefault("server.mode", "debug")
	viper.SetDefault("archive.backend", "http")
	viper.SetDefault("archive.fetch_timeout_seconds", 10)
	viper.SetDefault("archive.concurrency", 4)
	viper.SetDefault("quiz.period", 1)
	viper.SetDefault("quiz.validation_status", "UNKNOWN")
	viper.SetDefault("quiz.expected_per_subject", 35)
	viper.SetDefault("quiz.single_timer_minutes", 15)
	viper.SetDefault("quiz.cluster_timer_minutes", 60)

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	cfg.Archive.FetchTimeout = cfg.Archive.FetchTimeout * time.Second

	if len(cfg.Archive.SubjectFiles) == 0 {
		cfg.Archive.SubjectFiles = defaultSubjectFiles
	}
	if len(cfg.Quiz.Clusters) == 0 {
		cfg.Quiz.Clusters = defaultClusters()
	}

	if cfg.Quiz.Period < 1 {
		return nil, fmt.Errorf("quiz.period must be >= 1, got %d", cfg.Quiz.Period)
	}
	if cfg.Archive.Backend == "minio" && cfg.Archive.MinioEndpoint == "" {
		return nil, fmt.Errorf("archive.backend is minio but archive.minio_endpoint is empty")
	}

	return &cfg, nil
}

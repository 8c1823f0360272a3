package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App               App               `mapstructure:",squash"`
	Server            Server            `mapstructure:",squash"`
	Database          Database          `mapstructure:",squash"`
	Boltic            Boltic            `mapstructure:",squash"`
	Fynd              Fynd              `mapstructure:",squash"`
	Auth              Auth              `mapstructure:",squash"`
	Ingest            Ingest            `mapstructure:",squash"`
	SalesSignalsSync  SalesSignalsSync  `mapstructure:",squash"`
	ReplenishmentScan ReplenishmentScan `mapstructure:",squash"`
	SecretKey         string            `mapstructure:"secret_key"`
}

type Server struct {
	Host        string   `mapstructure:"host"`
	Port        string   `mapstructure:"port"`
	CorsOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Enabled  bool   `mapstructure:"database_enabled"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// Boltic holds the endpoints of the workflow backend that owns every table.
type Boltic struct {
	TablesURL         string        `mapstructure:"boltic_tables_url"`
	WorkflowsURL      string        `mapstructure:"boltic_workflows_url"`
	SalesEntryURL     string        `mapstructure:"boltic_sales_entry_url"`
	APIKey            string        `mapstructure:"boltic_api_key"`
	SalesSyncWorkflow string        `mapstructure:"boltic_sales_sync_workflow"`
	FyndEventWorkflow string        `mapstructure:"boltic_fynd_event_workflow"`
	Timeout           time.Duration `mapstructure:"boltic_timeout"`
}

type Fynd struct {
	APIBase        string        `mapstructure:"fynd_api_base"`
	CompanyID      string        `mapstructure:"fynd_company_id"`
	OrganizationID string        `mapstructure:"fynd_organization_id"`
	AuthToken      string        `mapstructure:"fynd_auth_token"`
	WebhookSecret  string        `mapstructure:"fynd_webhook_secret"`
	CLIVersion     string        `mapstructure:"fynd_cli_version"`
	Timeout        time.Duration `mapstructure:"fynd_timeout"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

// Auth lists the dashboard users as "email:role_id:bcrypt_hash" entries.
type Auth struct {
	Users    []string      `mapstructure:"auth_users"`
	TokenTTL time.Duration `mapstructure:"auth_token_ttl"`
}

type Ingest struct {
	PreviewRows int `mapstructure:"ingest_preview_rows"`
	TopSKUs     int `mapstructure:"ingest_top_skus"`
	RecentRuns  int `mapstructure:"ingest_recent_runs"`
}

type SalesSignalsSync struct {
	CronSchedule string `mapstructure:"sales_signals_sync_cron"`
	Enabled      bool   `mapstructure:"sales_signals_sync_enabled"`
}

type ReplenishmentScan struct {
	CronSchedule string `mapstructure:"replenishment_scan_cron"`
	Enabled      bool   `mapstructure:"replenishment_scan_enabled"`
}

// AuthUser is a parsed entry of Auth.Users.
type AuthUser struct {
	Email        string
	RoleID       int
	PasswordHash string
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "")

	viper.SetDefault("DATABASE_ENABLED", false)
	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/inventory?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("BOLTIC_TABLES_URL", "https://asia-south1.api.boltic.io/service/panel/boltic-tables/v1/tables")
	viper.SetDefault("BOLTIC_WORKFLOWS_URL", "https://asia-south1.api.boltic.io/service/panel/workflows/v1/workflows")
	viper.SetDefault("BOLTIC_SALES_ENTRY_URL", "https://asia-south1.workflow.boltic.app/8d321f41-0f56-44e7-b790-db8f2fa0dba1/newsales")
	viper.SetDefault("BOLTIC_API_KEY", "")
	viper.SetDefault("BOLTIC_SALES_SYNC_WORKFLOW", "A_sales_signals_sync")
	viper.SetDefault("BOLTIC_FYND_EVENT_WORKFLOW", "fynd_events_sync")
	viper.SetDefault("BOLTIC_TIMEOUT", "0s")

	viper.SetDefault("FYND_API_BASE", "https://api.fynd.com")
	viper.SetDefault("FYND_COMPANY_ID", "")
	viper.SetDefault("FYND_ORGANIZATION_ID", "")
	viper.SetDefault("FYND_AUTH_TOKEN", "")
	viper.SetDefault("FYND_WEBHOOK_SECRET", "")
	viper.SetDefault("FYND_CLI_VERSION", "8.0.4")
	viper.SetDefault("FYND_TIMEOUT", "0s")

	viper.SetDefault("SECRET_KEY", "your_secret_key")
	viper.SetDefault("AUTH_USERS", "")
	viper.SetDefault("AUTH_TOKEN_TTL", "24h")

	viper.SetDefault("INGEST_PREVIEW_ROWS", 20)
	viper.SetDefault("INGEST_TOP_SKUS", 5)
	viper.SetDefault("INGEST_RECENT_RUNS", 20)

	viper.SetDefault("SALES_SIGNALS_SYNC_CRON", "0 1 * * *") // every day at 1am
	viper.SetDefault("SALES_SIGNALS_SYNC_ENABLED", false)

	viper.SetDefault("REPLENISHMENT_SCAN_CRON", "5 10 * * *")
	viper.SetDefault("REPLENISHMENT_SCAN_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Using variables loaded by godotenv (viper could not read .env): ", err)
	} else {
		logrus.Info(".env file read by viper")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// AuthUsers parses the configured users, skipping malformed entries.
func (c *Config) AuthUsers() []AuthUser {
	users := make([]AuthUser, 0, len(c.Auth.Users))
	for _, entry := range c.Auth.Users {
		parts := strings.SplitN(strings.TrimSpace(entry), ":", 3)
		if len(parts) != 3 {
			logrus.WithField("entry", entry).Warn("Ignoring malformed AUTH_USERS entry")
			continue
		}

		roleID, err := strconv.Atoi(parts[1])
		if err != nil {
			logrus.WithField("email", parts[0]).Warn("Ignoring AUTH_USERS entry with invalid role")
			continue
		}

		users = append(users, AuthUser{
			Email:        strings.ToLower(parts[0]),
			RoleID:       roleID,
			PasswordHash: parts[2],
		})
	}
	return users
}

func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Could not get current directory: ", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		logrus.Debug("Trying to load .env from: ", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info(".env loaded from: ", location)
			return
		}
	}

	logrus.Warn("Could not load .env from any known location")
}

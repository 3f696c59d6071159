package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultPort         = "8080"
	defaultTimezone     = "Asia/Shanghai"
	defaultVertexModel  = "gemini-1.5-flash"
	defaultRegion       = "asia-east1"
	defaultSampleDays   = 30
	defaultReviewsDaily = 1000
	localUID            = "local-user"
)

type Config struct {
	ProjectID   string
	Region      string
	LogLevel    string
	LogFormat   string
	Port        string
	VertexModel string
	Timezone    string

	SampleDays          int
	SampleReviewsPerDay int
	SampleSeed          uint64

	// AuthDisabled skips Firebase token checks; every request runs as LocalUID.
	AuthDisabled bool
	LocalUID     string
}

// New reads the configuration from the environment. A .env file in the
// working directory is loaded first when present.
func New() *Config {
	_ = godotenv.Load()

	return &Config{
		ProjectID:           os.Getenv("PROJECTID"),
		Region:              getEnv("REGION", defaultRegion),
		LogLevel:            os.Getenv("LOGLEVEL"),
		LogFormat:           os.Getenv("LOGFORMAT"),
		Port:                getEnv("PORT", defaultPort),
		VertexModel:         getEnv("VERTEXMODEL", defaultVertexModel),
		Timezone:            getEnv("TIMEZONE", defaultTimezone),
		SampleDays:          getEnvInt("SAMPLEDAYS", defaultSampleDays),
		SampleReviewsPerDay: getEnvInt("SAMPLEREVIEWSPERDAY", defaultReviewsDaily),
		SampleSeed:          getEnvUint("SAMPLESEED", 0),
		AuthDisabled:        getEnvBool("AUTHDISABLED", false),
		LocalUID:            getEnv("LOCALUID", localUID),
	}
}

// Local reports whether the service runs without any Google Cloud project.
func (c *Config) Local() bool {
	return c.ProjectID == ""
}

// Location resolves Timezone, falling back to UTC when it is unknown.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

func getEnvUint(key string, fallback uint64) uint64 {
	v, err := strconv.ParseUint(os.Getenv(key), 10, 64)
	if err != nil {
		return fallback
	}
	return v
}

func getEnvBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

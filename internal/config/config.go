package config

import (
	"os"
)

type R2Config struct {
	AccountID       string
	AccessKeyID     string
	SecretAccessKey string
	Bucket          string
	PublicURL       string
}

type SupabaseConfig struct {
	URL     string
	AnonKey string
}

type Config struct {
	R2       R2Config
	Supabase SupabaseConfig
}

func LoadConfig() *Config {
	cfg := &Config{}

	cfg.R2.AccountID = os.Getenv("R2_ACCOUNT_ID")
	cfg.R2.AccessKeyID = os.Getenv("R2_ACCESS_KEY_ID")
	cfg.R2.SecretAccessKey = os.Getenv("R2_SECRET_ACCESS_KEY")
	cfg.R2.Bucket = os.Getenv("R2_BUCKET")
	cfg.R2.PublicURL = os.Getenv("R2_PUBLIC_URL")

	cfg.Supabase.URL = os.Getenv("SUPABASE_URL")
	cfg.Supabase.AnonKey = os.Getenv("SUPABASE_ANON_KEY")

	return cfg
}

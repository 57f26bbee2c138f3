package config

import (
	"time"

	"github.com/urfave/cli/v3"
)

type Config struct {
	Ingest
	PostgreSQL
	HTTP
}

type Ingest struct {
	InputDirectory         string
	ReportSuccessDirectory string
	ReportErrorDirectory   string
	Workers                int
	RescanInterval         time.Duration
	SettleDelay            time.Duration
	DrainTimeout           time.Duration
	ReportPDF              bool
}

type PostgreSQL struct {
	Host     string
	Port     string
	Username string
	Password string
	DBName   string
	MaxConns int32
}

type HTTP struct {
	Enabled      bool
	Host         string
	Port         string
	IdleTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

func Load(cmd *cli.Command) *Config {
	return &Config{
		Ingest: Ingest{
			InputDirectory:         cmd.String("input-dir"),
			ReportSuccessDirectory: cmd.String("report-success-dir"),
			ReportErrorDirectory:   cmd.String("report-error-dir"),
			Workers:                cmd.Int("workers"),
			RescanInterval:         cmd.Duration("rescan-interval"),
			SettleDelay:            cmd.Duration("settle-delay"),
			DrainTimeout:           cmd.Duration("drain-timeout"),
			ReportPDF:              cmd.Bool("report-pdf"),
		},
		PostgreSQL: PostgreSQL{
			Host:     cmd.String("pg-host"),
			Port:     cmd.String("pg-port"),
			Username: cmd.String("pg-username"),
			Password: cmd.String("pg-password"),
			DBName:   cmd.String("pg-dbname"),
			MaxConns: int32(cmd.Int("pg-max-conns")),
		},
		HTTP: HTTP{
			Enabled:      cmd.Bool("http-enabled"),
			Host:         cmd.String("http-host"),
			Port:         cmd.String("http-port"),
			IdleTimeout:  cmd.Duration("http-idle-timeout"),
			ReadTimeout:  cmd.Duration("http-read-timeout"),
			WriteTimeout: cmd.Duration("http-write-timeout"),
		},
	}
}

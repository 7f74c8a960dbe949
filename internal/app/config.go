package app

import (
	"errors"
	"fmt"
	"strings"
)

// Commands understood by App.Run.
const (
	CommandTSP      = "tsp"
	CommandGauss    = "gauss"
	CommandWinograd = "winograd"
	CommandPlan     = "plan"
)

// Config holds everything an App needs for one invocation.
type Config struct {
	Command string
	Inputs  []string

	LogFormat string
	LogLevel  string

	Mode    string
	Samples int
	Repeat  int
	Threads int
	Seed    int64
	Rows    int
	Cols    int

	ReportPath string
	ChartPath  string
}

// NewConfig validates cfg and returns a copy with the command name canonicalised.
func NewConfig(cfg Config) (*Config, error) {
	cfg.Command = strings.ToLower(cfg.Command)
	if cfg.Command == "ant" {
		cfg.Command = CommandTSP
	}

	switch cfg.Command {
	case CommandTSP, CommandGauss, CommandWinograd:
	case CommandPlan:
		if len(cfg.Inputs) != 1 {
			return nil, errors.New("plan needs exactly one plan file")
		}
	case "":
		return nil, errors.New("a command is required")
	default:
		return nil, fmt.Errorf("unknown command %q", cfg.Command)
	}

	return &cfg, nil
}

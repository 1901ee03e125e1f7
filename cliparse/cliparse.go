// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/danielhkuo/quickly-tally/election"
)

const (
	DefaultPort         = 3318
	DefaultMaxBallots   = 1_000_000
	DefaultMaxBodyBytes = 32 << 20
	DefaultEnvFile      = ".env"
)

type Config struct {
	Port         int
	Policy       election.Policy
	MaxBallots   int
	MaxBodyBytes int64
	EnvFile      string
}

// ParseFlags validates flags and fills the gaps from the environment
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var policy string

	fs := flag.NewFlagSet("quickly-tally", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&policy, "policy", "", "Elimination policy for tied-lowest candidates (single or batch)")
	fs.IntVar(&cfg.MaxBallots, "max-ballots", 0, "Maximum ballots accepted per tally")
	fs.StringVar(&cfg.EnvFile, "env-file", DefaultEnvFile, "Dotenv file to load before reading the environment")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Existing environment variables win over the dotenv file
	if cfg.EnvFile != "" {
		err := godotenv.Load(cfg.EnvFile)
		if err != nil && !(errors.Is(err, os.ErrNotExist) && cfg.EnvFile == DefaultEnvFile) {
			return Config{}, fmt.Errorf("failed to load env file %s: %w", cfg.EnvFile, err)
		}
	}

	if cfg.Port == 0 {
		port, err := intFromEnv("PORT", DefaultPort)
		if err != nil {
			return Config{}, err
		}
		cfg.Port = port
	}
	if cfg.Port < 1 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("port %d out of range", cfg.Port)
	}

	if policy == "" {
		policy = os.Getenv("TALLY_POLICY")
	}
	if policy == "" {
		policy = election.PolicySingle.String()
	}
	p, err := election.ParsePolicy(policy)
	if err != nil {
		return Config{}, err
	}
	cfg.Policy = p

	if cfg.MaxBallots == 0 {
		maxBallots, err := intFromEnv("TALLY_MAX_BALLOTS", DefaultMaxBallots)
		if err != nil {
			return Config{}, err
		}
		cfg.MaxBallots = maxBallots
	}
	if cfg.MaxBallots < 1 {
		return Config{}, errors.New("max ballots must be positive")
	}

	maxBody, err := intFromEnv("TALLY_MAX_BODY_BYTES", DefaultMaxBodyBytes)
	if err != nil {
		return Config{}, err
	}
	if maxBody < 1 {
		return Config{}, errors.New("TALLY_MAX_BODY_BYTES must be positive")
	}
	cfg.MaxBodyBytes = int64(maxBody)

	return cfg, nil
}

func intFromEnv(key string, fallback int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s env variable", key)
	}
	return n, nil
}

package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Default configuration values
const (
	DefaultBranch   = "main"
	DefaultRemote   = "origin"
	DefaultLogLevel = "warn"
	EnvPrefix       = "GA"
)

// Viper keys. Each one is also a flag (with '_' spelled '-') and an
// environment variable (GA_<KEY>).
const (
	KeyOrigin    = "origin"
	KeyRemote    = "remote"
	KeyVerbose   = "verbose"
	KeyNoSignoff = "no_signoff"
	KeyNoVerify  = "no_verify"
	KeyLogLevel  = "log_level"
)

// MessageFlag is read from the command line only, never from the environment.
const MessageFlag = "message"

// RunConfig holds everything one invocation needs. It is built once before
// the pipeline starts and is not modified afterwards.
type RunConfig struct {
	Message   string
	Branch    string
	Remote    string
	Verbose   bool
	NoSignoff bool
	NoVerify  bool
	LogLevel  string
}

// Signoff reports whether commits get a Signed-off-by trailer.
func (c RunConfig) Signoff() bool {
	return !c.NoSignoff
}

// HasMessage reports whether a usable message was supplied up front.
func (c RunConfig) HasMessage() bool {
	return strings.TrimSpace(c.Message) != ""
}

// Load builds a RunConfig from parsed flags, GA_* environment variables and
// defaults, in that order of precedence. No configuration file is read.
func Load(flags *pflag.FlagSet) (RunConfig, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyOrigin, DefaultBranch)
	v.SetDefault(KeyRemote, DefaultRemote)
	v.SetDefault(KeyVerbose, false)
	v.SetDefault(KeyNoSignoff, false)
	v.SetDefault(KeyNoVerify, false)
	v.SetDefault(KeyLogLevel, DefaultLogLevel)

	for _, key := range []string{KeyOrigin, KeyRemote, KeyVerbose, KeyNoSignoff, KeyNoVerify, KeyLogLevel} {
		flag := flags.Lookup(strings.ReplaceAll(key, "_", "-"))
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return RunConfig{}, fmt.Errorf("failed to bind flag %s: %w", flag.Name, err)
		}
	}

	var message string
	if flags.Lookup(MessageFlag) != nil {
		var err error
		if message, err = flags.GetString(MessageFlag); err != nil {
			return RunConfig{}, fmt.Errorf("failed to read --%s: %w", MessageFlag, err)
		}
	}

	cfg := RunConfig{
		Message:   message,
		Branch:    strings.TrimSpace(v.GetString(KeyOrigin)),
		Remote:    strings.TrimSpace(v.GetString(KeyRemote)),
		Verbose:   v.GetBool(KeyVerbose),
		NoSignoff: v.GetBool(KeyNoSignoff),
		NoVerify:  v.GetBool(KeyNoVerify),
		LogLevel:  strings.TrimSpace(v.GetString(KeyLogLevel)),
	}
	if cfg.Branch == "" {
		cfg.Branch = DefaultBranch
	}
	if cfg.Remote == "" {
		cfg.Remote = DefaultRemote
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	return cfg, nil
}

// Package config loads scanner settings from a .env file, the environment and
// command-line flags.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/idelchi/smbscan/internal/report"
	"github.com/idelchi/smbscan/internal/scan"
	"github.com/idelchi/smbscan/internal/share"
)

// Keys used in the viper registry.
const (
	KeyServer      = "server"
	KeyShare       = "share"
	KeyUsername    = "username"
	KeyPassword    = "password"
	KeyDomain      = "domain"
	KeyPort        = "port"
	KeyDialTimeout = "dial-timeout"
	KeyOutput      = "output"
	KeyThreshold   = "threshold"
	KeyUnknown     = "unknown"
	KeyDebug       = "debug"
)

// DefaultEnvFile is loaded when present.
const DefaultEnvFile = ".env"

// DefaultShare is the share scanned on the server.
const DefaultShare = "pkv_share"

// ErrMissing is returned when a required setting is not provided.
var ErrMissing = errors.New("missing required configuration")

// envNames maps keys to their environment variables.
//
//nolint:gochecknoglobals // Config constant
var envNames = map[string]string{
	KeyServer:      "SMB_SERVER",
	KeyShare:       "SMB_SHARE",
	KeyUsername:    "SMB_USERNAME",
	KeyPassword:    "SMB_PASSWORD",
	KeyDomain:      "SMB_DOMAIN",
	KeyPort:        "SMB_PORT",
	KeyDialTimeout: "SMB_DIAL_TIMEOUT",
	KeyOutput:      "SMBSCAN_OUTPUT",
	KeyThreshold:   "SMBSCAN_THRESHOLD",
	KeyUnknown:     "SMBSCAN_UNKNOWN",
	KeyDebug:       "SMBSCAN_DEBUG",
}

// Config is the resolved scanner configuration.
type Config struct {
	// Share holds the connection settings.
	Share share.Config
	// Output is the CSV report path.
	Output string
	// Threshold is the exclusive file size limit in bytes.
	Threshold int64
	// Unknown is the policy for entries that cannot be classified.
	Unknown scan.UnknownPolicy
	// Debug enables debug logging.
	Debug bool
}

// Root returns the share root path.
func (c Config) Root() string {
	return share.Root(c.Share.Server, c.Share.Share)
}

// EnvName returns the environment variable bound to key.
func EnvName(key string) string {
	return envNames[key]
}

// New returns a viper registry with defaults and environment bindings.
func New() *viper.Viper {
	v := viper.New()

	v.SetDefault(KeyShare, DefaultShare)
	v.SetDefault(KeyPort, share.DefaultPort)
	v.SetDefault(KeyDialTimeout, share.DefaultDialTimeout)
	v.SetDefault(KeyOutput, report.DefaultPath)
	v.SetDefault(KeyThreshold, "500MiB")
	v.SetDefault(KeyUnknown, scan.UnknownAsFile.String())
	v.SetDefault(KeyDebug, false)

	for key, env := range envNames {
		_ = v.BindEnv(key, env)
	}

	return v
}

// LoadEnvFile loads variables from path into the process environment without
// overriding variables that are already set. A missing file is not an error
// unless required is set.
func LoadEnvFile(path string, required bool) error {
	err := godotenv.Load(path)
	if err == nil {
		return nil
	}

	if !required && errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	return fmt.Errorf("loading env file %q: %w", path, err)
}

// Load resolves and validates the configuration held by v.
func Load(v *viper.Viper) (Config, error) {
	var missing []string

	for _, key := range []string{KeyServer, KeyUsername} {
		if strings.TrimSpace(v.GetString(key)) == "" {
			missing = append(missing, envNames[key])
		}
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", ErrMissing, strings.Join(missing, ", "))
	}

	threshold, err := humanize.ParseBytes(v.GetString(KeyThreshold))
	if err != nil {
		return Config{}, fmt.Errorf("invalid threshold: %w", err)
	}

	if threshold == 0 {
		return Config{}, errors.New("threshold must be positive")
	}

	unknown, err := scan.ParseUnknownPolicy(v.GetString(KeyUnknown))
	if err != nil {
		return Config{}, err
	}

	port := v.GetInt(KeyPort)
	if port <= 0 || port > 65535 {
		return Config{}, fmt.Errorf("invalid port %d", port)
	}

	output := v.GetString(KeyOutput)
	if output == "" {
		output = report.DefaultPath
	}

	return Config{
		Share: share.Config{
			Server:      v.GetString(KeyServer),
			Share:       v.GetString(KeyShare),
			Username:    v.GetString(KeyUsername),
			Password:    v.GetString(KeyPassword),
			Domain:      v.GetString(KeyDomain),
			Port:        port,
			DialTimeout: v.GetDuration(KeyDialTimeout),
		},
		Output:    output,
		Threshold: int64(threshold), //nolint:gosec // Size conversion from humanize is safe
		Unknown:   unknown,
		Debug:     v.GetBool(KeyDebug),
	}, nil
}

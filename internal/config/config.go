package config

import (
	"fmt"
	"github.com/spf13/viper"
	"strings"
)

// EnvPrefix - Prefix of environment variables overriding configuration, e.g. HTSTAT_SIZE
const EnvPrefix = "HTSTAT"

// Config - Configuration of the htstat command
//   - AppName is printed on every log line
//   - LogLevel is one of DEBUG, INFO, WARN, ERROR, FATAL, PANIC and DISABLED
//   - Size is the requested number of buckets of each table
//   - Keys is the number of random keys to generate when no KeysFile is given
//   - KeyLength is the length of generated keys
//   - Seed seeds the random key generator
//   - KeysFile is an optional file with one key per line
//   - Algorithms are the names of the hash algorithms to compare
//   - CaseSensitive, Sorted and Storage configure each table
//   - Distribution set to true logs the number of items in every bucket
type Config struct {
	AppName       string   `mapstructure:"app_name"`
	LogLevel      string   `mapstructure:"log_level"`
	Size          int      `mapstructure:"size"`
	Keys          int      `mapstructure:"keys"`
	KeyLength     int      `mapstructure:"key_length"`
	Seed          int64    `mapstructure:"seed"`
	KeysFile      string   `mapstructure:"keys_file"`
	Algorithms    []string `mapstructure:"algorithms"`
	CaseSensitive bool     `mapstructure:"case_sensitive"`
	Sorted        bool     `mapstructure:"sorted"`
	Storage       string   `mapstructure:"storage"`
	Distribution  bool     `mapstructure:"distribution"`
}

// setDefaults - Registers every key with its default so that environment overrides are picked up by Unmarshal
func setDefaults(v *viper.Viper) {
	v.SetDefault("app_name", "htstat")
	v.SetDefault("log_level", "INFO")
	v.SetDefault("size", 1000)
	v.SetDefault("keys", 10000)
	v.SetDefault("key_length", 12)
	v.SetDefault("seed", 1)
	v.SetDefault("keys_file", "")
	v.SetDefault("algorithms", []string{"oneatatime", "xxhash", "xxh3", "murmur3"})
	v.SetDefault("case_sensitive", false)
	v.SetDefault("sorted", false)
	v.SetDefault("storage", "external")
	v.SetDefault("distribution", false)
}

// Load - Returns the configuration built from defaults, the optional config file and HTSTAT_* environment variables,
// in rising order of precedence.
//   - configFile is the path of a config file of any format viper knows by its extension, empty for none
func Load(configFile string) (conf Config, err error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err = v.ReadInConfig(); err != nil {
			err = fmt.Errorf("error while reading config file %s: %s", configFile, err)
			return
		}
	}

	if err = v.Unmarshal(&conf); err != nil {
		err = fmt.Errorf("error while decoding config: %s", err)
		return
	}

	err = conf.validate()

	return
}

// validate - Checks values that can not be left to the hash table to reject
func (C Config) validate() error {
	if C.Keys < 0 {
		return fmt.Errorf("number of keys can not be negative")
	}
	if C.KeysFile == "" && C.KeyLength <= 0 {
		return fmt.Errorf("key length must be a positive value higher than 0 (zero)")
	}
	if len(C.Algorithms) == 0 {
		return fmt.Errorf("at least one hash algorithm must be given")
	}
	switch strings.ToLower(C.Storage) {
	case "external", "intable", "in-table":
	default:
		return fmt.Errorf("unknown storage %q, use external or in-table", C.Storage)
	}

	return nil
}

package main

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	envPrefix = "STABCOUNT"

	flagLogLevel   = "log-level"
	flagImpl       = "impl"
	flagSnapshot   = "snapshot"
	flagStore      = "store"
	flagDir        = "dir"
	flagContainer  = "container"
	flagName       = "name"
	flagPoints     = "points"
	flagRectangles = "rectangles"
	flagSeed       = "seed"
	flagSpan       = "span"
	flagMaxCells   = "max-cells"

	implTree   = "tree"
	implLinear = "linear"
	implGrid   = "grid"

	storeDir  = "dir"
	storeBlob = "blob"
)

// Config is the resolved command configuration. Every field can be set by
// flag or by the STABCOUNT_ prefixed environment variable of the same name.
type Config struct {
	LogLevel   string
	Impl       string
	Snapshot   string
	Store      string
	Dir        string
	Container  string
	Name       string
	Points     int
	Rectangles int
	Seed       uint64
	Span       int64
	MaxCells   uint64
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// loadConfig binds the flags of the command being run, so that flags set on
// the command line take precedence over the environment.
func loadConfig(v *viper.Viper, cmd *cobra.Command) (Config, error) {
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return Config{}, err
	}
	return Config{
		LogLevel:   v.GetString(flagLogLevel),
		Impl:       v.GetString(flagImpl),
		Snapshot:   v.GetString(flagSnapshot),
		Store:      v.GetString(flagStore),
		Dir:        v.GetString(flagDir),
		Container:  v.GetString(flagContainer),
		Name:       v.GetString(flagName),
		Points:     v.GetInt(flagPoints),
		Rectangles: v.GetInt(flagRectangles),
		Seed:       v.GetUint64(flagSeed),
		Span:       v.GetInt64(flagSpan),
		MaxCells:   v.GetUint64(flagMaxCells),
	}, nil
}

func addStoreFlags(cmd *cobra.Command) {
	cmd.Flags().String(flagStore, storeDir, "snapshot store: dir or blob")
	cmd.Flags().String(flagDir, ".", "root directory of the dir store")
	cmd.Flags().String(flagContainer, "stabcount", "blob container of the blob store (development emulator)")
}

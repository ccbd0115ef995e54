package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Configuration keys. Each one can be set by the flag of the same name, by
// EREBRUS_<KEY> environment variable (dashes replaced with underscores) or in
// the config file.
const (
	cfgRPC        = "rpc"
	cfgContract   = "contract"
	cfgTimeout    = "timeout"
	cfgFormat     = "format"
	cfgIDEncoding = "id-encoding"
	cfgDebug      = "debug"
)

const envPrefix = "EREBRUS"

var validFormats = []string{formatText, formatJSON}

// options are resolved global settings shared by all commands.
type options struct {
	v   *viper.Viper
	log *zap.Logger
}

func (o *options) rpcEndpoint() string    { return o.v.GetString(cfgRPC) }
func (o *options) contract() string       { return o.v.GetString(cfgContract) }
func (o *options) timeout() time.Duration { return o.v.GetDuration(cfgTimeout) }

func (o *options) idCodec() (idEncoding, error) {
	return parseIDEncoding(o.v.GetString(cfgIDEncoding))
}

func (o *options) printer(cmd *cobra.Command) (*printer, error) {
	enc, err := o.idCodec()
	if err != nil {
		return nil, err
	}
	return &printer{
		format: o.v.GetString(cfgFormat),
		ids:    enc,
		w:      cmd.OutOrStdout(),
	}, nil
}

func newRootCommand() *cobra.Command {
	opts := &options{v: viper.New(), log: zap.NewNop()}
	var cfgFile string

	cmd := &cobra.Command{
		Use:           "erebrus-registry",
		Short:         "Erebrus node registry inspector",
		Long:          "Read-only access to Erebrus Wi-Fi and VPN node registry deployed on a Neo N3 network.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			err := bindConfig(opts.v, cmd, cfgFile)
			if err != nil {
				return err
			}

			if !isValidFormat(opts.v.GetString(cfgFormat)) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.v.GetString(cfgFormat), validFormats)
			}
			if _, err = opts.idCodec(); err != nil {
				return err
			}

			opts.log, err = newLogger(opts.v.GetBool(cfgDebug))
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = opts.log.Sync()
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&cfgFile, "config", "c", "", "path to YAML config file")
	pf.StringP(cfgRPC, "r", "", "Neo N3 RPC endpoint")
	pf.String(cfgContract, "", "registry contract hash (LE) or address")
	pf.Duration(cfgTimeout, 15*time.Second, "RPC dial and request timeout")
	pf.String(cfgFormat, formatText, "output format (text|json)")
	pf.String(cfgIDEncoding, string(idHex), "node ID and address encoding (hex|base58)")
	pf.Bool(cfgDebug, false, "enable debug logging")

	cmd.AddCommand(
		newInfoCommand(opts),
		newNodeCommand(opts),
		newNodesCommand(opts),
		newCheckpointsCommand(opts),
		newNodeIDCommand(opts),
		newCheckpointAddressCommand(opts),
	)

	return cmd
}

// bindConfig makes flags, environment and the optional config file the
// sources of v in this order of precedence.
func bindConfig(v *viper.Viper, cmd *cobra.Command, cfgFile string) error {
	err := v.BindPFlags(cmd.Flags())
	if err != nil {
		return fmt.Errorf("bind flags: %w", err)
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		err = v.ReadInConfig()
		if err != nil {
			return fmt.Errorf("read config file (%s): %w", cfgFile, err)
		}
	}

	return nil
}

func newLogger(debug bool) (*zap.Logger, error) {
	var cfg zap.Config
	if debug {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}

func isValidFormat(format string) bool {
	for _, f := range validFormats {
		if f == format {
			return true
		}
	}
	return false
}

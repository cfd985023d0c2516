// tagword - inspect tagged immediate values
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/tliron/commonlog"
	"golang.org/x/term"

	"github.com/chazu/tagword/config"
	"github.com/chazu/tagword/vm"

	_ "github.com/tliron/commonlog/simple"
)

var rootCmd = &cobra.Command{
	Use:   "tagword",
	Short: "Inspect tagged immediate values",
	Long: `tagword encodes numbers into tagged immediate words, decodes words
back into values, and reads and writes CBOR constant pools.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// session holds what every subcommand needs once flags and config are
// resolved.
type session struct {
	cfg   *config.Config
	codec vm.Codec
	out   *printer
	log   commonlog.Logger
}

var sess session

func init() {
	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(decodeCmd)
	rootCmd.AddCommand(constantsCmd)
	rootCmd.AddCommand(poolCmd)

	rootCmd.PersistentFlags().Int("width", 0, "word width to inspect (32|64, default from config)")
	rootCmd.PersistentFlags().String("config", "", "path to a tagword.toml file")
	rootCmd.PersistentFlags().String("color", "", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().String("format", "", "word format (hex|binary)")
	rootCmd.PersistentFlags().CountP("verbose", "v", "increase log verbosity")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func setup(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if err := applyFlags(cmd.Root().PersistentFlags(), cfg); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	var logPath *string
	if cfg.Log.File != "" {
		logPath = &cfg.Log.File
	}
	commonlog.Configure(cfg.Log.Verbosity, logPath)

	codec, err := config.CodecFor(cfg.Codec.Width)
	if err != nil {
		return err
	}

	useColor := cfg.Output.Color == "on" || (cfg.Output.Color == "auto" && isTerminal(os.Stdout))
	sess = session{
		cfg:   cfg,
		codec: codec,
		out:   newPrinter(cmd.OutOrStdout(), codec.WordBits(), cfg.Output.Format, useColor),
		log:   commonlog.GetLogger("tagword.cli"),
	}
	if cfg.Path != "" {
		sess.log.Infof("loaded config %s", cfg.Path)
	}
	sess.log.Debugf("inspecting %d-bit words (build has %d-bit words)", codec.WordBits(), vm.WordBits)
	return nil
}

// applyFlags overrides cfg with the persistent flags set on the command line.
func applyFlags(flags *pflag.FlagSet, cfg *config.Config) error {
	var err error
	if flags.Changed("width") {
		if cfg.Codec.Width, err = flags.GetInt("width"); err != nil {
			return fmt.Errorf("--width: %w", err)
		}
	}
	if flags.Changed("color") {
		if cfg.Output.Color, err = flags.GetString("color"); err != nil {
			return fmt.Errorf("--color: %w", err)
		}
	}
	if flags.Changed("format") {
		if cfg.Output.Format, err = flags.GetString("format"); err != nil {
			return fmt.Errorf("--format: %w", err)
		}
	}
	if flags.Changed("verbose") {
		n, err := flags.GetCount("verbose")
		if err != nil {
			return fmt.Errorf("--verbose: %w", err)
		}
		cfg.Log.Verbosity += n
	}
	return nil
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, err := cmd.Root().PersistentFlags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("--config: %w", err)
	}
	if path != "" {
		return config.LoadFile(path)
	}
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("cannot determine working directory: %w", err)
	}
	return config.FindAndLoad(wd)
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

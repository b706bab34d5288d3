package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/Azhovan/kvconf"
)

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	file         string
	allowKeys    []string
	allowOptions []string
	verbose      bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "kvconf",
		Short: "Query key-value configuration from arguments and files",
		Long: `kvconf loads key=value arguments and an optional configuration file,
then prints values, lists, sequences or the whole store.

Entries are given after the subcommand's own arguments. Bare options
(--name) must follow a "--" separator:

  kvconf --file app.conf get port port=8080 -- --debug

The file is loaded after the arguments and overrides them.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.file, "file", "f", "", "configuration file to load after the arguments")
	flags.StringSliceVar(&opts.allowKeys, "allow", nil, "allowed keys; enables key checking")
	flags.StringSliceVar(&opts.allowOptions, "allow-option", nil, "allowed options; enables key checking")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log loaded entries to stderr")

	rootCmd.AddCommand(
		newGetCmd(opts),
		newSeqCmd(opts),
		newListCmd(opts),
		newDumpCmd(opts),
	)
	return rootCmd
}

// Execute runs the kvconf command line.
func Execute() error {
	return newRootCmd().Execute()
}

// load builds a Config from entries and the --file flag.
func (o *rootOptions) load(cmd *cobra.Command, entries []string) (*kvconf.Config, error) {
	var cfgOpts []kvconf.Option
	if o.verbose {
		h := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug})
		cfgOpts = append(cfgOpts, kvconf.WithLogHandler(h))
	}

	cfg := kvconf.New(cfgOpts...)
	if len(o.allowKeys) > 0 {
		cfg.AllowKey(o.allowKeys...)
	}
	if len(o.allowOptions) > 0 {
		cfg.AllowOption(o.allowOptions...)
	}

	// InitFromArgs expects the program name first.
	if err := cfg.InitFromArgs(append([]string{cmd.Root().Name()}, entries...)); err != nil {
		return nil, err
	}
	if o.file != "" {
		if err := cfg.InitFromFile(o.file); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

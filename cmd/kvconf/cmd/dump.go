package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Azhovan/kvconf"
)

func newDumpCmd(opts *rootOptions) *cobra.Command {
	var (
		format  string
		sources bool
	)

	dumpCmd := &cobra.Command{
		Use:   "dump [key=value ...] [-- --option ...]",
		Short: "Print every entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load(cmd, args)
			if err != nil {
				return err
			}

			var dumpOpts []kvconf.DumpOption
			switch format {
			case "text":
			case "json":
				dumpOpts = append(dumpOpts, kvconf.AsJSON())
			case "yaml":
				dumpOpts = append(dumpOpts, kvconf.AsYAML())
			case "toml":
				dumpOpts = append(dumpOpts, kvconf.AsTOML())
			default:
				return fmt.Errorf("unknown format %q (want text, json, yaml or toml)", format)
			}
			if sources {
				dumpOpts = append(dumpOpts, kvconf.WithSources())
			}

			return cfg.Dump(cmd.OutOrStdout(), dumpOpts...)
		},
	}

	dumpCmd.Flags().StringVar(&format, "format", "text", "output format: text, json, yaml or toml")
	dumpCmd.Flags().BoolVar(&sources, "sources", false, "show where each entry came from")
	return dumpCmd
}

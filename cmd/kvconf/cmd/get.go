package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newGetCmd(opts *rootOptions) *cobra.Command {
	var typ string

	getCmd := &cobra.Command{
		Use:   "get KEY [key=value ...] [-- --option ...]",
		Short: "Print a single value",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load(cmd, args[1:])
			if err != nil {
				return err
			}

			key := args[0]
			var out string
			switch typ {
			case "string":
				out, err = cfg.GetString(key)
			case "uint":
				var v uint64
				v, err = cfg.GetUInt(key)
				out = strconv.FormatUint(v, 10)
			case "double":
				var v float64
				v, err = cfg.GetDouble(key)
				out = strconv.FormatFloat(v, 'g', -1, 64)
			case "bool":
				var v bool
				v, err = cfg.GetBool(key)
				out = strconv.FormatBool(v)
			default:
				return fmt.Errorf("unknown type %q (want string, uint, double or bool)", typ)
			}
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	getCmd.Flags().StringVarP(&typ, "type", "t", "string", "value type: string, uint, double or bool")
	return getCmd
}

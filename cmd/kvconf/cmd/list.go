package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newListCmd(opts *rootOptions) *cobra.Command {
	var typ string

	listCmd := &cobra.Command{
		Use:   "list KEY [key=value ...] [-- --option ...]",
		Short: "Print the elements of a {a, b, ...} list, one per line",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load(cmd, args[1:])
			if err != nil {
				return err
			}

			key := args[0]
			var elems []string
			var found bool
			switch typ {
			case "string":
				elems, found, err = cfg.ParseListString(key)
			case "int":
				var list []int64
				list, found, err = cfg.ParseListInt(key)
				for _, v := range list {
					elems = append(elems, strconv.FormatInt(v, 10))
				}
			case "double":
				var list []float64
				list, found, err = cfg.ParseListDouble(key)
				for _, v := range list {
					elems = append(elems, strconv.FormatFloat(v, 'g', -1, 64))
				}
			default:
				return fmt.Errorf("unknown type %q (want string, int or double)", typ)
			}
			if err != nil {
				return err
			}
			if !found {
				return fmt.Errorf("value of %q is not a list", key)
			}

			return printLines(cmd, elems)
		},
	}

	listCmd.Flags().StringVarP(&typ, "type", "t", "string", "element type: string, int or double")
	return listCmd
}

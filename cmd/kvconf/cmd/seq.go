package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newSeqCmd(opts *rootOptions) *cobra.Command {
	var typ string

	seqCmd := &cobra.Command{
		Use:   "seq KEY [key=value ...] [-- --option ...]",
		Short: "Expand a sequence value, one element per line",
		Long: `Expand a sequence value, one element per line.

Linear sequences are start:increment:end ("1:1:5", "5:-1:1").
Exponential sequences, double only, are start*multiplier:end ("2*2:20").`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load(cmd, args[1:])
			if err != nil {
				return err
			}

			key := args[0]
			var elems []string
			var found bool
			switch typ {
			case "uint":
				var seq []uint64
				seq, found, err = cfg.ParseSequenceUInt(key)
				for _, v := range seq {
					elems = append(elems, strconv.FormatUint(v, 10))
				}
			case "double":
				var seq []float64
				seq, found, err = cfg.ParseSequenceDouble(key)
				for _, v := range seq {
					elems = append(elems, strconv.FormatFloat(v, 'g', -1, 64))
				}
			default:
				return fmt.Errorf("unknown type %q (want uint or double)", typ)
			}
			if err != nil {
				return err
			}
			if !found {
				return fmt.Errorf("value of %q is not a valid %s sequence", key, typ)
			}

			return printLines(cmd, elems)
		},
	}

	seqCmd.Flags().StringVarP(&typ, "type", "t", "uint", "element type: uint or double")
	return seqCmd
}

func printLines(cmd *cobra.Command, lines []string) error {
	w := cmd.OutOrStdout()
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

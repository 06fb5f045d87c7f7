package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/HuygensING/alexandria-markup-sub001/converters"
)

func newShowCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show FILE",
		Short: "Print a tree with its preorder positions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := a.load(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch f := a.v.GetString(showFormatKey); f {
			case "outline":
				_, err = fmt.Fprint(out, t)
			case "bracket":
				_, err = fmt.Fprintln(out, converters.FormatBracket(t))
			case "yaml":
				err = converters.ToYAML(out, t)
			default:
				err = fmt.Errorf("unknown show format %q", f)
			}

			return err
		},
	}

	cmd.Flags().StringP(formatFlagName, "f", defaultShowFormat, "output format: outline, bracket or yaml")
	bindFlag(a.v, cmd.Flags().Lookup(formatFlagName), showFormatKey)

	return cmd
}

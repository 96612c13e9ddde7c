package msgkit

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func newKindsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: MsgKindsShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.out.Colored() {
				pterm.EnableStyling()
			} else {
				pterm.DisableStyling()
			}

			table := a.pipe.Kinds()
			data := pterm.TableData{{"Kind", "Prefix", "Color", "Stream", "Location", "Wait", "Shown"}}
			for _, k := range table.Kinds() {
				p := table.Lookup(k)
				data = append(data, []string{
					k.String(),
					p.Prefix,
					p.Color,
					string(p.Stream),
					fmt.Sprint(p.Location),
					p.Wait.String(),
					fmt.Sprint(a.pipe.Visible(k)),
				})
			}

			out, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
}

package shell

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
)

const nothingFound = "Nothing found"

// reformat turns every comma of a typed argument into a space, so that
// "James,Joyce" names the author "James Joyce".
func reformat(arg string) string {
	return strings.ReplaceAll(arg, ",", " ")
}

// parseID accepts decimal digits only. Leading zeros are dropped before the
// conversion, which would otherwise read "010" as octal.
func parseID(arg string) (uint, error) {
	if arg == "" || strings.Trim(arg, "0123456789") != "" {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	digits := strings.TrimLeft(arg, "0")
	if digits == "" {
		digits = "0"
	}

	id, err := cast.ToUintE(digits)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return id, nil
}

// renderList joins the renderings of items with blank lines.
func renderList[T fmt.Stringer](items []T) string {
	if len(items) == 0 {
		return nothingFound
	}
	return strings.Join(lo.Map(items, func(item T, _ int) string {
		return item.String()
	}), "\n\n")
}

func respond(cmd *cobra.Command, format string, a ...any) error {
	_, err := fmt.Fprintf(cmd.OutOrStdout(), format+"\n", a...)
	return err
}

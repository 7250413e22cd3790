package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	rct "github.com/svalouch/go-rctclient"
)

var searchCmd = &cobra.Command{
	Use:   "search [substring]",
	Short: "Browse the object catalog",
	Long: `List catalog objects whose name or description contains the given
substring. Without an argument, the whole built-in catalog is listed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	needle := ""
	if len(args) == 1 {
		needle = strings.ToLower(args[0])
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"OID", "Name", "Type", "Unit", "Description"})
	table.SetBorder(false)

	for _, entry := range rct.DefaultRegistry().All() {
		if needle != "" &&
			!strings.Contains(strings.ToLower(entry.Name), needle) &&
			!strings.Contains(strings.ToLower(entry.Description), needle) {
			continue
		}
		table.Append([]string{
			fmt.Sprintf("0x%08X", entry.ObjectID),
			entry.Name,
			entry.ResponseDataType.String(),
			entry.Unit,
			entry.Description,
		})
	}
	table.Render()
	return nil
}

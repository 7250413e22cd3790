package commands

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	rct "github.com/svalouch/go-rctclient"
)

var readCmd = &cobra.Command{
	Use:   "read <name>...",
	Short: "Read objects from the device",
	Long: `Read one or more objects by name and print their decoded values.

Examples:
  rctclient --host 192.168.1.30 read battery.soc
  rctclient --host 192.168.1.30 read g_sync.p_ac_grid_sum_lp g_sync.p_acc_lp`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRead,
}

func runRead(cmd *cobra.Command, args []string) error {
	client, err := connect()
	if err != nil {
		return err
	}
	defer client.Close()

	registry := rct.DefaultRegistry()
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Name", "OID", "Type", "Value", "Unit"})
	table.SetBorder(false)

	for _, name := range args {
		entry, err := registry.ByName(name)
		if err != nil {
			return err
		}
		value, err := client.ReadValue(name)
		if err != nil {
			return fmt.Errorf("read %s: %w", name, err)
		}
		table.Append([]string{
			entry.Name,
			fmt.Sprintf("0x%08X", entry.ObjectID),
			entry.ResponseDataType.String(),
			formatValue(entry, value),
			entry.Unit,
		})
	}
	table.Render()
	return nil
}

func formatValue(entry *rct.ObjectInfo, value interface{}) string {
	switch v := value.(type) {
	case uint8:
		if entry.ResponseDataType == rct.DataTypeEnum {
			return entry.EnumLabel(v)
		}
		return fmt.Sprintf("%d", v)
	case float32:
		return fmt.Sprintf("%g", v)
	case *rct.TimeSeriesData:
		return fmt.Sprintf("%d samples", len(v.Entries))
	case *rct.EventTableData:
		return fmt.Sprintf("%d events", len(v.Events))
	default:
		return fmt.Sprintf("%v", v)
	}
}

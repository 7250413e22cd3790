package commands

import (
	"github.com/spf13/cobra"

	rct "github.com/svalouch/go-rctclient"
)

var simulatorListen string

var simulatorCmd = &cobra.Command{
	Use:   "simulator",
	Short: "Run a device simulator",
	Long: `Serve the protocol on a local port, answering reads from the built-in
catalog's simulation values. Useful for developing against no hardware:

  rctclient simulator --listen :8899
  RCTCLIENT_HOST=127.0.0.1 rctclient read battery.soc`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return rct.NewSimulator(simulatorListen, nil).Serve()
	},
}

func init() {
	simulatorCmd.Flags().StringVar(&simulatorListen, "listen", ":"+rct.DefaultPort, "bind address")
}

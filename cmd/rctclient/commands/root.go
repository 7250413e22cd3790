// Package commands implements the rctclient CLI.
package commands

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	rct "github.com/svalouch/go-rctclient"
)

// Version information injected at build time.
var (
	Version = "dev"
	Commit  = "none"
)

var rootCmd = &cobra.Command{
	Use:   "rctclient",
	Short: "Talk to RCT Power inverters",
	Long: `rctclient reads and writes objects on RCT Power solar inverters over
their TCP serial protocol, and ships a simulator for development without a
device.

The global flags can be set through RCTCLIENT_* environment variables, e.g.
RCTCLIENT_HOST=192.168.1.30.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		lg := logrus.New()
		if viper.GetBool("verbose") {
			lg.SetLevel(logrus.DebugLevel)
		}
		rct.SetLogger(lg)
	},
}

// Execute runs the command tree. Called once from main.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Println("Error:", err)
	}
	return err
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("host", "", "device host name or address")
	pf.String("port", rct.DefaultPort, "device TCP port")
	pf.Duration("timeout", rct.DefaultReadTimeout, "per-request timeout")
	pf.BoolP("verbose", "v", false, "enable debug logging")

	viper.SetEnvPrefix("RCTCLIENT")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	for _, name := range []string{"host", "port", "timeout", "verbose"} {
		if err := viper.BindPFlag(name, pf.Lookup(name)); err != nil {
			panic(err)
		}
	}

	rootCmd.AddCommand(readCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(simulatorCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// connect builds a client from the global flags and connects it.
func connect() (*rct.Client, error) {
	host := viper.GetString("host")
	if host == "" {
		return nil, fmt.Errorf("no device given, set --host or RCTCLIENT_HOST")
	}
	opt := rct.NewClientOption(host + ":" + viper.GetString("port")).
		SetReadTimeout(viper.GetDuration("timeout"))
	client := rct.NewClient(opt)
	if err := client.Connect(); err != nil {
		return nil, err
	}
	return client, nil
}

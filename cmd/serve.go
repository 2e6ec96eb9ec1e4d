package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tutils/lcg/httpsrv"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the generator HTTP service",
	Long: `Serve generator sessions over HTTP and websocket, For example:
  lcg serve --listen=0.0.0.0:8080
  curl -XPOST localhost:8080/api/sessions -d '{"seed":42}'`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return httpsrv.StartServer(viper.GetString("listen"))
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	flags := serveCmd.Flags()
	flags.StringP("listen", "l", "0.0.0.0:8080", "server listen address")
	viper.BindPFlag("listen", flags.Lookup("listen"))
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/depothq/depot/pkg/config"
	"github.com/depothq/depot/pkg/server/middleware"
)

// tokenGenerateCmd represents the token generate command
var tokenGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Mint an admin session token",
	Long: `Mint an admin session token signed with DEPOT_SESSION_KEY.

The token lifetime comes from the session_token_ttl configuration
attribute.

Example:
  depotctl token generate --username admin`,
	Run: func(cmd *cobra.Command, args []string) {
		username, _ := cmd.Flags().GetString("username")

		if _, ok := os.LookupEnv(middleware.SessionKeyEnv); !ok {
			fmt.Fprintf(os.Stderr, "%s environment variable is required\n", middleware.SessionKeyEnv)
			os.Exit(1)
		}

		auth := middleware.NewAdminAuthenticator(nil)
		token, err := auth.IssueToken(username, true, config.Get().SessionTTL())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to mint token: %v\n", err)
			os.Exit(1)
		}

		fmt.Println(token)
	},
}

func init() {
	tokenCmd.AddCommand(tokenGenerateCmd)
	tokenGenerateCmd.Flags().StringP("username", "u", "admin", "Username embedded in the token")
}

package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

// hashpwCmd generates the bcrypt hash for ADMIN_PASSWORD_HASH
var hashpwCmd = &cobra.Command{
	Use:   "hashpw <password>",
	Short: "Hash an admin password",
	Long: `Generate the bcrypt hash to configure as ADMIN_PASSWORD_HASH.

Examples:
  shelfctl hashpw 's3cret'`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runHashpw(args[0])
	},
}

func init() {
	rootCmd.AddCommand(hashpwCmd)
}

func runHashpw(password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	fmt.Println(string(hash))
	return nil
}

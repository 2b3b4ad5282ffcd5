package cmd

import (
	"fmt"

	"github.com/easyhired/resumer/pkg/auth"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var hashpwCmd = &cobra.Command{
	Use:   "hashpw <password>",
	Short: "Generate a bcrypt hash for the users file",
	Long: `Generate a bcrypt password hash for an entry in the users file.

Example:
  resumer hashpw s3cret`,
	Args: cobra.ExactArgs(1),
	RunE: runHashpw,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(hashpwCmd)
}

func runHashpw(cmd *cobra.Command, args []string) (err error) {
	var hash string
	hash, err = auth.HashPassword(args[0])
	if err != nil {
		err = errors.Wrap(err, "failed to hash password")
		return err
	}

	fmt.Println(hash)
	return err
}

package main

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"glassjoke/internal/service"

	"github.com/spf13/cobra"
)

var hashSecretCmd = &cobra.Command{
	Use:   "hash-secret [secret]",
	Short: "Print the bcrypt hash of an operator secret",
	Long: `Print the bcrypt hash to put in auth.secret_hash. The secret is read from
the argument or, when omitted, from the first line of stdin.`,
	Args: cobra.MaximumNArgs(1),
	// hashing needs no config
	PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
	RunE:              runHashSecret,
}

func init() {
	rootCmd.AddCommand(hashSecretCmd)
}

func runHashSecret(cmd *cobra.Command, args []string) error {
	var secret string
	if len(args) == 1 {
		secret = args[0]
	} else {
		line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		if err != nil && line == "" {
			return errors.New("no secret given on the command line or stdin")
		}
		secret = strings.TrimRight(line, "\r\n")
	}

	hash, err := service.HashSecret(secret)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), hash)
	return err
}

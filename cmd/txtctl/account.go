package main

import (
	"bufio"
	"fmt"
	"strings"
	"syscall"

	"txtchange/internal/errors"
	"txtchange/internal/usecase"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newAccountCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Manage marketplace accounts",
	}
	cmd.AddCommand(newAccountCreateCommand())

	return cmd
}

func newAccountCreateCommand() *cobra.Command {
	var input usecase.RegisterInput

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Register an account and send its verification email",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			password, err := readPassword(cmd)
			if err != nil {
				return err
			}
			input.Password = password

			var accounts usecase.AccountUsecase

			return withApp(cmd.Context(), func() error {
				session, err := accounts.Register(cmd.Context(), input)
				if err != nil {
					return err
				}
				printf(cmd, "Registered %s (%s); verification email sent\n", session.Identity.Email, session.Identity.UserID)

				return nil
			}, &accounts)
		},
	}
	cmd.Flags().StringVar(&input.Email, "email", "", "account email")
	cmd.Flags().StringVar(&input.FirstName, "first-name", "", "first name")
	cmd.Flags().StringVar(&input.LastName, "last-name", "", "last name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("first-name")
	_ = cmd.MarkFlagRequired("last-name")

	return cmd
}

// readPassword masks input on a terminal and reads one line otherwise.
func readPassword(cmd *cobra.Command) (string, error) {
	if !term.IsTerminal(int(syscall.Stdin)) {
		line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		if err != nil && line == "" {
			return "", errors.Wrap(err, "read password")
		}

		return strings.TrimSpace(line), nil
	}

	fmt.Fprint(cmd.ErrOrStderr(), "Password: ")
	bytePassword, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(cmd.ErrOrStderr())
	if err != nil {
		return "", errors.Wrap(err, "read password")
	}

	return strings.TrimSpace(string(bytePassword)), nil
}

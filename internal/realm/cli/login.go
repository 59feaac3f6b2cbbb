package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/karnadev/dragonsrealm/internal/realm/store"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = func() ([]byte, error) {
	return term.ReadPassword(int(os.Stdin.Fd()))
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to the realm server",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		fmt.Fprint(cmd.OutOrStdout(), "Username: ")
		reader := bufio.NewReader(cmd.InOrStdin())
		username, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		username = strings.TrimSpace(username)

		fmt.Fprint(cmd.OutOrStdout(), "Password: ")
		password, err := readPassword()
		fmt.Fprintln(cmd.OutOrStdout())
		if err != nil {
			return err
		}

		backend, closeFn, err := openBackend(ctx)
		if err != nil {
			return err
		}
		defer closeFn()

		client := newAPIClient(ctx, backend)
		token, err := client.Login(ctx, username, string(password))
		if err != nil {
			return err
		}

		if err := store.SaveValue(ctx, backend, store.SlotToken, token); err != nil {
			return err
		}
		if err := store.SaveValue(ctx, backend, store.SlotLoggedIn, true); err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Welcome to the realm,", username)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out and forget the saved token",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		backend, closeFn, err := openBackend(ctx)
		if err != nil {
			return err
		}
		defer closeFn()

		if err := store.SaveValue(ctx, backend, store.SlotLoggedIn, false); err != nil {
			return err
		}
		if err := backend.Delete(ctx, store.SlotToken); err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
}

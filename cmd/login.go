package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jfmyers9/riptide/internal/secrets"
)

var loginToken string

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate with Tidal",
	Long: `Authenticate with Tidal and store the session in the OS keyring.

You will be prompted for your application token, username, and password.
The password is only used to obtain a session and is never stored; the
resulting session id is kept in the system keyring.`,
	RunE: runLogin,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove the stored Tidal session",
	RunE: func(cmd *cobra.Command, args []string) error {
		manager, _, err := newManager()
		if err != nil {
			return err
		}
		if err := manager.Logout(); err != nil {
			return fmt.Errorf("failed to remove session: %w", err)
		}
		fmt.Println("Logged out.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)

	loginCmd.Flags().StringVarP(&loginToken, "token", "t", "", "Application token (prompted if not set)")
}

func runLogin(cmd *cobra.Command, args []string) error {
	reader := bufio.NewReader(os.Stdin)

	fmt.Println("Tidal Authentication")
	fmt.Println("====================")
	fmt.Println()

	if secrets.HasSession() {
		fmt.Print("A session is already stored. Replace it? [y/N]: ")
		response, err := reader.ReadString('\n')
		if err != nil {
			response = "n"
		}
		response = strings.TrimSpace(strings.ToLower(response))
		if response != "y" && response != "yes" {
			fmt.Println("Keeping the existing session.")
			return nil
		}
	}

	token := loginToken
	if token == "" {
		fmt.Print("Enter your application token: ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("failed to read token: %w", err)
		}
		token = strings.TrimSpace(line)
	}

	fmt.Print("Enter your Tidal username: ")
	username, err := reader.ReadString('\n')
	if err != nil {
		return fmt.Errorf("failed to read username: %w", err)
	}
	username = strings.TrimSpace(username)

	fmt.Print("Enter your Tidal password: ")
	password, err := reader.ReadString('\n')
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}
	password = strings.TrimSpace(password)

	if token == "" || username == "" || password == "" {
		return fmt.Errorf("token, username, and password are required")
	}

	manager, _, err := newManager()
	if err != nil {
		return err
	}

	fmt.Println("\nLogging in...")
	session, err := manager.Login(cmd.Context(), token, username, password)
	if err != nil {
		return err
	}

	fmt.Printf("\n✓ Logged in as user %d (%s)\n", session.UserID, session.CountryCode)
	fmt.Println("✓ Session saved to the system keyring")

	return nil
}

package cli

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"os"

	"golang.org/x/term"
)

// errBadPassword aborts a gated command without leaking which check
// failed.
var errBadPassword = errors.New("incorrect admin password")

// requireAdmin prompts for the admin password when one is configured.
// An empty configured password disables the gate.
func requireAdmin() error {
	if !adminGateEnabled() {
		return nil
	}

	fmt.Fprint(os.Stderr, "Admin password: ")
	entered, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return fmt.Errorf("reading password: %w", err)
	}

	return verifyAdminPassword(entered)
}

// adminGateEnabled reports whether a password is configured.
func adminGateEnabled() bool {
	return appConfig != nil && appConfig.AdminPassword != ""
}

// verifyAdminPassword compares the entered password in constant time.
func verifyAdminPassword(entered []byte) error {
	if subtle.ConstantTimeCompare(entered, []byte(appConfig.AdminPassword)) != 1 {
		return errBadPassword
	}
	return nil
}

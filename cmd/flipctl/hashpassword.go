package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/flipword/api/internal/auth"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newHashPasswordCommand() *cobra.Command {
	var cost int

	command := &cobra.Command{
		Use:   "hash-password",
		Short: "Print a bcrypt hash for ADMIN_PASSWORD_HASH",
		Long: "Reads the password from the terminal without echo, asking twice, " +
			"or one line from stdin when it is piped.",
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := readPassword(os.Stdin, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			hash, err := auth.HashPassword(password, cost)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
	}

	command.Flags().IntVar(&cost, "cost", auth.DefaultHashCost, "bcrypt cost")
	return command
}

func readPassword(stdin *os.File, prompt io.Writer) (string, error) {
	fd := int(stdin.Fd())
	if !term.IsTerminal(fd) {
		return readPasswordLine(stdin)
	}

	fmt.Fprint(prompt, "Password: ")
	first, err := term.ReadPassword(fd)
	fmt.Fprintln(prompt)
	if err != nil {
		return "", fmt.Errorf("reading password: %w", err)
	}

	fmt.Fprint(prompt, "Confirm password: ")
	second, err := term.ReadPassword(fd)
	fmt.Fprintln(prompt)
	if err != nil {
		return "", fmt.Errorf("reading password confirmation: %w", err)
	}

	if string(first) != string(second) {
		return "", errors.New("passwords do not match")
	}
	if len(first) == 0 {
		return "", errors.New("password is empty")
	}
	return string(first), nil
}

// readPasswordLine reads one line from a pipe.
func readPasswordLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading password: %w", err)
	}
	password := strings.TrimRight(line, "\r\n")
	if password == "" {
		return "", errors.New("password is empty")
	}
	return password, nil
}

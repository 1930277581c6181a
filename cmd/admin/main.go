package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"

	"github.com/cZR2911/jilaoda-poker/internal/config"
	"github.com/cZR2911/jilaoda-poker/pkg/account"
)

var command = flag.String("c", "user", "specifies the command (user, reset-password)")

func main() {
	flag.Parse()

	switch *command {
	case "user":
		username := getUsername()
		if username == "" {
			os.Exit(1)
		}

		password := getPassword()
		if password == "" {
			os.Exit(1)
		}

		player, err := account.CreatePlayer(context.Background(), username, password, config.Instance().StartingChips)
		if err != nil {
			logrus.WithError(err).Fatal("could not create player")
		}

		fmt.Printf("Created user %d\n", player.ID)

		promote, err := getInput("Make admin (Y/n)")
		if err != nil {
			logrus.WithError(err).Fatal("could not get answer")
		}

		if promote == "" || strings.ToLower(promote)[0] == 'y' {
			if err := player.SetIsSiteAdmin(context.Background(), true); err != nil {
				logrus.WithError(err).Fatal("could not promote user to admin")
			}

			fmt.Printf("User promoted to admin\n")
		}

	case "reset-password":
		username := getUsername()
		if username == "" {
			os.Exit(1)
		}

		password := getPassword()
		if password == "" {
			os.Exit(1)
		}

		if err := account.ResetPassword(context.Background(), username, password); err != nil {
			logrus.WithError(err).Fatal("could not reset password")
		}

		fmt.Printf("Password updated\n")

	default:
		logrus.Fatalf("unknown command: %s", *command)
	}
}

func getPassword() string {
	for {
		fmt.Print("Password: ")
		pwBytes, err := term.ReadPassword(0)
		if err != nil {
			continue
		}
		fmt.Println("")

		password := strings.TrimRight(string(pwBytes), "\r\n")

		if password == "" {
			return ""
		}

		if len(password) < 6 {
			_, _ = fmt.Fprintf(os.Stderr, "password must be 6 or more characters\n")
			continue
		}

		return password
	}
}

func getUsername() string {
	for {
		fmt.Print("Username: ")
		reader := bufio.NewReader(os.Stdin)
		str, err := reader.ReadString('\n')
		if err != nil {
			logrus.WithError(err).Warn("could not read username")
		}

		str = strings.TrimRight(str, "\r\n")

		if str == "" {
			return ""
		}

		if strings.ContainsAny(str, " \t") {
			_, _ = fmt.Fprintln(os.Stderr, "username must not contain whitespace")
			continue
		}

		return str
	}
}

func getInput(question string) (string, error) {
	fmt.Printf("%s: ", question)
	reader := bufio.NewReader(os.Stdin)
	str, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	str = strings.TrimRight(str, "\r\n")

	return str, nil
}

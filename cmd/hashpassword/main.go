// Command hashpassword prints a bcrypt hash suitable for seeding user rows.
//
//	hashpassword -password 'Admin123!'
//	echo 'Admin123!' | hashpassword
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/CodingToShare/Prueba-Tecnica---Finanzauto/internal/auth"
	"github.com/sirupsen/logrus"
)

func main() {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)

	password := flag.String("password", "", "plaintext password (read from stdin when empty)")
	cost := flag.Int("cost", auth.DefaultCost, "bcrypt work factor")
	verify := flag.String("verify", "", "existing hash to check the password against instead of hashing")
	flag.Parse()

	pw := *password
	if pw == "" {
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil && line == "" {
			logger.Fatalf("Failed to read password from stdin: %v", err)
		}
		pw = strings.TrimRight(line, "\r\n")
	}
	if pw == "" {
		logger.Fatal("Password cannot be empty")
	}

	hasher := auth.NewPasswordHasher(*cost)
	if *verify != "" {
		ok, err := hasher.Verify(*verify, pw)
		if err != nil {
			logger.Fatalf("Failed to verify password: %v", err)
		}
		fmt.Println(ok)
		if !ok {
			os.Exit(1)
		}
		return
	}

	hash, err := hasher.Hash(pw)
	if err != nil {
		logger.Fatalf("Failed to hash password: %v", err)
	}
	fmt.Println(hash)
}

package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/MKhiriev/node-reporter/internal/app"
	"github.com/MKhiriev/node-reporter/internal/crypto"
	"github.com/caarlos0/env/v11"
	"github.com/natefinch/atomic"
	"github.com/spf13/pflag"
)

var (
	errUsage      = errors.New("usage: keyvault <generate|encrypt|decrypt> [flags]")
	errFileExists = errors.New("key file already exists (use --force)")
)

// passwords supplies the key password. unlock is used to read an existing
// key file, create to protect a new one.
type passwords struct {
	unlock app.PasswordSource
	create app.PasswordSource
}

type passwordEnv struct {
	Password string `env:"KEY_PASSWORD"`
}

func newCLIPasswords() passwords {
	p, err := env.ParseAs[passwordEnv]()
	if err == nil && p.Password != "" {
		return passwords{
			unlock: app.StaticPassword(p.Password),
			create: app.StaticPassword(p.Password),
		}
	}
	return passwords{
		unlock: app.TerminalPassword("Key password: "),
		create: app.ConfirmedTerminalPassword("New key password: "),
	}
}

func run(args []string, stdout io.Writer, pw passwords) error {
	if len(args) == 0 {
		return errUsage
	}

	vault := crypto.NewKeyVault()
	switch args[0] {
	case "generate":
		return runGenerate(args[1:], stdout, vault, pw)
	case "encrypt":
		return runEncrypt(args[1:], stdout, vault, pw)
	case "decrypt":
		return runDecrypt(args[1:], stdout, vault, pw)
	default:
		return fmt.Errorf("unknown command %q: %w", args[0], errUsage)
	}
}

func runGenerate(args []string, stdout io.Writer, vault crypto.KeyVault, pw passwords) error {
	flags := pflag.NewFlagSet("generate", pflag.ContinueOnError)
	out := flags.StringP("out", "o", "", "path of the encrypted key file to create")
	force := flags.Bool("force", false, "overwrite an existing key file")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if *out == "" {
		return errors.New("--out is required")
	}

	identity, material, err := crypto.GenerateIdentity()
	if err != nil {
		return err
	}
	defer identity.Close()
	defer crypto.Wipe(material)

	if err = writeKeyFile(*out, *force, material, vault, pw.create); err != nil {
		return err
	}

	fmt.Fprintf(stdout, "node ID: %s\n", identity.NodeID())
	return nil
}

func runEncrypt(args []string, stdout io.Writer, vault crypto.KeyVault, pw passwords) error {
	flags := pflag.NewFlagSet("encrypt", pflag.ContinueOnError)
	in := flags.StringP("in", "i", "", "file holding the hex-encoded seed")
	out := flags.StringP("out", "o", "", "path of the encrypted key file to create")
	force := flags.Bool("force", false, "overwrite an existing key file")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if *in == "" || *out == "" {
		return errors.New("--in and --out are required")
	}

	material, err := os.ReadFile(*in)
	if err != nil {
		return fmt.Errorf("read seed: %w", err)
	}
	defer crypto.Wipe(material)

	identity, err := crypto.ParseIdentity(material)
	if err != nil {
		return err
	}
	defer identity.Close()

	if err = writeKeyFile(*out, *force, bytes.TrimSpace(material), vault, pw.create); err != nil {
		return err
	}

	fmt.Fprintf(stdout, "node ID: %s\n", identity.NodeID())
	return nil
}

func runDecrypt(args []string, stdout io.Writer, vault crypto.KeyVault, pw passwords) error {
	flags := pflag.NewFlagSet("decrypt", pflag.ContinueOnError)
	key := flags.StringP("key", "k", "", "path of the encrypted key file")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if *key == "" {
		return errors.New("--key is required")
	}

	identity, err := app.UnlockIdentity(*key, vault, pw.unlock)
	if err != nil {
		return err
	}
	defer identity.Close()

	fmt.Fprintf(stdout, "node ID: %s\n", identity.NodeID())
	return nil
}

func writeKeyFile(path string, force bool, material []byte, vault crypto.KeyVault, password app.PasswordSource) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s: %w", path, errFileExists)
		}
	}

	pass, err := password()
	if err != nil {
		return err
	}
	if pass == "" {
		return app.ErrNoPassword
	}

	blob, err := vault.Encrypt(pass, material)
	if err != nil {
		return err
	}

	if err = atomic.WriteFile(path, strings.NewReader(blob+"\n")); err != nil {
		return fmt.Errorf("write key file: %w", err)
	}
	return os.Chmod(path, 0o600)
}

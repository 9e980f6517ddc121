// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// keyvault manages the encrypted node key file read by node-reporter.
//
//	keyvault generate --out node.key          create a new identity
//	keyvault encrypt  --in seed.hex --out node.key
//	keyvault decrypt  --key node.key          verify the password, print the node ID
//
// The password comes from KEY_PASSWORD or an interactive prompt.
package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/node-reporter/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
		return
	}

	if err := run(os.Args[1:], os.Stdout, newCLIPasswords()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

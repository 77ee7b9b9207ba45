package main

import (
	"github.com/spf13/cobra"

	"github.com/mifos/vnext-auth/internal/auth"
)

// Key and certificate flags shared by sign and verify.
var (
	keyPath          string
	intermediatePath string
	clientCertPath   string
	algorithmName    string
)

// addMaterialFlags registers the key/certificate flags on cmd.
func addMaterialFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&keyPath, "key", "", "Client private key (PKCS#8 PEM)")
	cmd.Flags().StringVar(&intermediatePath, "intermediate", "", "Hub intermediate CA certificate")
	cmd.Flags().StringVar(&clientCertPath, "cert", "", "Client certificate signed by the hub")
	cmd.Flags().StringVar(&algorithmName, "algorithm", "", "Signature algorithm name or OID (default from config)")
}

// materialFiles merges the flag values over the configured file locations.
func materialFiles() auth.Config {
	files := cfg.AuthFiles()
	if keyPath != "" {
		files.PrivateKey = keyPath
	}
	if intermediatePath != "" {
		files.IntermediateCertificate = intermediatePath
	}
	if clientCertPath != "" {
		files.ClientCertificate = clientCertPath
	}
	return files
}

// loadAuthenticator builds an authenticator from the merged configuration.
func loadAuthenticator() (*auth.Authenticator, error) {
	alg := cfg.Auth.Algorithm
	if algorithmName != "" {
		alg = algorithmName
	}
	return auth.NewFromFiles(materialFiles(), auth.Options{
		Algorithm: alg,
		Logger:    logger,
	})
}

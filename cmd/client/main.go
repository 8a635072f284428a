// Command client is the vault-side CLI: all key handling and cryptography
// happen here, the server only ever sees ciphertext.
//
// Usage:
//
//	client keygen
//	client [-base-url URL] upload -file PATH [-type MIME]
//	client [-base-url URL] download -id ID [-out PATH]
//
// The master key is read from the MASTER_KEY environment variable as
// standard Base64 of 32 raw bytes. It is never written to configuration
// files or logs.
package main

import (
	"context"
	"encoding/base64"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-attach-keeper/internal/adapter"
	"github.com/MKhiriev/go-attach-keeper/internal/config"
	"github.com/MKhiriev/go-attach-keeper/internal/crypto"
	"github.com/MKhiriev/go-attach-keeper/internal/logger"
	"github.com/MKhiriev/go-attach-keeper/internal/service"
	"github.com/MKhiriev/go-attach-keeper/models"
)

// masterKeyEnv names the environment variable holding the Base64 master key.
const masterKeyEnv = "MASTER_KEY"

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("attach-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	args := flag.Args()
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "usage: client [flags] keygen|upload|download ...")
		os.Exit(2)
	}

	transport := adapter.NewHTTPAttachmentTransport(adapter.HTTPTransportConfig{
		BaseURL: cfg.Adapter.BaseURL,
		Timeout: cfg.Adapter.RequestTimeout,
	})
	attachments := service.NewAttachmentService(
		crypto.NewKeyChainService(),
		crypto.NewChecksumService(),
		transport,
		log,
	)

	switch args[0] {
	case "keygen":
		err = runKeygen()
	case "upload":
		err = runUpload(attachments, args[1:])
	case "download":
		err = runDownload(attachments, args[1:])
	default:
		err = fmt.Errorf("unknown command %q", args[0])
	}
	if err != nil {
		log.Error().Err(err).Str("command", args[0]).Msg("command failed")
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// runKeygen prints a fresh Base64 master key to stdout. Nothing is stored;
// losing this value makes every attachment encrypted with it unrecoverable.
func runKeygen() error {
	keyChain := crypto.NewKeyChainService()
	key, err := keyChain.GenerateMasterKey()
	if err != nil {
		return fmt.Errorf("generate master key: %w", err)
	}

	raw, err := keyChain.ExportMasterKey(key)
	if err != nil {
		return fmt.Errorf("export master key: %w", err)
	}

	fmt.Println(base64.StdEncoding.EncodeToString(raw))
	return nil
}

func runUpload(attachments service.AttachmentService, args []string) error {
	fs := flag.NewFlagSet("upload", flag.ExitOnError)
	filePath := fs.String("file", "", "path of the file to encrypt and upload")
	contentType := fs.String("type", "application/octet-stream", "MIME type of the file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *filePath == "" {
		return fmt.Errorf("-file is required")
	}

	key, err := masterKeyFromEnv(attachments)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(*filePath)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}

	id, err := attachments.Upload(context.Background(), key, models.AttachmentFile{
		Name:        filepath.Base(*filePath),
		ContentType: *contentType,
		Data:        data,
	})
	if err != nil {
		return err
	}

	fmt.Println(id)
	return nil
}

func runDownload(attachments service.AttachmentService, args []string) error {
	fs := flag.NewFlagSet("download", flag.ExitOnError)
	id := fs.String("id", "", "blob identifier returned by upload")
	outPath := fs.String("out", "", "output path (defaults to the original file name)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		return fmt.Errorf("-id is required")
	}

	key, err := masterKeyFromEnv(attachments)
	if err != nil {
		return err
	}

	file, err := attachments.Download(context.Background(), key, *id)
	if err != nil {
		return err
	}

	target := *outPath
	if target == "" {
		target = file.Name
	}
	if err = os.WriteFile(target, file.Data, 0600); err != nil {
		return fmt.Errorf("write file: %w", err)
	}

	fmt.Println(target)
	return nil
}

func masterKeyFromEnv(attachments service.AttachmentService) (crypto.MasterKey, error) {
	encoded := os.Getenv(masterKeyEnv)
	if encoded == "" {
		return crypto.MasterKey{}, fmt.Errorf("%s environment variable is not set", masterKeyEnv)
	}

	return attachments.ImportMasterKeyBase64(encoded)
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}

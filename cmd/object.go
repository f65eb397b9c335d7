package cmd

import (
	"fmt"
	"io"
	"os"

	"object-storage/core/config"
	"object-storage/core/storage"

	"github.com/gabriel-vasile/mimetype"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	contentTypeFlag string
	outFlag         string

	// objectStore, when set, is used instead of building one from configuration.
	objectStore storage.ObjectStorage
)

// objectCmd is the parent command for single object operations.
var objectCmd = &cobra.Command{
	Use:   "object",
	Short: "Save, load, update and delete objects in the configured bucket",
}

var objectPutCmd = &cobra.Command{
	Use:   "put [key] [file]",
	Short: "Upload a file under a key",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runObjectWrite(cmd, args[0], args[1], false)
	},
}

var objectUpdateCmd = &cobra.Command{
	Use:   "update [key] [file]",
	Short: "Overwrite the object under a key with a file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runObjectWrite(cmd, args[0], args[1], true)
	},
}

var objectGetCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Download an object to stdout or --out",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, cfg, logg, err := newStorage()
		if err != nil {
			return err
		}
		defer logg.Sync()

		rc, err := svc.Load(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		defer rc.Close()

		out := cmd.OutOrStdout()
		if outFlag != "" {
			f, err := os.Create(outFlag)
			if err != nil {
				return fmt.Errorf("failed to create output file: %w", err)
			}
			defer f.Close()
			out = f
		}

		n, err := io.Copy(out, rc)
		if err != nil {
			return fmt.Errorf("failed to read object: %w", err)
		}
		logg.Debug("Object downloaded", zap.String("key", storage.NormalizeKey(cfg.Storage.Prefix, args[0])), zap.Int64("bytes", n))
		return nil
	},
}

var objectDeleteCmd = &cobra.Command{
	Use:   "delete [key]",
	Short: "Delete an object",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, _, logg, err := newStorage()
		if err != nil {
			return err
		}
		defer logg.Sync()

		return svc.Delete(cmd.Context(), args[0])
	},
}

var objectKeyCmd = &cobra.Command{
	Use:   "key [key]",
	Short: "Print the storage key a caller key maps to",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := setup()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), storage.NormalizeKey(cfg.Storage.Prefix, args[0]))
		return nil
	},
}

func init() {
	objectPutCmd.Flags().StringVar(&contentTypeFlag, "content-type", "", "MIME type (detected from content when empty)")
	objectUpdateCmd.Flags().StringVar(&contentTypeFlag, "content-type", "", "MIME type (detected from content when empty)")
	objectGetCmd.Flags().StringVarP(&outFlag, "out", "o", "", "Write to file instead of stdout")

	objectCmd.AddCommand(objectPutCmd, objectUpdateCmd, objectGetCmd, objectDeleteCmd, objectKeyCmd)
	RootCmd.AddCommand(objectCmd)
}

func newStorage() (storage.ObjectStorage, *config.Config, *zap.Logger, error) {
	cfg, logg, err := setup()
	if err != nil {
		return nil, nil, nil, err
	}
	svc, err := storage.Provide(objectStore, cfg.Storage, logg)
	if err != nil {
		return nil, nil, nil, err
	}
	return svc, cfg, logg, nil
}

func runObjectWrite(cmd *cobra.Command, key, path string, update bool) error {
	svc, cfg, logg, err := newStorage()
	if err != nil {
		return err
	}
	defer logg.Sync()

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat file: %w", err)
	}

	contentType := contentTypeFlag
	if contentType == "" {
		contentType, err = detectContentType(f)
		if err != nil {
			return err
		}
	}

	write := svc.Save
	if update {
		write = svc.Update
	}
	if err := write(cmd.Context(), key, f, info.Size(), contentType); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), storage.NormalizeKey(cfg.Storage.Prefix, key))
	return nil
}

// detectContentType sniffs the MIME type and rewinds the file.
func detectContentType(f *os.File) (string, error) {
	mt, err := mimetype.DetectReader(f)
	if err != nil {
		return "", fmt.Errorf("failed to detect content type: %w", err)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("failed to rewind file: %w", err)
	}
	return mt.String(), nil
}

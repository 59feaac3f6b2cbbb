package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var docsOutPath string

var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Manage documents stored on the server",
}

var docsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored documents, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		backend, closeFn, err := openBackend(ctx)
		if err != nil {
			return err
		}
		defer closeFn()

		if err := requireLogin(ctx, backend); err != nil {
			return err
		}

		client := newAPIClient(ctx, backend)
		docs, err := client.Documents(ctx)
		if err != nil {
			return err
		}

		if len(docs) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "The vault is empty")
			return nil
		}
		for _, d := range docs {
			fmt.Fprintf(cmd.OutOrStdout(), "  %s  %s  %s  %s\n", d.ID, d.Name, d.Size, d.UploadDate)
		}
		return nil
	},
}

var docsUploadCmd = &cobra.Command{
	Use:   "upload <file>",
	Short: "Upload a file to the vault",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		backend, closeFn, err := openBackend(ctx)
		if err != nil {
			return err
		}
		defer closeFn()

		if err := requireLogin(ctx, backend); err != nil {
			return err
		}

		content, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read file: %w", err)
		}

		client := newAPIClient(ctx, backend)
		doc, err := client.UploadDocument(ctx, filepath.Base(args[0]), content)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Uploaded %s (%s), id %s\n", doc.Name, doc.Size, doc.ID)
		return nil
	},
}

var docsDownloadCmd = &cobra.Command{
	Use:   "download <id>",
	Short: "Download a document by id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		backend, closeFn, err := openBackend(ctx)
		if err != nil {
			return err
		}
		defer closeFn()

		if err := requireLogin(ctx, backend); err != nil {
			return err
		}

		client := newAPIClient(ctx, backend)
		content, err := client.DownloadDocument(ctx, args[0])
		if err != nil {
			return err
		}

		out := docsOutPath
		if out == "" {
			out = args[0]
		}
		if err := os.WriteFile(out, content, 0o600); err != nil {
			return fmt.Errorf("write file: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Saved to %s\n", out)
		return nil
	},
}

var docsRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a document from the vault",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		backend, closeFn, err := openBackend(ctx)
		if err != nil {
			return err
		}
		defer closeFn()

		if err := requireLogin(ctx, backend); err != nil {
			return err
		}

		client := newAPIClient(ctx, backend)
		if err := client.DeleteDocument(ctx, args[0]); err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Deleted")
		return nil
	},
}

func init() {
	docsDownloadCmd.Flags().StringVarP(&docsOutPath, "out", "o", "", "output file path (defaults to the document id)")

	docsCmd.AddCommand(docsListCmd)
	docsCmd.AddCommand(docsUploadCmd)
	docsCmd.AddCommand(docsDownloadCmd)
	docsCmd.AddCommand(docsRmCmd)
	rootCmd.AddCommand(docsCmd)
}

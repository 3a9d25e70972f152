package main

import (
	"os"

	"txtchange/internal/domain/service"

	"github.com/spf13/cobra"
)

func newQRCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "qr <bookId>",
		Short: "Render the share code of a listing as PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var codes service.QRCodeService

			return withApp(cmd.Context(), func() error {
				png, err := codes.GenerateListingQR(args[0])
				if err != nil {
					return err
				}
				if output == "-" {
					_, err = cmd.OutOrStdout().Write(png)

					return err
				}
				if err := os.WriteFile(output, png, 0o644); err != nil {
					return err
				}
				printf(cmd, "Wrote %s\n", output)

				return nil
			}, &codes)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "listing.png", "output file, - for stdout")

	return cmd
}

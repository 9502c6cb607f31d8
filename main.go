package main

import (
	"os"

	"github.com/EccoMoonProject/ERC721Base/cmd/api"

	"github.com/spf13/cobra"
)

func newCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "erc721base",
		Short: "erc721base",
	}

	cmd.AddCommand(api.NewCommand())
	return cmd
}

func main() {
	cmd := newCommand()
	if err := cmd.Execute(); err != nil {
		os.Exit(-1)
	}
}

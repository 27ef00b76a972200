package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/reflectdiary/diary-api/cmd/launcher"
	"github.com/reflectdiary/diary-api/cmd/service"
)

func main() {
	root := &cobra.Command{
		Use:   "diary",
		Short: "personal reflection diary",
	}

	root.AddCommand(service.NewCommand())
	root.AddCommand(launcher.NewCommand())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

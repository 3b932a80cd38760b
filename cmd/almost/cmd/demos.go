package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/go-drift/almost/showcase"
)

func init() {
	RegisterCommand(&Command{
		Name:  "demos",
		Short: "List showcase demos",
		Long:  `List the showcase demos that can be rendered or inspected.`,
		Usage: "almost demos",
		Run: func(args []string) error {
			return listDemos(os.Stdout)
		},
	})
}

func listDemos(w io.Writer) error {
	for _, d := range showcase.Demos() {
		marker := " "
		if d.Name == showcase.DefaultDemo {
			marker = "*"
		}
		if _, err := fmt.Fprintf(w, "%s %-12s %s\n", marker, d.Name, d.Description); err != nil {
			return err
		}
	}
	return nil
}

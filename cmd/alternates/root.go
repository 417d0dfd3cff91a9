package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	altSvc "alternates-service/internal/alternates/service"
)

var version = "dev"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "alternates",
		Short:         "Suggest top-selling alternates per Salt + Strength",
		Long:          "Reads a UFM list (.csv, or .xlsx/.xls with the 'new UFM List' and 'New UFM List(Mapped List)' sheets) and writes the mapped list with three alternate columns.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newProcessCmd(), newVersionCmd())
	return root
}

func newProcessCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "process <file>",
		Short: "Compute alternates for a local file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := args[0]
			f, err := os.Open(in)
			if err != nil {
				return err
			}
			defer f.Close()

			art, err := altSvc.Process(f, in)
			if err != nil {
				return err
			}

			if out == "-" {
				_, err = cmd.OutOrStdout().Write(art.Data)
				return err
			}
			if out == "" {
				out = defaultOutput(in, art.Name)
			}
			if err := writeFile(out, art.Data); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s (rows: %d, with alternates: %d, salt groups: %d)\n",
				out, art.Summary.TargetRows, art.Summary.Matched, art.Summary.Groups)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "output path, '-' for stdout (default <name>.alternates<ext> next to the input)")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}
}

// defaultOutput never overwrites the input: list.csv -> list.alternates.csv.
func defaultOutput(in, artifactName string) string {
	ext := filepath.Ext(artifactName)
	base := strings.TrimSuffix(artifactName, ext)
	return filepath.Join(filepath.Dir(in), base+".alternates"+ext)
}

func writeFile(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".alternates-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}

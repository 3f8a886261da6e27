package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/BruceZu/chunkstream"
)

func buildDecompressCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "decompress <input> <output>",
		Short: "Decompress a container back to the original bytes",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := os.Open(args[0])
			if err != nil {
				return err
			}
			out, err := os.Create(args[1])
			if err != nil {
				in.Close()
				return err
			}
			defer out.Close()
			r := chunkstream.NewReader(in)
			defer r.Close()
			n, err := io.Copy(out, r)
			if err != nil {
				return err
			}
			fmt.Printf("decompressed %s -> %s (%d bytes)\n", args[0], args[1], n)
			return nil
		},
	}
}

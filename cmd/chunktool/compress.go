package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/BruceZu/chunkstream"
)

var codecName string

func buildCompressCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compress <input> <output>",
		Short: "Compress a file into a chunkstream container",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			codec, err := chunkstream.ParseCodec(codecName)
			if err != nil {
				return err
			}
			in, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer in.Close()
			out, err := os.Create(args[1])
			if err != nil {
				return err
			}
			w, err := chunkstream.NewWriter(out, codec)
			if err != nil {
				out.Close()
				return err
			}
			if _, err = io.Copy(w, in); err != nil {
				w.Close()
				return err
			}
			if err = w.Close(); err != nil {
				return err
			}
			fmt.Printf("compressed %s -> %s (%s)\n", args[0], args[1], codecName)
			return nil
		},
	}
	cmd.Flags().StringVarP(&codecName, "codec", "c", "zstd", "Codec to compress with (zlib, lzma, xz, lz4, zstd, brotli, snappy)")
	return cmd
}

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/BruceZu/chunkstream"
)

func buildInspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <input>",
		Short: "Print the chunk table of a container",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer in.Close()
			var stored, decoded int64
			for i := 0; ; i++ {
				info, err := chunkstream.InspectChunk(in)
				if err == io.EOF {
					break
				}
				if err != nil {
					return err
				}
				kind := "compressed"
				if info.Raw {
					kind = "raw"
				}
				fmt.Printf("%4d %-7s %-10s %6d -> %6d\n",
					i, chunkstream.CodecName(info.Codec), kind,
					info.StoredLen, info.DecodedLen)
				stored += int64(info.StoredLen)
				decoded += int64(info.DecodedLen)
			}
			fmt.Printf("total %d stored, %d decoded\n", stored, decoded)
			return nil
		},
	}
}

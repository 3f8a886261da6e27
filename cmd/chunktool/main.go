package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := buildRootCommand()
	rootCmd.AddCommand(buildCompressCommand())
	rootCmd.AddCommand(buildDecompressCommand())
	rootCmd.AddCommand(buildInspectCommand())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func buildRootCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "chunktool",
		Short: "Compress, decompress and inspect chunkstream containers",
		Long: `chunktool works with chunkstream container files.

Commands:
  compress    Compress a file into a chunkstream container
  decompress  Decompress a container back to the original bytes
  inspect     Print the chunk table of a container

Examples:
  chunktool compress -c zstd input.bin output.cz
  chunktool decompress output.cz restored.bin
  chunktool inspect output.cz`,
	}
}

package main

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/meridiandb/meridian/pkg/config"
	"github.com/meridiandb/meridian/pkg/datatype"
	"github.com/meridiandb/meridian/pkg/logger"
)

var version = "0.1.0"

func main() {
	var configPath string

	root := &cobra.Command{
		Use:   "meridian",
		Short: "Meridian - columnar analytical database type tools",
		Long: `Meridian type tools inspect the data type registry and resolve the
physical stream names used by the columnar storage layout.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			if configPath != "" {
				loaded, err := config.Load(configPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}
			return logger.Init(cfg.LoggerConfig())
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to configuration file")

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("Meridian v%s\n", version)
			fmt.Printf("Go version: %s\n", runtime.Version())
			fmt.Printf("OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "types",
		Short: "List registered data types",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range datatype.Names() {
				dt, err := datatype.Get(name)
				if err != nil {
					logger.Error("cannot build data type", zap.String("name", name), zap.Error(err))
					continue
				}

				width := "variable"
				if size, err := dt.SizeOfValueInMemory(); err == nil {
					width = fmt.Sprintf("%d bytes", size)
				}
				fmt.Printf("%-10s family=%-10s width=%-10s default=%v\n",
					dt.Name(), dt.FamilyName(), width, dt.Default())
			}
		},
	})

	streamCmd := &cobra.Command{
		Use:   "stream-name <column> [path-element...]",
		Short: "Resolve the physical stream name for a column and substream path",
		Long: `Resolve the persisted stream identifier for a column name and a
decomposition path. Path elements: null, size, array, dict, tuple:<field>.

Example:
  meridian stream-name tags array size
  meridian stream-name point tuple:lat`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := parsePath(args[1:])
			if err != nil {
				return err
			}
			fmt.Println(datatype.FileNameForStream(args[0], path))
			return nil
		},
	}
	root.AddCommand(streamCmd)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func parsePath(args []string) (datatype.SubstreamPath, error) {
	path := make(datatype.SubstreamPath, 0, len(args))
	for _, arg := range args {
		switch {
		case arg == "null":
			path = append(path, datatype.Substream{Type: datatype.SubstreamNullMap})
		case arg == "size":
			path = append(path, datatype.Substream{Type: datatype.SubstreamArraySizes})
		case arg == "array":
			path = append(path, datatype.Substream{Type: datatype.SubstreamArrayElements})
		case arg == "dict":
			path = append(path, datatype.Substream{Type: datatype.SubstreamDictionaryKeys})
		case strings.HasPrefix(arg, "tuple:"):
			path = append(path, datatype.TupleElement(strings.TrimPrefix(arg, "tuple:")))
		default:
			return nil, fmt.Errorf("unknown path element %q (want null, size, array, dict or tuple:<field>)", arg)
		}
	}
	return path, nil
}

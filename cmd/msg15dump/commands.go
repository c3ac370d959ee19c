package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/robert-malhotra/go-seviri/header"
	"github.com/robert-malhotra/go-seviri/internal/config"
	"github.com/robert-malhotra/go-seviri/msg15"
	"github.com/robert-malhotra/go-seviri/schema"
)

func newSizeCmd() *cobra.Command {
	var sections bool
	cmd := &cobra.Command{
		Use:   "size",
		Short: "Print the header size in bytes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			s := msg15.Schema()
			if !sections {
				fmt.Fprintln(out, s.Size())
				return nil
			}
			for _, slot := range s.Layout() {
				fmt.Fprintf(out, "%-24s %8d %8d\n", slot.Name, slot.Offset, slot.Size)
			}
			fmt.Fprintf(out, "%-24s %8s %8d\n", "total", "", s.Size())
			return nil
		},
	}
	cmd.Flags().BoolVarP(&sections, "sections", "s", false, "list the size of each section")
	return cmd
}

func newLayoutCmd() *cobra.Command {
	var depth int
	cmd := &cobra.Command{
		Use:   "layout [PREFIX]",
		Short: "Print the field offset table",
		Long: `Print the byte offset, size and type of every field, depth-first in
header order. Arrays are listed once; address their elements with get.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prefix := ""
			if len(args) == 1 {
				prefix = args[0]
			}
			return printLayout(cmd.OutOrStdout(), msg15.Schema(), prefix, depth)
		},
	}
	cmd.Flags().IntVar(&depth, "depth", 0, "maximum nesting depth to print (0 = all)")
	return cmd
}

func printLayout(out io.Writer, s *schema.Schema, prefix string, depth int) error {
	found := prefix == ""
	for _, slot := range s.Flatten() {
		if prefix != "" && slot.Path != prefix && !strings.HasPrefix(slot.Path, prefix+".") {
			continue
		}
		found = true
		if depth > 0 && slot.Depth > depth {
			continue
		}
		indent := strings.Repeat("  ", slot.Depth-1)
		fmt.Fprintf(out, "%8d %8d  %s%s  %s\n", slot.Offset, slot.Size, indent, slot.Name, slot.Type)
	}
	if !found {
		_, err := s.Resolve(prefix)
		if err == nil {
			err = fmt.Errorf("%s is not a record field", prefix)
		}
		return err
	}
	return nil
}

func newGetCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get FILE PATH...",
		Short: "Print header fields",
		Example: `  msg15dump get file.nat SatelliteStatus.SatelliteDefinition.SatelliteId
  msg15dump get file.nat 'SatelliteStatus.Orbit.OrbitPolynomial[3].X[7]'`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := openHeader(args[0], opts.cfg)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, path := range args[1:] {
				val, err := v.Get(path)
				if err != nil {
					return err
				}
				text, err := formatValue(val)
				if err != nil {
					return err
				}
				if len(args) == 2 {
					fmt.Fprintln(out, text)
				} else {
					fmt.Fprintf(out, "%s: %s\n", path, text)
				}
			}
			return nil
		},
	}
}

func newDumpCmd(opts *rootOptions) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "dump FILE",
		Short: "Print the whole header",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format == "" {
				format = opts.cfg.Format
			}
			v, err := openHeader(args[0], opts.cfg)
			if err != nil {
				return err
			}
			switch format {
			case config.FormatYAML:
				return dumpYAML(cmd.OutOrStdout(), v)
			case config.FormatFlat:
				return dumpFlat(cmd.OutOrStdout(), v)
			default:
				return fmt.Errorf("unknown format %q (want %s or %s)", format, config.FormatYAML, config.FormatFlat)
			}
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: yaml or flat (default from config)")
	return cmd
}

func newInitCmd(opts *rootOptions) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := opts.configPath
			if path == "" {
				path = config.DefaultPath()
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("config already exists at %s (use --force to overwrite)", path)
			}
			if err := config.Save(path, config.Default()); err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}
			log.Infof("wrote %s", path)
			fmt.Fprintf(cmd.OutOrStdout(), "Configuration written to %s\n", path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")
	return cmd
}

// openHeader reads the header bytes at cfg.Offset and decodes them.
func openHeader(path string, cfg *config.Config) (*header.View, error) {
	order, err := cfg.Order()
	if err != nil {
		return nil, err
	}
	hopts, err := cfg.HeaderOptions()
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if cfg.Offset > 0 {
		if _, err := f.Seek(cfg.Offset, io.SeekStart); err != nil {
			return nil, fmt.Errorf("seeking to header: %w", err)
		}
	}

	// One byte past the header is enough to detect trailing data.
	s := msg15.Schema()
	data, err := io.ReadAll(io.LimitReader(f, int64(s.Size())+1))
	if err != nil {
		return nil, err
	}
	log.Debugf("read %d bytes from %s at offset %d", len(data), path, cfg.Offset)

	v, err := header.Decode(s, data, order, hopts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return v, nil
}

func dumpYAML(out io.Writer, v *header.View) error {
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

func dumpFlat(out io.Writer, v *header.View) error {
	return v.Walk(func(path string, n header.Node) error {
		if n.Kind() == schema.KindRecord {
			return nil
		}
		val, err := n.Value()
		if err != nil {
			return err
		}
		text, err := formatValue(val)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(out, "%s: %s\n", path, text)
		return err
	})
}

// formatValue renders a decoded value as single-line YAML.
func formatValue(val interface{}) (string, error) {
	n, err := header.YAMLNode(val)
	if err != nil {
		return "", err
	}
	setFlow(n)
	b, err := yaml.Marshal(n)
	if err != nil {
		return "", err
	}
	return strings.TrimSuffix(string(b), "\n"), nil
}

func setFlow(n *yaml.Node) {
	if n.Kind == yaml.MappingNode || n.Kind == yaml.SequenceNode {
		n.Style = yaml.FlowStyle
	}
	for _, c := range n.Content {
		setFlow(c)
	}
}

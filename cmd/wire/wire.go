package wire

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/movsb/peerwire/pkg/config"
	"github.com/movsb/peerwire/pkg/logging"
	"github.com/movsb/peerwire/pkg/record"
)

// AddCommands ...
func AddCommands(root *cobra.Command) {
	encodeCmd := &cobra.Command{
		Use:   `encode [record-file]`,
		Short: `Encode a message record to hex wire bytes.`,
		Long:  `Encode a message record (yaml or bencode) read from a file, or stdin when omitted or "-".`,
		Args:  cobra.MaximumNArgs(1),
		RunE:  encode,
	}
	encodeCmd.Flags().String(`format`, ``, `record format: yaml or bencode`)
	root.AddCommand(encodeCmd)

	decodeCmd := &cobra.Command{
		Use:   `decode [hex]...`,
		Short: `Decode hex wire bytes into message records.`,
		RunE:  decode,
	}
	decodeCmd.Flags().StringP(`file`, `f`, ``, `read raw wire bytes from this file`)
	decodeCmd.Flags().String(`format`, ``, `record format: yaml or bencode`)
	root.AddCommand(decodeCmd)

	scanCmd := &cobra.Command{
		Use:   `scan <capture-file>`,
		Short: `Decode every message of a captured stream.`,
		Args:  cobra.ExactArgs(1),
		RunE:  scan,
	}
	scanCmd.Flags().String(`format`, ``, `record format: yaml or bencode`)
	scanCmd.Flags().Int(`workers`, 0, `concurrent decoders, 0 for the config value`)
	root.AddCommand(scanCmd)

	readCmd := &cobra.Command{
		Use:   `read [stream-file]`,
		Short: `Read messages from a stream until it ends.`,
		Long:  `Read length-prefixed messages from a file, or stdin when omitted or "-", printing each as it arrives.`,
		Args:  cobra.MaximumNArgs(1),
		RunE:  read,
	}
	readCmd.Flags().String(`format`, ``, `record format: yaml or bencode`)
	root.AddCommand(readCmd)

	convertCmd := &cobra.Command{
		Use:   `convert <record-file>`,
		Short: `Convert a message record between yaml and bencode.`,
		Args:  cobra.ExactArgs(1),
		RunE:  convert,
	}
	convertCmd.Flags().String(`from`, record.FormatYAML, `input format`)
	convertCmd.Flags().String(`to`, record.FormatBencode, `output format`)
	root.AddCommand(convertCmd)
}

type env struct {
	cfg config.Config
	log zerolog.Logger
}

// setup loads the config named by --config and applies flag overrides.
func setup(cmd *cobra.Command) (*env, error) {
	path, _ := cmd.Flags().GetString(`config`)
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if level, _ := cmd.Flags().GetString(`log-level`); level != `` {
		cfg.LogLevel = level
	}
	if format, _ := cmd.Flags().GetString(`format`); format != `` {
		cfg.Format = format
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log, err := logging.New(os.Stderr, cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	return &env{cfg: cfg, log: log}, nil
}

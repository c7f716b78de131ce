package wire

import (
	"encoding/hex"
	"fmt"
	"io"
	"io/ioutil"
	"os"

	"github.com/spf13/cobra"

	"github.com/movsb/peerwire/pkg/message"
	"github.com/movsb/peerwire/pkg/record"
)

func encode(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}

	var r io.ReadCloser
	path := `-`
	if len(args) > 0 {
		path = args[0]
	}
	switch path {
	case "-":
		r = ioutil.NopCloser(os.Stdin)
	default:
		fp, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("unable to open: %s: %v", path, err)
		}
		r = fp
	}
	defer r.Close()

	rec, err := record.Unmarshal(r, e.cfg.Format)
	if err != nil {
		return err
	}
	m, err := rec.Message()
	if err != nil {
		return err
	}
	b, err := message.Encode(m)
	if err != nil {
		return err
	}
	e.log.Debug().Stringer("type", m.Type()).Int("size", len(b)).Msg("encoded")

	fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(b))
	return nil
}

package wire

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"

	"github.com/spf13/cobra"

	"github.com/movsb/peerwire/pkg/peer"
	"github.com/movsb/peerwire/pkg/record"
)

// read prints messages one record at a time as they arrive, so it can
// sit at the end of a pipe.
func read(cmd *cobra.Command, args []string) error {
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

	s := peer.NewStream(struct {
		io.Reader
		io.Writer
	}{r, ioutil.Discard}, e.log)
	s.MaxLength = e.cfg.MaxMessageLength

	for n := 0; ; n++ {
		m, err := s.Recv()
		if err == io.EOF {
			e.log.Debug().Int("messages", n).Msg("end of stream")
			return nil
		}
		if err != nil {
			return fmt.Errorf("message %d: %v", n, err)
		}
		rec, err := record.FromMessage(m)
		if err != nil {
			return err
		}
		if err := record.Marshal(cmd.OutOrStdout(), e.cfg.Format, []record.Record{rec}); err != nil {
			return err
		}
	}
}

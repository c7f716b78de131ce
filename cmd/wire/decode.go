package wire

import (
	"context"
	"encoding/hex"
	"fmt"
	"io/ioutil"
	"strings"

	"github.com/spf13/cobra"

	"github.com/movsb/peerwire/pkg/capture"
	"github.com/movsb/peerwire/pkg/message"
	"github.com/movsb/peerwire/pkg/record"
)

func decode(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}

	var b []byte
	if path, _ := cmd.Flags().GetString(`file`); path != `` {
		if b, err = ioutil.ReadFile(path); err != nil {
			return err
		}
	} else {
		if len(args) == 0 {
			return fmt.Errorf("decode: need hex arguments or --file")
		}
		s := strings.Join(args, ``)
		s = strings.NewReplacer(` `, ``, `:`, ``).Replace(s)
		if b, err = hex.DecodeString(s); err != nil {
			return fmt.Errorf("decode: invalid hex: %v", err)
		}
	}

	var recs []record.Record
	for off := 0; off < len(b); {
		m, n, err := message.Decode(b[off:])
		if err != nil {
			return fmt.Errorf("offset %d: %v", off, err)
		}
		rec, err := record.FromMessage(m)
		if err != nil {
			return err
		}
		recs = append(recs, rec)
		off += n
	}
	e.log.Debug().Int("messages", len(recs)).Int("bytes", len(b)).Msg("decoded")

	return record.Marshal(cmd.OutOrStdout(), e.cfg.Format, recs)
}

func scan(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}

	frames, err := capture.ReadFile(args[0])
	if err != nil {
		return err
	}

	workers := e.cfg.Workers
	if w, _ := cmd.Flags().GetInt(`workers`); w > 0 {
		workers = w
	}
	d := capture.Decoder{Workers: workers, Log: e.log}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	msgs, err := d.DecodeAll(ctx, frames)
	if err != nil {
		return err
	}

	counts := map[string]int{}
	recs := make([]record.Record, 0, len(msgs))
	for _, m := range msgs {
		rec, err := record.FromMessage(m)
		if err != nil {
			return err
		}
		recs = append(recs, rec)
		counts[rec.Type]++
	}
	e.log.Info().Str("file", args[0]).Int("messages", len(msgs)).Interface("types", counts).Msg("scan done")

	return record.Marshal(cmd.OutOrStdout(), e.cfg.Format, recs)
}

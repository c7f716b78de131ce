package wire

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"

	"github.com/spf13/cobra"

	"github.com/movsb/peerwire/pkg/record"
)

func convert(cmd *cobra.Command, args []string) error {
	if _, err := setup(cmd); err != nil {
		return err
	}
	from, _ := cmd.Flags().GetString(`from`)
	to, _ := cmd.Flags().GetString(`to`)

	var r io.ReadCloser
	path := args[0]
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

	rec, err := record.Unmarshal(r, from)
	if err != nil {
		return err
	}
	// Reject records that do not describe a message.
	if _, err := rec.Message(); err != nil {
		return err
	}
	return record.Marshal(cmd.OutOrStdout(), to, rec)
}

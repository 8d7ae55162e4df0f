package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/keymint/keymint/internal/errors"
	"github.com/keymint/keymint/internal/identity"
)

// zidCommand mints fresh ZIDs, one per line. The count argument is
// optional and defaults to one.
func zidCommand(w io.Writer, args []string) error {
	count := 1
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return errors.WrapWithCode(err, errors.ErrInput,
				fmt.Sprintf("'%s' isn't a number", args[0]),
				"Usage: keymint zid [count]")
		}
		if n < 1 {
			return errors.New(errors.ErrInput,
				fmt.Sprintf("Count must be at least 1, got %d", n),
				"Usage: keymint zid [count]")
		}
		count = n
	}

	for i := 0; i < count; i++ {
		zid, err := identity.NewZID(nil)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, zid)
	}

	return nil
}

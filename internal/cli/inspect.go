package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/keymint/keymint/internal/errors"
	"github.com/keymint/keymint/internal/identity"
	"github.com/keymint/keymint/internal/naming"
	"github.com/keymint/keymint/internal/ui"
	"github.com/keymint/keymint/pkg/sshscan"
)

// inspectCommand decodes each argument as a minted key file name. Names
// that don't decode are reported and the remaining arguments still get
// processed; the command fails at the end when any name was bad.
func inspectCommand(w io.Writer, args []string) error {
	label := ui.MutedStyle()

	var failed int
	for i, path := range args {
		if i > 0 {
			fmt.Fprintln(w)
		}

		name, err := naming.Parse(path)
		if err != nil {
			failed++
			fmt.Fprintf(w, "%s %s\n", ui.ErrorStyle().Render(ui.SymbolFail), path)
			fmt.Fprintf(w, "  %s\n", errorMessage(err))
			continue
		}

		fmt.Fprintf(w, "%s %s\n", ui.SuccessStyle().Render(ui.SymbolSuccess), path)
		fmt.Fprintf(w, "  %s %s\n", label.Render("user:"), name.User)
		fmt.Fprintf(w, "  %s %s\n", label.Render("system:"), name.System)
		fmt.Fprintf(w, "  %s %s%s\n", label.Render("unique:"), name.Unique, zidNote(name.Unique))
		fmt.Fprintf(w, "  %s %s\n", label.Render("class:"), name.Class)
		fmt.Fprintf(w, "  %s %s\n", label.Render("base:"), name.Base)

		if info, ok := readPublicKey(path); ok {
			fmt.Fprintf(w, "  %s %s\n", label.Render("type:"), info.Type)
			fmt.Fprintf(w, "  %s %s\n", label.Render("fingerprint:"), info.Fingerprint)
			if info.Comment != "" && info.Comment != name.String() {
				fmt.Fprintf(w, "  %s comment '%s' doesn't match the file name\n",
					ui.WarningStyle().Render(ui.SymbolWarning), info.Comment)
			}
		}
	}

	if failed > 0 {
		return errors.New(errors.ErrInput,
			fmt.Sprintf("%d of %d name%s could not be decoded", failed, len(args), pluralSuffix(len(args))),
			fmt.Sprintf("Minted names have 5 '%s'-separated fields: user, system, unique, class, base", naming.Separator))
	}
	return nil
}

// readPublicKey loads key details for arguments that are readable public
// key files. Bare stems and missing files decode fine without them.
func readPublicKey(path string) (sshscan.PublicKeyInfo, bool) {
	if !strings.HasSuffix(path, ".pub") {
		return sshscan.PublicKeyInfo{}, false
	}
	if _, err := os.Stat(path); err != nil {
		return sshscan.PublicKeyInfo{}, false
	}

	info, err := sshscan.ReadPublicKeyFile(path)
	if err != nil {
		return sshscan.PublicKeyInfo{}, false
	}
	return info, true
}

// zidNote annotates unique identifiers that don't have the minted ZID
// shape.
func zidNote(unique string) string {
	if identity.IsZID(unique) {
		return ""
	}
	return " (not a ZID)"
}

// errorMessage extracts the bare message from a structured error, keeping
// the per-file lines free of the full multi-line rendering.
func errorMessage(err error) string {
	if kerr, ok := err.(*errors.Error); ok {
		return kerr.Message
	}
	return err.Error()
}

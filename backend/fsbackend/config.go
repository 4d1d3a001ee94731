package fsbackend

import (
	"bytes"
	"path/filepath"

	"github.com/spf13/afero"
	"golang.org/x/xerrors"
	"gopkg.in/ini.v1"
)

// writeDefaultConfig creates the .git/config file for a freshly
// initialized repository, if it doesn't already exist.
func (b *Backend) writeDefaultConfig() error {
	p := filepath.Join(b.cfg.GitDirPath, "config")
	if exists, err := afero.Exists(b.fs, p); err != nil {
		return xerrors.Errorf("could not inspect %s: %w", p, err)
	} else if exists {
		return nil
	}

	cfg := ini.Empty()
	core, err := cfg.NewSection("core")
	if err != nil {
		return xerrors.Errorf("could not create core section: %w", err)
	}

	if _, err := core.NewKey("repositoryformatversion", "0"); err != nil {
		return xerrors.Errorf("could not set repositoryformatversion: %w", err)
	}
	if _, err := core.NewKey("filemode", "true"); err != nil {
		return xerrors.Errorf("could not set filemode: %w", err)
	}
	if _, err := core.NewKey("bare", boolString(b.cfg.IsBare())); err != nil {
		return xerrors.Errorf("could not set bare: %w", err)
	}
	if !b.cfg.IsBare() {
		if _, err := core.NewKey("logallrefupdates", "true"); err != nil {
			return xerrors.Errorf("could not set logallrefupdates: %w", err)
		}
	}

	var buf bytes.Buffer
	if _, err := cfg.WriteTo(&buf); err != nil {
		return xerrors.Errorf("could not render config: %w", err)
	}

	if err := afero.WriteFile(b.fs, p, buf.Bytes(), 0o644); err != nil {
		return xerrors.Errorf("could not write config: %w", err)
	}
	return nil
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

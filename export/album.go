// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package export

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/gogpu/ggscene"
)

// Scope names a permission an Authorizer can grant.
type Scope string

// ScopeWritePhotosAlbum allows saving images into the album.
const ScopeWritePhotosAlbum Scope = "scope.writePhotosAlbum"

// ErrAlbumPermission is returned when saving to the album is not allowed.
// Its message is meant to be shown to the user as is.
var ErrAlbumPermission = errors.New("photo album access is off: open Settings and allow saving to the photo album, then try again")

// Authorizer decides whether the album may be written.
type Authorizer interface {
	// Authorized reports whether scope has already been granted.
	Authorized(scope Scope) bool
	// Authorize asks for scope and returns an error when it is refused.
	Authorize(ctx context.Context, scope Scope) error
}

// StaticAuthorizer grants or refuses every scope up front.
type StaticAuthorizer bool

// Authorized implements Authorizer.
func (a StaticAuthorizer) Authorized(Scope) bool { return bool(a) }

// Authorize implements Authorizer.
func (a StaticAuthorizer) Authorize(context.Context, Scope) error {
	if !a {
		return ErrAlbumPermission
	}
	return nil
}

// PromptAuthorizer asks on a terminal-like stream and remembers the answer
// for the lifetime of the value.
type PromptAuthorizer struct {
	In  io.Reader
	Out io.Writer

	mu      sync.Mutex
	granted map[Scope]bool
}

// Authorized implements Authorizer.
func (p *PromptAuthorizer) Authorized(scope Scope) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.granted[scope]
}

// Authorize implements Authorizer. Only "y" or "yes" grants the scope.
func (p *PromptAuthorizer) Authorize(ctx context.Context, scope Scope) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	fmt.Fprintf(p.Out, "Allow %s? [y/N] ", scope)
	line, err := bufio.NewReader(p.In).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
	default:
		return ErrAlbumPermission
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.granted == nil {
		p.granted = make(map[Scope]bool)
	}
	p.granted[scope] = true
	return nil
}

// Album is a directory standing in for the device photo album.
type Album struct {
	Dir  string
	Auth Authorizer
}

// Save copies the image file at path into the album, asking for
// ScopeWritePhotosAlbum first if it has not been granted. It returns the
// path of the saved copy.
func (a *Album) Save(ctx context.Context, path string) (string, error) {
	if a.Auth == nil {
		return "", ErrAlbumPermission
	}
	if !a.Auth.Authorized(ScopeWritePhotosAlbum) {
		if err := a.Auth.Authorize(ctx, ScopeWritePhotosAlbum); err != nil {
			if errors.Is(err, ErrAlbumPermission) {
				return "", err
			}
			return "", fmt.Errorf("%w: %w", ErrAlbumPermission, err)
		}
	}

	if err := os.MkdirAll(a.Dir, 0o755); err != nil {
		return "", fmt.Errorf("export: %w", err)
	}
	dst := filepath.Join(a.Dir, filepath.Base(path))
	if err := copyFile(dst, path); err != nil {
		return "", err
	}
	ggscene.Logger().Info("export: saved to album", "path", dst)
	return dst, nil
}

func copyFile(dst, src string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("export: copy %s: %w", src, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	return nil
}

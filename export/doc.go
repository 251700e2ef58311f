// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package export turns a rendered surface into files the host can share:
// a temporary PNG or JPEG (optionally cropped and resized with bild), and a
// copy saved into an album directory behind a write permission.
//
//	path, err := export.ToTempFile(dc, export.TempFileOptions{FileType: "jpg", DestWidth: 375})
//	if err != nil {
//	    return err
//	}
//	album := &export.Album{Dir: "~/Pictures", Auth: export.StaticAuthorizer(true)}
//	_, err = album.Save(ctx, path)
//
// A refused permission surfaces as ErrAlbumPermission, whose message is
// written for end users.
package export

package qrcode

import (
	"context"
	"os"
	"path"
	"path/filepath"

	"rifas-api/internal/domain/guest"
	"rifas-api/internal/pkg/config"
	"rifas-api/internal/pkg/errs"
	"rifas-api/internal/usecase/commands"

	qr "github.com/skip2/go-qrcode"
)

// BlobStore persists rendered credential images. The filesystem store is the
// default; a CDN-backed store would implement the same interface.
type BlobStore interface {
	Put(ctx context.Context, name string, data []byte) (string, error)
}

type FilesystemStore struct {
	dir          string
	publicPrefix string
}

func NewFilesystemStore(cfg config.QRConfig) *FilesystemStore {
	return &FilesystemStore{dir: cfg.StorageDir, publicPrefix: cfg.PublicPrefix}
}

func (s *FilesystemStore) Put(_ context.Context, name string, data []byte) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", errs.Wrap(err, "create qr storage dir")
	}
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return "", errs.Wrap(err, "write qr image")
	}
	return path.Join(s.publicPrefix, name), nil
}

// Renderer encodes the checkin token itself as the QR payload; scanning a
// credential yields exactly the capability string and nothing else.
type Renderer struct {
	store BlobStore
	size  int
}

func NewRenderer(store BlobStore, cfg config.QRConfig) commands.CredentialRenderer {
	return &Renderer{store: store, size: cfg.SizePixels}
}

func (r *Renderer) Render(ctx context.Context, token guest.CheckinToken) (string, error) {
	png, err := qr.Encode(token.String(), qr.Medium, r.size)
	if err != nil {
		return "", errs.Wrap(err, "encode qr")
	}
	return r.store.Put(ctx, token.String()+".png", png)
}

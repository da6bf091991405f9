package docpipe

import (
	"errors"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/tsawler/docpipe/backend"
	"github.com/tsawler/docpipe/model"
)

// ExtractMetadata reads document properties without running a text
// extraction pass. Structure comes from pdfcpu; the info dictionary
// fields are filled in from the fitz backend when that build is
// available. An encrypted document is not an error here: the result
// reports Encrypted true with whatever fields could be read.
func ExtractMetadata(path string) (*model.DocumentInfo, error) {
	ctx, err := api.ReadContextFile(path)
	if err != nil {
		if classified := backend.Classify(err); errors.Is(classified, backend.ErrEncrypted) {
			return &model.DocumentInfo{Encrypted: true}, nil
		}
		return nil, backend.Classify(err)
	}

	info := &model.DocumentInfo{
		PageCount: ctx.PageCount,
		Encrypted: ctx.Encrypt != nil,
	}

	if f, ferr := backend.NewFitz(); ferr == nil {
		if meta, merr := f.Metadata(path); merr == nil {
			info.Title = strings.TrimSpace(meta["title"])
			info.Author = strings.TrimSpace(meta["author"])
			info.Subject = strings.TrimSpace(meta["subject"])
			info.Creator = strings.TrimSpace(meta["creator"])
			info.Producer = strings.TrimSpace(meta["producer"])
		}
	}
	return info, nil
}

// IsEncrypted reports whether the document requires a password to
// open.
func IsEncrypted(path string) (bool, error) {
	ctx, err := api.ReadContextFile(path)
	if err != nil {
		if classified := backend.Classify(err); errors.Is(classified, backend.ErrEncrypted) {
			return true, nil
		}
		return false, backend.Classify(err)
	}
	return ctx.Encrypt != nil, nil
}

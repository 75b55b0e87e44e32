// Package batch drives one full roster pass: every record in input
// order, one card written per record that has a usable photo.
package batch

import (
	"context"
	"errors"
	"log"
	"path/filepath"

	"github.com/youruser/idcard/internal/card"
	"github.com/youruser/idcard/internal/photo"
	"github.com/youruser/idcard/internal/roster"
)

// SkippedRecord reports a record that produced no output and why.
type SkippedRecord struct {
	ID     string
	Reason string
}

type Summary struct {
	Total     int
	Generated int
	Skipped   []SkippedRecord
}

type Runner struct {
	Resolver   photo.Resolver
	Compositor *card.Compositor
	OutputDir  string
}

// Run processes records sequentially. A missing or undecodable photo
// skips that record and the pass continues; anything affecting the
// whole batch (an unwritable output directory, a cancelled context)
// stops it.
func (rn Runner) Run(ctx context.Context, records []roster.Record) (Summary, error) {
	sum := Summary{Total: len(records)}
	for _, rec := range records {
		if err := ctx.Err(); err != nil {
			return sum, err
		}

		img, err := rn.Resolver.Resolve(rec)
		if err != nil {
			if errors.Is(err, photo.ErrPhotoNotFound) || errors.Is(err, photo.ErrBadImage) {
				log.Printf("skipping %s: %v", rec.ID, err)
				sum.Skipped = append(sum.Skipped, SkippedRecord{ID: rec.ID, Reason: err.Error()})
				continue
			}
			return sum, err
		}

		out, err := rn.Compositor.Render(rec, img)
		if err != nil {
			log.Printf("skipping %s: %v", rec.ID, err)
			sum.Skipped = append(sum.Skipped, SkippedRecord{ID: rec.ID, Reason: err.Error()})
			continue
		}

		dst := filepath.Join(rn.OutputDir, card.OutputName(rec))
		if err := card.WritePNG(out, dst); err != nil {
			return sum, err
		}
		sum.Generated++
		log.Printf("saved %s", dst)
	}
	return sum, nil
}

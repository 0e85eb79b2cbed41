package imagesift

import (
	"encoding/json"
	"fmt"
	"image"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/corona10/goimagehash"
)

// dedupThreshold is the maximum Hamming distance between two dHash values
// below which images are considered perceptually identical.
const dedupThreshold = 10

// Collection is an in-memory set of analyzed records with perceptual
// deduplication on insert and relevance-ranked search. It is safe for
// concurrent use; the analysis pipeline itself stays single-image and
// synchronous.
type Collection struct {
	mu      sync.Mutex
	records []*Record
	hashes  []*goimagehash.ImageHash
}

// NewCollection returns an empty collection.
func NewCollection() *Collection {
	return &Collection{}
}

// Add appends rec to the collection, stamping UploadedAt when unset.
// When img is non-nil it is hashed and
// compared against previously added images; perceptual duplicates are
// rejected and Add reports false. If hashing fails the record is accepted
// (graceful degradation) and simply skips future comparisons.
func (c *Collection) Add(rec *Record, img image.Image) bool {
	if rec == nil {
		return false
	}
	if rec.UploadedAt.IsZero() {
		rec.UploadedAt = time.Now().UTC()
	}

	var hash *goimagehash.ImageHash
	if img != nil {
		h, err := goimagehash.DifferenceHash(img)
		if err == nil {
			hash = h
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if hash != nil {
		for _, seen := range c.hashes {
			dist, err := hash.Distance(seen)
			if err == nil && dist < dedupThreshold {
				slog.Debug("imagesift: duplicate rejected",
					"filename", rec.OriginalFilename, "distance", dist)
				return false
			}
		}
		c.hashes = append(c.hashes, hash)
	}

	c.records = append(c.records, rec)
	return true
}

// Remove deletes the record with the given ID. Reports whether a record
// was removed.
func (c *Collection) Remove(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, rec := range c.records {
		if rec.ID == id {
			c.records = append(c.records[:i], c.records[i+1:]...)
			return true
		}
	}
	return false
}

// Len returns the number of stored records.
func (c *Collection) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.records)
}

// Records returns a snapshot copy of the stored records in insertion order.
func (c *Collection) Records() []*Record {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]*Record, len(c.records))
	copy(out, c.records)
	return out
}

// Search splits the raw query into terms, expands them through the
// synonym table, and returns matching records ordered by descending
// relevance. Equal scores keep insertion order. An empty query returns
// every record with relevance zero.
func (c *Collection) Search(rawQuery string) []ScoredRecord {
	records := c.Records()

	terms := strings.Fields(strings.ToLower(strings.TrimSpace(rawQuery)))
	if len(terms) == 0 {
		out := make([]ScoredRecord, len(records))
		for i, rec := range records {
			out[i] = ScoredRecord{Record: rec}
		}
		return out
	}

	return Rank(records, ExpandQuery(terms))
}

// snapshot is the JSON file shape, matching the original metadata store.
type snapshot struct {
	Images []*Record `json:"images"`
}

// Save writes the collection to path as JSON.
func (c *Collection) Save(path string) error {
	data, err := json.MarshalIndent(snapshot{Images: c.Records()}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal collection: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write collection: %w", err)
	}
	return nil
}

// Load replaces the collection contents with the records stored at path.
// Perceptual hashes are not persisted: dedup applies to images added with
// pixel data during the current session.
func (c *Collection) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read collection: %w", err)
	}
	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("unmarshal collection: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.records = snap.Images
	c.hashes = nil
	return nil
}

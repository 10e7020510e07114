package store

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/fintrack/fintrack/internal/codec"
)

// Partition names. One encrypted blob is stored per (user, partition).
const (
	PartitionPersonalDetails = "personalDetails"
	PartitionFinance         = "financeData"
	PartitionAssets          = "assetsData"
	PartitionInvestments     = "investmentData"
	PartitionLoans           = "loansData"
	PartitionInsurances      = "insurancesData"
	PartitionGoals           = "goalsData"
	PartitionAccount         = "account"
	PartitionLastModified    = "lastModified"
)

// financeAffecting marks partitions whose saves bump the lastModified
// display timestamp.
var financeAffecting = map[string]bool{
	PartitionFinance:     true,
	PartitionAssets:      true,
	PartitionInvestments: true,
	PartitionLoans:       true,
	PartitionInsurances:  true,
	PartitionGoals:       true,
}

// RecordStore reads and writes per-user encrypted partitions on a KV
// backend. Reads consult the scoped key first and fall back to the legacy
// unscoped key for data written before per-user scoping existed; writes
// always go to the scoped key. Updates are write-whole: the partition is
// re-serialized and re-encrypted in full.
type RecordStore struct {
	kv    KV
	codec *codec.Codec
	now   func() time.Time
}

// NewRecordStore wires a KV backend to the Codec.
func NewRecordStore(kv KV, c *codec.Codec) *RecordStore {
	return &RecordStore{kv: kv, codec: c, now: time.Now}
}

// scopedKey is "{partition}_{userID}".
func scopedKey(partition, userID string) string {
	return fmt.Sprintf("%s_%s", partition, userID)
}

// Get decodes the partition into out. It returns ErrNotFound when neither
// the scoped nor the legacy key exists, and a *codec.DecodeError when a
// value exists but is unreadable. The legacy key is read, never renamed,
// so the migration path stays auditable.
func (r *RecordStore) Get(userID, partition string, out any) error {
	raw, err := r.kv.Get(scopedKey(partition, userID))
	if errors.Is(err, ErrNotFound) {
		raw, err = r.kv.Get(partition)
	}
	if err != nil {
		return err
	}
	return r.codec.DecryptOrPlain(raw, out)
}

// Set encrypts v and overwrites the scoped partition key. Saves of
// finance-affecting partitions also record a lastModified timestamp; that
// write is best-effort display metadata and never fails the primary write.
func (r *RecordStore) Set(userID, partition string, v any) error {
	enc, err := r.codec.Encrypt(v)
	if err != nil {
		return fmt.Errorf("store: encrypt %s: %w", partition, err)
	}
	if err := r.kv.Set(scopedKey(partition, userID), enc); err != nil {
		return fmt.Errorf("store: write %s: %w", partition, err)
	}

	if financeAffecting[partition] {
		stamp := r.now().UTC().Format(time.RFC3339)
		if err := r.kv.Set(scopedKey(PartitionLastModified, userID), stamp); err != nil {
			log.Printf("[Store] lastModified write failed for user %s: %v", userID, err)
		}
	}
	return nil
}

// LastModified returns the display timestamp for the user, or "" when none
// was ever recorded. Stored as a plain string, not an encrypted blob.
func (r *RecordStore) LastModified(userID string) string {
	raw, err := r.kv.Get(scopedKey(PartitionLastModified, userID))
	if errors.Is(err, ErrNotFound) {
		raw, err = r.kv.Get(PartitionLastModified)
	}
	if err != nil {
		return ""
	}
	return raw
}

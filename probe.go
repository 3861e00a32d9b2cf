package stash

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"go.hackfix.me/stash/store"
)

// IsAvailable reports whether the identified driver is usable. It opens
// the driver and performs a write-read-delete round trip of a sentinel
// key, so it catches engines that exist but reject writes (full storage,
// read-only data directories, unsupported environments). dataDir is only
// used by DriverBadger; pass "" for the default location.
func IsAvailable(d Driver, dataDir string) bool {
	drv, err := openDriver(d, dataDir)
	if err != nil {
		return false
	}
	defer drv.Close()

	return probe(drv) == nil
}

// probe performs a write-read-delete round trip against an open driver.
// A failure to remove the sentinel key does not count against
// availability; the earlier steps already proved the driver usable.
func probe(drv store.Driver) error {
	key := "stash-probe-" + uuid.NewString()
	want := []byte("ok")

	if err := drv.Set(key, want); err != nil {
		return fmt.Errorf("probe write failed: %w", err)
	}
	got, err := drv.Get(key)
	if err != nil {
		return fmt.Errorf("probe read failed: %w", err)
	}
	if !bytes.Equal(got, want) {
		return errors.New("probe read returned unexpected value")
	}
	_ = drv.Delete(key)

	return nil
}

package ddc

import "github.com/openfluke/ddc/mem"

// SyncToDevice uploads c's host-resident values into its reserved device
// buffer. Valid only for a chunk allocated from mem.Device(); the transfer
// uses float32 lanes, matching the original buffer helpers this package's
// device backend is grounded on (mem/device.go).
func SyncToDevice[T TagSet](c *Chunk[float32, T]) error {
	return mem.Upload(c.token, c.data)
}

// SyncFromDevice downloads c's device buffer back into its host-resident
// values, overwriting them.
func SyncFromDevice[T TagSet](c *Chunk[float32, T]) error {
	data, err := mem.Download(c.token)
	if err != nil {
		return err
	}
	copy(c.data, data)
	return nil
}

package parser

import "github.com/chocksaway/choctoobj/internal/streamio"

// IndexEntry is one decoded address from the index file: the raw address
// as stored, and its offset from the first address in the file, which is
// what the model file's object records are actually keyed by.
type IndexEntry struct {
	ObjectIndex int
	Address     int32
	Offset      int64
}

// WalkIndex reads every address in the index file and returns them in
// order, validating that addresses never decrease: the format relies on
// this to treat the gap between one address and the next as an upper
// bound on that object's size.
func WalkIndex(idx streamio.Reader) ([]IndexEntry, error) {
	var entries []IndexEntry
	var firstAddress, lastAddress int32
	haveFirst := false

	for i := 0; ; i++ {
		addr, ok := streamio.ReadInt32LE(idx)
		if !ok {
			if err := idx.Err(); err != nil {
				return entries, newErr(KindIO, "", "index", err)
			}
			break
		}
		if !haveFirst {
			firstAddress = addr
			haveFirst = true
		} else if addr < lastAddress {
			return entries, fmtErr(KindFormat, "", "index",
				"address at entry %d (%d) is less than previous address %d", i, addr, lastAddress)
		}
		lastAddress = addr
		entries = append(entries, IndexEntry{
			ObjectIndex: i,
			Address:     addr,
			Offset:      int64(addr - firstAddress),
		})
	}
	return entries, nil
}

// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package rabc

// MetadataItem is one key/value pair attached to a Metadata entry. Key is
// the sentinel string index (0) for a keyless value.
type MetadataItem struct {
	KeyIdx   uint32
	ValueIdx uint32
}

// Keyless reports whether this item carries no key, a positional value.
func (m MetadataItem) Keyless() bool { return m.KeyIdx == 0 }

// Metadata is a named bag of key/value string-index pairs attached to a
// class, method, or trait via its Metadata index list.
//
// The wire format stores keys and values as two parallel arrays (all keys,
// then all values), not interleaved per item.
type Metadata struct {
	NameIdx uint32
	Items   []MetadataItem
}

func readMetadata(r *StreamReader) (Metadata, error) {
	var m Metadata
	var err error
	if m.NameIdx, err = r.ReadU30(); err != nil {
		return Metadata{}, err
	}
	count, err := r.ReadU30()
	if err != nil {
		return Metadata{}, err
	}
	m.Items = make([]MetadataItem, count)
	for i := range m.Items {
		if m.Items[i].KeyIdx, err = r.ReadU30(); err != nil {
			return Metadata{}, err
		}
	}
	for i := range m.Items {
		if m.Items[i].ValueIdx, err = r.ReadU30(); err != nil {
			return Metadata{}, err
		}
	}
	return m, nil
}

func writeMetadata(w *StreamWriter, m Metadata) {
	w.WriteU30(m.NameIdx)
	w.WriteU30(uint32(len(m.Items)))
	for _, item := range m.Items {
		w.WriteU30(item.KeyIdx)
	}
	for _, item := range m.Items {
		w.WriteU30(item.ValueIdx)
	}
}

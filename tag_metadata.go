// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package rabc

// MetadataTag carries an arbitrary XMP XML payload describing the movie.
type MetadataTag struct {
	Metadata string
}

func (MetadataTag) ID() uint16 { return uint16(TagIDMetadata) }

func readMetadataTag(r *StreamReader) (MetadataTag, error) {
	s, err := r.ReadNullString()
	if err != nil {
		return MetadataTag{}, err
	}
	return MetadataTag{Metadata: s}, nil
}

func writeMetadataTag(w *StreamWriter, t MetadataTag) {
	w.WriteNullString(t.Metadata)
}

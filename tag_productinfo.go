// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package rabc

// ProductVersion is a major/minor pair identifying the tool that produced
// a Movie.
type ProductVersion struct {
	Major, Minor uint8
}

// ProductInfoTag records the identity, version and build timestamp of the
// tool that compiled a Movie. Undocumented but widely emitted by the
// official Flash/Animate compilers.
type ProductInfoTag struct {
	ProductID   uint32
	Edition     uint32
	Version     ProductVersion
	Build       uint64
	CompileDate uint64
}

func (ProductInfoTag) ID() uint16 { return uint16(TagIDProductInfo) }

func readProductInfoTag(r *StreamReader) (ProductInfoTag, error) {
	productID, err := r.ReadU32()
	if err != nil {
		return ProductInfoTag{}, err
	}
	edition, err := r.ReadU32()
	if err != nil {
		return ProductInfoTag{}, err
	}
	major, err := r.ReadU8()
	if err != nil {
		return ProductInfoTag{}, err
	}
	minor, err := r.ReadU8()
	if err != nil {
		return ProductInfoTag{}, err
	}
	build, err := r.ReadU64()
	if err != nil {
		return ProductInfoTag{}, err
	}
	compileDate, err := r.ReadU64()
	if err != nil {
		return ProductInfoTag{}, err
	}

	return ProductInfoTag{
		ProductID:   productID,
		Edition:     edition,
		Version:     ProductVersion{Major: major, Minor: minor},
		Build:       build,
		CompileDate: compileDate,
	}, nil
}

func writeProductInfoTag(w *StreamWriter, t ProductInfoTag) {
	w.WriteU32(t.ProductID)
	w.WriteU32(t.Edition)
	w.WriteU8(t.Version.Major)
	w.WriteU8(t.Version.Minor)
	w.WriteU64(t.Build)
	w.WriteU64(t.CompileDate)
}

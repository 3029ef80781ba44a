// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package rabc

// FileAttributes is the bitfield carried by FileAttributesTag.
type FileAttributes uint8

const (
	FileAttrUseNetwork    FileAttributes = 0x01
	FileAttrActionScript3 FileAttributes = 0x08
	FileAttrHasMetadata   FileAttributes = 0x10
	FileAttrUseGPU        FileAttributes = 0x20
	FileAttrUseDirectBlit FileAttributes = 0x40
)

// FileAttributesTag declares properties of the SWF file as a whole; every
// AVM2 movie must carry one with ActionScript3 set.
type FileAttributesTag struct {
	Flags FileAttributes
}

func (FileAttributesTag) ID() uint16 { return uint16(TagIDFileAttributes) }

// UseDirectBlit reports whether the player should blit graphics to the
// screen using hardware acceleration, if available.
func (t FileAttributesTag) UseDirectBlit() bool { return t.Flags&FileAttrUseDirectBlit != 0 }

// UseGPU reports whether the player should use GPU compositing, if available.
func (t FileAttributesTag) UseGPU() bool { return t.Flags&FileAttrUseGPU != 0 }

// HasMetadata reports whether the movie carries a MetadataTag.
func (t FileAttributesTag) HasMetadata() bool { return t.Flags&FileAttrHasMetadata != 0 }

// UseActionScript3 reports whether the movie's code is AVM2 bytecode.
func (t FileAttributesTag) UseActionScript3() bool { return t.Flags&FileAttrActionScript3 != 0 }

// UseNetwork reports whether a locally-run file may access the network.
func (t FileAttributesTag) UseNetwork() bool { return t.Flags&FileAttrUseNetwork != 0 }

func readFileAttributesTag(r *StreamReader) (FileAttributesTag, error) {
	b, err := r.ReadU8()
	if err != nil {
		return FileAttributesTag{}, err
	}
	if _, err := r.ReadI24(); err != nil {
		return FileAttributesTag{}, err
	}
	return FileAttributesTag{Flags: FileAttributes(b)}, nil
}

func writeFileAttributesTag(w *StreamWriter, t FileAttributesTag) {
	w.WriteU8(uint8(t.Flags))
	w.WriteI24(0)
}

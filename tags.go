// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package rabc

// TagID identifies the kind of a Tag on the wire.
type TagID uint16

// Known tag kinds. TagIDUnknown is a sentinel for any id not in this list;
// it never appears literally on the wire.
const (
	TagIDEnd                TagID = 0x00
	TagIDSetBackgroundColor TagID = 0x09
	TagIDProductInfo        TagID = 0x29
	TagIDScriptLimits       TagID = 0x41
	TagIDFileAttributes     TagID = 0x45
	TagIDSymbolClass        TagID = 0x4C
	TagIDMetadata           TagID = 0x4D
	TagIDDoABC              TagID = 0x52
	TagIDDefineBinaryData   TagID = 0x57
	TagIDUnknown            TagID = 0x3ff
)

// tagIDFromU16 maps a wire tag id to its TagID, defaulting to
// TagIDUnknown for anything not recognized.
func tagIDFromU16(id uint16) TagID {
	switch id {
	case 0x00:
		return TagIDEnd
	case 0x09:
		return TagIDSetBackgroundColor
	case 0x29:
		return TagIDProductInfo
	case 0x41:
		return TagIDScriptLimits
	case 0x45:
		return TagIDFileAttributes
	case 0x4C:
		return TagIDSymbolClass
	case 0x4D:
		return TagIDMetadata
	case 0x52:
		return TagIDDoABC
	case 0x57:
		return TagIDDefineBinaryData
	default:
		return TagIDUnknown
	}
}

func (id TagID) String() string {
	switch id {
	case TagIDEnd:
		return "EndTag"
	case TagIDSetBackgroundColor:
		return "SetBackgroundColorTag"
	case TagIDProductInfo:
		return "ProductInfoTag"
	case TagIDScriptLimits:
		return "ScriptLimitsTag"
	case TagIDFileAttributes:
		return "FileAttributesTag"
	case TagIDSymbolClass:
		return "SymbolClassTag"
	case TagIDMetadata:
		return "MetadataTag"
	case TagIDDoABC:
		return "DoABCTag"
	case TagIDDefineBinaryData:
		return "DefineBinaryDataTag"
	default:
		return "UnknownTag"
	}
}

// Tag is any of the tag kinds a Movie's frame can hold.
type Tag interface {
	// ID returns the tag's wire id. For UnknownTag this is the raw id
	// that was present on the wire; for every other kind it is the
	// TagID constant for that kind.
	ID() uint16
}

// readTag dispatches on kind to read one tag's body. The caller has
// already consumed the tag header and is responsible for Unknown tags,
// which are read with readUnknownTag instead of going through here.
func readTag(kind TagID, r *StreamReader) (Tag, error) {
	switch kind {
	case TagIDDefineBinaryData:
		return readDefineBinaryDataTag(r)
	case TagIDDoABC:
		return readDoABCTag(r)
	case TagIDEnd:
		return readEndTag(r)
	case TagIDFileAttributes:
		return readFileAttributesTag(r)
	case TagIDMetadata:
		return readMetadataTag(r)
	case TagIDProductInfo:
		return readProductInfoTag(r)
	case TagIDScriptLimits:
		return readScriptLimitsTag(r)
	case TagIDSetBackgroundColor:
		return readSetBackgroundColorTag(r)
	case TagIDSymbolClass:
		return readSymbolClassTag(r)
	default:
		panic("readTag: unsupported kind " + kind.String())
	}
}

// writeTag dispatches on tag's concrete type to render its body.
func writeTag(w *StreamWriter, tag Tag, m *Movie) {
	switch t := tag.(type) {
	case DefineBinaryDataTag:
		writeDefineBinaryDataTag(w, t)
	case DoABCTag:
		writeDoABCTag(w, t)
	case EndTag:
		writeEndTag(w, t)
	case FileAttributesTag:
		writeFileAttributesTag(w, t)
	case MetadataTag:
		writeMetadataTag(w, t)
	case ProductInfoTag:
		writeProductInfoTag(w, t)
	case ScriptLimitsTag:
		writeScriptLimitsTag(w, t)
	case SetBackgroundColorTag:
		writeSetBackgroundColorTag(w, t)
	case SymbolClassTag:
		writeSymbolClassTag(w, m)
	case UnknownTag:
		writeUnknownTag(w, t)
	}
}

// tagIDOf returns the wire id to use when framing tag.
func tagIDOf(tag Tag) uint16 {
	if u, ok := tag.(UnknownTag); ok {
		return u.id
	}
	return tag.ID()
}

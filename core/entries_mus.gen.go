// Code generated by musgen-go. DO NOT EDIT.

package core

import (
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"
)

var (
	slice3gMlmSΔhIe1ZXqΣDsTvbkwΞΞ = ord.NewSliceSer[float32](varint.Float32)
)

var EntryMetadataMUS = entryMetadataMUS{}

type entryMetadataMUS struct{}

func (s entryMetadataMUS) Marshal(v EntryMetadata, bs []byte) (n int) {
	n = ord.String.Marshal(v.Name, bs)
	n += varint.Int64.Marshal(v.PriceMin, bs[n:])
	n += varint.Int64.Marshal(v.PriceMax, bs[n:])
	n += ord.String.Marshal(v.Category, bs[n:])
	n += ord.String.Marshal(v.Brand, bs[n:])
	n += ord.String.Marshal(v.Source, bs[n:])
	n += ord.String.Marshal(v.URL, bs[n:])
	n += ord.String.Marshal(v.Image, bs[n:])
	n += ord.String.Marshal(v.Warranty, bs[n:])
	n += ord.String.Marshal(v.Processor, bs[n:])
	n += ord.String.Marshal(v.RAM, bs[n:])
	n += ord.String.Marshal(v.Storage, bs[n:])
	return n + ord.String.Marshal(v.Graphics, bs[n:])
}

func (s entryMetadataMUS) Unmarshal(bs []byte) (v EntryMetadata, n int, err error) {
	v.Name, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.PriceMin, n1, err = varint.Int64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.PriceMax, n1, err = varint.Int64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Category, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Brand, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Source, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.URL, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Image, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Warranty, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Processor, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.RAM, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Storage, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Graphics, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	return
}

func (s entryMetadataMUS) Size(v EntryMetadata) (size int) {
	size = ord.String.Size(v.Name)
	size += varint.Int64.Size(v.PriceMin)
	size += varint.Int64.Size(v.PriceMax)
	size += ord.String.Size(v.Category)
	size += ord.String.Size(v.Brand)
	size += ord.String.Size(v.Source)
	size += ord.String.Size(v.URL)
	size += ord.String.Size(v.Image)
	size += ord.String.Size(v.Warranty)
	size += ord.String.Size(v.Processor)
	size += ord.String.Size(v.RAM)
	size += ord.String.Size(v.Storage)
	return size + ord.String.Size(v.Graphics)
}

func (s entryMetadataMUS) Skip(bs []byte) (n int, err error) {
	n, err = ord.String.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = varint.Int64.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Int64.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	return
}

var IndexEntryMUS = indexEntryMUS{}

type indexEntryMUS struct{}

func (s indexEntryMUS) Marshal(v IndexEntry, bs []byte) (n int) {
	n = ord.String.Marshal(v.Id, bs)
	n += slice3gMlmSΔhIe1ZXqΣDsTvbkwΞΞ.Marshal(v.Vector, bs[n:])
	return n + EntryMetadataMUS.Marshal(v.Metadata, bs[n:])
}

func (s indexEntryMUS) Unmarshal(bs []byte) (v IndexEntry, n int, err error) {
	v.Id, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Vector, n1, err = slice3gMlmSΔhIe1ZXqΣDsTvbkwΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Metadata, n1, err = EntryMetadataMUS.Unmarshal(bs[n:])
	n += n1
	return
}

func (s indexEntryMUS) Size(v IndexEntry) (size int) {
	size = ord.String.Size(v.Id)
	size += slice3gMlmSΔhIe1ZXqΣDsTvbkwΞΞ.Size(v.Vector)
	return size + EntryMetadataMUS.Size(v.Metadata)
}

func (s indexEntryMUS) Skip(bs []byte) (n int, err error) {
	n, err = ord.String.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = slice3gMlmSΔhIe1ZXqΣDsTvbkwΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = EntryMetadataMUS.Skip(bs[n:])
	n += n1
	return
}

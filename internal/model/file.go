package model

import "strings"

// FileKind is the display category of an attached file.
type FileKind int

const (
	FileGeneric FileKind = iota
	FilePDF
	FileWord
	FileExcel
	FileImage
)

func (k FileKind) String() string {
	switch k {
	case FilePDF:
		return "pdf"
	case FileWord:
		return "word"
	case FileExcel:
		return "excel"
	case FileImage:
		return "image"
	}
	return "file"
}

// Icon is a one-cell glyph for the kind.
func (k FileKind) Icon() string {
	switch k {
	case FilePDF:
		return "▤"
	case FileWord:
		return "▦"
	case FileExcel:
		return "▥"
	case FileImage:
		return "▣"
	}
	return "□"
}

// ClassifyFile derives a FileKind from whatever follows the last dot of
// name (the whole name when there is no dot).
func ClassifyFile(name string) FileKind {
	ext := name
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		ext = name[i+1:]
	}
	ext = strings.ToLower(ext)
	switch ext {
	case "pdf":
		return FilePDF
	case "doc", "docx":
		return FileWord
	case "xls", "xlsx":
		return FileExcel
	case "jpg", "png", "gif":
		return FileImage
	}
	return FileGeneric
}

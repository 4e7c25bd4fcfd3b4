package apitype

import (
	"path/filepath"
	"strings"
)

type ImageFile struct {
	directory string
	filename  string
	path      string
}

var (
	EmptyImageFile       = ImageFile{path: ""}
	supportedFileEndings = map[string]bool{".png": true, ".jpg": true, ".jpeg": true, ".bmp": true}
)

func NewImageFile(fileDir string, fileName string) *ImageFile {
	if fileDir == "" && fileName == "" {
		return &ImageFile{}
	}
	return &ImageFile{
		directory: fileDir,
		filename:  fileName,
		path:      filepath.Join(fileDir, fileName),
	}
}

// NewImageFileFromPath splits an arbitrary path into directory and file name.
func NewImageFileFromPath(path string) *ImageFile {
	return NewImageFile(filepath.Dir(path), filepath.Base(path))
}

func GetEmptyImageFile() *ImageFile {
	return &EmptyImageFile
}

func (s *ImageFile) IsValid() bool {
	return s != nil && s.path != ""
}

func (s *ImageFile) String() string {
	if s != nil {
		if s.IsValid() {
			return "ImageFile{" + s.filename + "}"
		} else {
			return "ImageFile<invalid>"
		}
	} else {
		return "ImageFile<nil>"
	}
}

func (s *ImageFile) Path() string {
	if s != nil {
		return s.path
	} else {
		return ""
	}
}

func (s *ImageFile) Directory() string {
	if s != nil {
		return s.directory
	} else {
		return ""
	}
}

func (s *ImageFile) FileName() string {
	if s != nil {
		return s.filename
	} else {
		return ""
	}
}

func (s *ImageFile) Extension() string {
	return strings.ToLower(filepath.Ext(s.FileName()))
}

// IsSupported checks the extension (with the leading dot) case-insensitively.
func IsSupported(extension string) bool {
	return supportedFileEndings[strings.ToLower(extension)]
}

package apitype

// ImageList is the fixed, ordered set of images of one slideshow run with a
// cyclic cursor. It is built once and never refreshed.
type ImageList struct {
	imageFiles []*ImageFile
	index      int
}

func NewImageList(imageFiles []*ImageFile) *ImageList {
	return &ImageList{
		imageFiles: imageFiles,
		index:      0,
	}
}

func (s *ImageList) Len() int {
	return len(s.imageFiles)
}

func (s *ImageList) IsEmpty() bool {
	return len(s.imageFiles) == 0
}

func (s *ImageList) Get(index int) *ImageFile {
	if index < 0 || index >= len(s.imageFiles) {
		return GetEmptyImageFile()
	}
	return s.imageFiles[index]
}

func (s *ImageList) Paths() []string {
	paths := make([]string, len(s.imageFiles))
	for i, imageFile := range s.imageFiles {
		paths[i] = imageFile.Path()
	}
	return paths
}

// IndexOf returns the position of the path in the list or -1.
func (s *ImageList) IndexOf(path string) int {
	for i, imageFile := range s.imageFiles {
		if imageFile.Path() == path {
			return i
		}
	}
	return -1
}

// Index is the position Next will return.
func (s *ImageList) Index() int {
	return s.index
}

// Seek moves the cursor. The index wraps around the list length.
func (s *ImageList) Seek(index int) {
	if len(s.imageFiles) == 0 {
		s.index = 0
		return
	}
	s.index = ((index % len(s.imageFiles)) + len(s.imageFiles)) % len(s.imageFiles)
}

// Next returns the image under the cursor and its index, then advances the
// cursor, wrapping to the first image after the last one.
func (s *ImageList) Next() (*ImageFile, int) {
	if len(s.imageFiles) == 0 {
		return GetEmptyImageFile(), -1
	}
	index := s.index
	s.index = (s.index + 1) % len(s.imageFiles)
	return s.imageFiles[index], index
}

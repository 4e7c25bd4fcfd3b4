package slideshow

import (
	"image"
	"sync"
	"vincit.fi/eink-slideshow/common/logger"
)

// FrameCache keeps normalized frames by image path. When full, the frame
// that was added first is dropped.
type FrameCache struct {
	frames    map[string]image.Image
	order     []string
	maxFrames int
	mux       sync.Mutex
}

func NewFrameCache(maxFrames int) *FrameCache {
	logger.Debug.Printf("Initialize frame cache for %d frames...", maxFrames)
	return &FrameCache{
		frames:    map[string]image.Image{},
		maxFrames: maxFrames,
	}
}

func (s *FrameCache) Get(path string) (image.Image, bool) {
	s.mux.Lock()
	defer s.mux.Unlock()
	frame, found := s.frames[path]
	return frame, found
}

func (s *FrameCache) Put(path string, frame image.Image) {
	s.mux.Lock()
	defer s.mux.Unlock()
	if s.maxFrames <= 0 {
		return
	}
	if _, found := s.frames[path]; !found {
		for len(s.order) >= s.maxFrames {
			oldest := s.order[0]
			s.order = s.order[1:]
			delete(s.frames, oldest)
			logger.Trace.Printf("Dropped '%s' from frame cache", oldest)
		}
		s.order = append(s.order, path)
	}
	s.frames[path] = frame
}

func (s *FrameCache) Len() int {
	s.mux.Lock()
	defer s.mux.Unlock()
	return len(s.frames)
}

func (s *FrameCache) Purge() {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.frames = map[string]image.Image{}
	s.order = nil
}

// ByteSize estimates the memory used assuming four bytes per pixel.
func (s *FrameCache) ByteSize() (byteSize uint64) {
	s.mux.Lock()
	defer s.mux.Unlock()
	for _, frame := range s.frames {
		byteSize += uint64(frame.Bounds().Dx() * frame.Bounds().Dy() * 4)
	}
	return
}

func (s *FrameCache) SizeInMB() float64 {
	return float64(s.ByteSize()) / (1024 * 1024)
}

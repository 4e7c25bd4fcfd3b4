package library

import (
	"os"
	"path/filepath"
	"sort"
	"vincit.fi/eink-slideshow/api/apitype"
	"vincit.fi/eink-slideshow/common/logger"
	"vincit.fi/eink-slideshow/common/util"
)

// LoadImageList scans dir (not recursively) for supported images and returns
// them sorted by path.
func LoadImageList(dir string) (*apitype.ImageList, error) {
	if !util.IsDirectory(dir) {
		return nil, apitype.NewConfigurationError("image directory does not exist: %s", dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, apitype.NewConfigurationError("could not read image directory %s: %s", dir, err)
	}

	logger.Debug.Printf("Scanning directory '%s'", dir)
	var imageFiles []*apitype.ImageFile
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if apitype.IsSupported(filepath.Ext(entry.Name())) {
			imageFiles = append(imageFiles, apitype.NewImageFile(dir, entry.Name()))
		} else {
			logger.Trace.Printf(" - skipping '%s'", entry.Name())
		}
	}

	if len(imageFiles) == 0 {
		return nil, apitype.NewConfigurationError("no images found in %s", dir)
	}

	sort.Slice(imageFiles, func(i, j int) bool {
		return imageFiles[i].Path() < imageFiles[j].Path()
	})
	logger.Debug.Printf("Found %d images", len(imageFiles))

	return apitype.NewImageList(imageFiles), nil
}

package imageloader

import (
	"image"
	"os"
	"vincit.fi/eink-slideshow/api"
	"vincit.fi/eink-slideshow/api/apitype"
	"vincit.fi/eink-slideshow/common/logger"
)

func NewImageLoader(exifOrientation bool) api.ImageLoader {
	logger.Debug.Printf("Initializing image loader (%s decoder, exif orientation %t)...", decoderName, exifOrientation)
	return &FileImageLoader{
		exifOrientation: exifOrientation,
	}
}

type FileImageLoader struct {
	exifOrientation bool

	api.ImageLoader
}

func (s *FileImageLoader) LoadImage(imageFile *apitype.ImageFile) (image.Image, error) {
	if !imageFile.IsValid() {
		return nil, apitype.NewDecodeError(imageFile.String(), nil)
	}

	file, err := os.Open(imageFile.Path())
	if err != nil {
		return nil, apitype.NewDecodeError(imageFile.Path(), err)
	}
	defer file.Close()

	loadedImage, err := decodeImage(imageFile, file)
	if err != nil {
		logger.Error.Printf("Could not decode '%s': %s", imageFile.Path(), err)
		return nil, apitype.NewDecodeError(imageFile.Path(), err)
	}
	logger.Trace.Printf("'%s': decoded %dx%d", imageFile.Path(), loadedImage.Bounds().Dx(), loadedImage.Bounds().Dy())

	if s.exifOrientation {
		if exifData, err := s.LoadExifData(imageFile); err != nil {
			logger.Debug.Printf("No usable exif orientation in '%s': %s", imageFile.Path(), err)
		} else {
			loadedImage = apitype.ExifRotateImage(loadedImage, exifData)
		}
	}
	return loadedImage, nil
}

func (s *FileImageLoader) LoadExifData(imageFile *apitype.ImageFile) (*apitype.ExifData, error) {
	fileForExif, err := os.Open(imageFile.Path())
	if fileForExif != nil && err == nil {
		defer fileForExif.Close()
		return apitype.DecodeExifData(fileForExif)
	} else {
		return apitype.NewInvalidExifData(), err
	}
}

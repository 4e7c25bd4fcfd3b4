package backend

import (
	"context"
	"errors"
	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"
	"vincit.fi/eink-slideshow/api/apitype"
	"vincit.fi/eink-slideshow/backend/internal/database"
	"vincit.fi/eink-slideshow/common/config"
)

func testConfig(t *testing.T) (*config.DeviceConfig, string) {
	dir := t.TempDir()
	imageDir := filepath.Join(dir, "images")
	require.Nil(t, os.MkdirAll(imageDir, 0755))
	require.Nil(t, imaging.Save(imaging.New(80, 20, color.Black), filepath.Join(imageDir, "a.png")))
	require.Nil(t, imaging.Save(imaging.New(20, 80, color.Black), filepath.Join(imageDir, "b.png")))

	values := config.DefaultValues()
	values.ImageDir = imageDir
	values.Interval = 10 * time.Millisecond
	values.Resolution = config.ResolutionValues{Width: 60, Height: 40}
	values.Startup = true
	values.Database = filepath.Join(dir, "status.db")
	values.CurrentImageFile = filepath.Join(dir, "current.png")
	values.Display.PreviewFile = filepath.Join(dir, "preview.png")
	return config.NewDeviceConfig(filepath.Join(dir, "config.yaml"), values), dir
}

func TestRunSlideshow(t *testing.T) {
	a := assert.New(t)
	r := require.New(t)

	deviceConfig, dir := testConfig(t)
	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	err := RunSlideshow(ctx, deviceConfig, 10)
	r.Nil(err)

	t.Run("Startup flag is persisted", func(t *testing.T) {
		reloaded, err := config.Load(filepath.Join(dir, "config.yaml"))
		r.Nil(err)
		a.False(reloaded.GetStartupFlag())
	})
	t.Run("Frames are written", func(t *testing.T) {
		preview, err := imaging.Open(filepath.Join(dir, "preview.png"))
		r.Nil(err)
		a.Equal(60, preview.Bounds().Dx())
		a.Equal(40, preview.Bounds().Dy())

		current, err := imaging.Open(filepath.Join(dir, "current.png"))
		r.Nil(err)
		a.Equal(preview.Bounds(), current.Bounds())
	})
	t.Run("Status is recorded", func(t *testing.T) {
		db := database.NewDatabase()
		r.Nil(db.InitializeForFile(filepath.Join(dir, "status.db")))
		defer db.Close()

		frame, err := database.NewFrameStore(db).LatestFrame()
		r.Nil(err)
		r.NotNil(frame)
		a.Contains([]string{
			filepath.Join(dir, "images", "a.png"),
			filepath.Join(dir, "images", "b.png"),
		}, frame.Path)
	})
}

func TestRunSlideshow_MissingImageDir(t *testing.T) {
	a := assert.New(t)

	deviceConfig, dir := testConfig(t)
	a.Nil(deviceConfig.UpdateValue("image_dir", filepath.Join(dir, "missing"), false))

	err := RunSlideshow(context.Background(), deviceConfig, 10)

	a.True(errors.Is(err, apitype.ErrConfiguration))
}

func TestShowImage(t *testing.T) {
	a := assert.New(t)
	r := require.New(t)

	deviceConfig, dir := testConfig(t)

	r.Nil(ShowImage(deviceConfig, filepath.Join(dir, "images", "a.png")))
	preview, err := imaging.Open(filepath.Join(dir, "preview.png"))
	r.Nil(err)
	a.Equal(60, preview.Bounds().Dx())

	err = ShowImage(deviceConfig, filepath.Join(dir, "images", "missing.png"))
	a.True(errors.Is(err, apitype.ErrDecode))
}

func TestListImages(t *testing.T) {
	a := assert.New(t)

	deviceConfig, dir := testConfig(t)

	paths, err := ListImages(deviceConfig.Values().ImageDir)

	a.Nil(err)
	a.Equal([]string{
		filepath.Join(dir, "images", "a.png"),
		filepath.Join(dir, "images", "b.png"),
	}, paths)
}

func TestInitializeStores_InMemory(t *testing.T) {
	a := assert.New(t)
	r := require.New(t)

	stores, err := InitializeStores("")
	r.Nil(err)
	defer stores.Close()

	_, found, err := stores.StatusStore.GetValue(database.LastImagePath)
	a.Nil(err)
	a.False(found)
}

package library

import (
	"errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"testing"
	"vincit.fi/eink-slideshow/api/apitype"
)

func touch(t *testing.T, dir string, name string) {
	require.Nil(t, os.WriteFile(filepath.Join(dir, name), []byte{}, 0644))
}

func TestLoadImageList_SortsAndFilters(t *testing.T) {
	a := assert.New(t)
	r := require.New(t)

	dir := t.TempDir()
	touch(t, dir, "b.png")
	touch(t, dir, "A.JPG")
	touch(t, dir, "c.txt")

	list, err := LoadImageList(dir)
	r.Nil(err)

	a.Equal([]string{filepath.Join(dir, "A.JPG"), filepath.Join(dir, "b.png")}, list.Paths())
}

func TestLoadImageList_ExtensionCaseInsensitive(t *testing.T) {
	a := assert.New(t)
	r := require.New(t)

	dir := t.TempDir()
	for _, name := range []string{"1.jpeg", "2.JPEG", "3.Bmp", "4.PNG", "5.gif", "6.jpg.txt", "7"} {
		touch(t, dir, name)
	}

	list, err := LoadImageList(dir)
	r.Nil(err)

	a.Equal(4, list.Len())
	a.Equal("1.jpeg", list.Get(0).FileName())
	a.Equal("4.PNG", list.Get(3).FileName())
}

func TestLoadImageList_IgnoresSubDirectories(t *testing.T) {
	a := assert.New(t)
	r := require.New(t)

	dir := t.TempDir()
	touch(t, dir, "a.png")
	r.Nil(os.Mkdir(filepath.Join(dir, "nested.png"), 0755))
	touch(t, filepath.Join(dir, "nested.png"), "b.png")

	list, err := LoadImageList(dir)
	r.Nil(err)

	a.Equal(1, list.Len())
}

func TestLoadImageList_MissingDirectory(t *testing.T) {
	_, err := LoadImageList(filepath.Join(t.TempDir(), "does-not-exist"))

	require.True(t, errors.Is(err, apitype.ErrConfiguration))
}

func TestLoadImageList_NoImages(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "notes.txt")

	_, err := LoadImageList(dir)

	require.True(t, errors.Is(err, apitype.ErrConfiguration))
}

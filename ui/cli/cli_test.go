package cli

import (
	"bytes"
	"errors"
	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
	"vincit.fi/eink-slideshow/api/apitype"
)

func TestListCommand(t *testing.T) {
	a := assert.New(t)
	r := require.New(t)

	dir := t.TempDir()
	r.Nil(imaging.Save(imaging.New(4, 4, color.White), filepath.Join(dir, "b.png")))
	r.Nil(imaging.Save(imaging.New(4, 4, color.White), filepath.Join(dir, "A.JPG")))
	r.Nil(os.WriteFile(filepath.Join(dir, "c.txt"), []byte("text"), 0644))

	out := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(out)
	cmd.SetArgs([]string{"list", "--config", filepath.Join(dir, "missing.yaml"), "--dir", dir, "--log-level", "error"})

	r.Nil(cmd.Execute())
	a.Equal([]string{filepath.Join(dir, "A.JPG"), filepath.Join(dir, "b.png")}, strings.Fields(out.String()))
}

func TestListCommand_MissingDirectory(t *testing.T) {
	a := assert.New(t)

	dir := t.TempDir()
	cmd := NewRootCommand()
	cmd.SetArgs([]string{"list", "--config", filepath.Join(dir, "missing.yaml"), "--dir", filepath.Join(dir, "nope"), "--log-level", "error"})

	err := cmd.Execute()

	a.True(errors.Is(err, apitype.ErrConfiguration))
}

func TestShowCommand_RequiresImage(t *testing.T) {
	a := assert.New(t)

	cmd := NewRootCommand()
	cmd.SetArgs([]string{"show"})
	cmd.SetErr(&bytes.Buffer{})

	a.NotNil(cmd.Execute())
}

func TestParamsFromFlags(t *testing.T) {
	a := assert.New(t)
	r := require.New(t)

	root := NewRootCommand()
	runCmd, _, err := root.Find([]string{"run"})
	r.Nil(err)
	r.Nil(runCmd.ParseFlags([]string{"--dir", "/photos", "--interval", "90s"}))

	params := paramsFromFlags(runCmd)

	a.Equal("/photos", params.ImageDir())
	a.Equal(90*time.Second, params.Interval())
}

package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var audioExts = []string{".mp3", ".flac"}

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
}

func TestFindAudioFiles(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "a.mp3"))
	touch(t, filepath.Join(dir, "b.FLAC"))
	touch(t, filepath.Join(dir, "cover.jpg"))
	touch(t, filepath.Join(dir, "disc2", "c.mp3"))

	files, err := FindAudioFiles(dir, false, audioExts)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a.mp3"),
		filepath.Join(dir, "b.FLAC"),
	}, files)

	files, err = FindAudioFiles(dir, true, audioExts)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a.mp3"),
		filepath.Join(dir, "b.FLAC"),
		filepath.Join(dir, "disc2", "c.mp3"),
	}, files)

	files, err = FindAudioFiles(dir, true, []string{".flac"})
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "b.FLAC")}, files)
}

func TestFindAudioFilesMissingDir(t *testing.T) {
	_, err := FindAudioFiles(filepath.Join(t.TempDir(), "missing"), false, audioExts)
	assert.Error(t, err)
}

func TestValidateAudioFile(t *testing.T) {
	dir := t.TempDir()
	song := filepath.Join(dir, "song.mp3")
	touch(t, song)
	notes := filepath.Join(dir, "notes.txt")
	touch(t, notes)

	assert.NoError(t, ValidateAudioFile(song, audioExts))
	assert.Error(t, ValidateAudioFile(notes, audioExts))
	assert.Error(t, ValidateAudioFile(filepath.Join(dir, "missing.mp3"), audioExts))
	assert.Error(t, ValidateAudioFile(dir, audioExts))
}

func TestQuoted(t *testing.T) {
	assert.Equal(t, `"Song (ft. X)"`, Quoted("Song (ft. X)"))
	assert.Equal(t, `""`, Quoted(""))
}

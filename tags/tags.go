package tags

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/h2non/filetype"
	"github.com/h2non/filetype/types"
	"github.com/sirupsen/logrus"
)

var (
	ErrNoTitle           = errors.New("no title tag")
	ErrUnsupportedFormat = errors.New("unsupported audio format")
)

type Format string

const (
	FormatUnknown Format = ""
	FormatMP3     Format = "mp3"
	FormatFLAC    Format = "flac"
)

// SupportedExtensions lists the file extensions a TitleEditor can handle.
var SupportedExtensions = []string{".mp3", ".flac"}

type TitleEditor interface {
	ReadTitle(filePath string) (string, error)
	WriteTitle(filePath, title string) error
}

type containerEditor interface {
	readTitle(filePath string) (string, error)
	writeTitle(filePath, title string) error
}

type titleEditor struct {
	editors map[Format]containerEditor
}

func NewTitleEditor() TitleEditor {
	return &titleEditor{
		editors: map[Format]containerEditor{
			FormatMP3:  mp3Editor{},
			FormatFLAC: flacEditor{},
		},
	}
}

func (te *titleEditor) ReadTitle(filePath string) (string, error) {
	ed, err := te.editorFor(filePath)
	if err != nil {
		return "", err
	}

	title, err := ed.readTitle(filePath)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(title) == "" {
		return "", fmt.Errorf("%s: %w", filepath.Base(filePath), ErrNoTitle)
	}
	return title, nil
}

func (te *titleEditor) WriteTitle(filePath, title string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("refusing to write empty title: %w", ErrNoTitle)
	}

	ed, err := te.editorFor(filePath)
	if err != nil {
		return err
	}
	return ed.writeTitle(filePath, title)
}

func (te *titleEditor) editorFor(filePath string) (containerEditor, error) {
	format, err := DetectFormat(filePath)
	if err != nil {
		return nil, err
	}
	ed, ok := te.editors[format]
	if !ok {
		return nil, fmt.Errorf("%s: %w", filepath.Base(filePath), ErrUnsupportedFormat)
	}
	return ed, nil
}

// DetectFormat sniffs the container from the file header and falls back to
// the extension when the header is not recognized (e.g. an MP3 without an
// ID3 tag or frame sync at offset zero).
func DetectFormat(filePath string) (Format, error) {
	kind, err := filetype.MatchFile(filePath)
	if err != nil {
		if _, statErr := os.Stat(filePath); statErr != nil {
			return FormatUnknown, fmt.Errorf("failed to open file: %w", statErr)
		}
		kind = types.Unknown
	}

	switch kind.Extension {
	case "mp3":
		return FormatMP3, nil
	case "flac":
		return FormatFLAC, nil
	}

	if kind != types.Unknown {
		logrus.Debugf("%s detected as %s, trying extension", filepath.Base(filePath), kind.MIME.Value)
	}

	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".mp3":
		return FormatMP3, nil
	case ".flac":
		return FormatFLAC, nil
	}
	return FormatUnknown, fmt.Errorf("%s: %w", filepath.Base(filePath), ErrUnsupportedFormat)
}

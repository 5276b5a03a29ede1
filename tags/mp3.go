package tags

import (
	"fmt"

	"github.com/bogem/id3v2/v2"
)

type mp3Editor struct{}

func (mp3Editor) readTitle(filePath string) (string, error) {
	tag, err := id3v2.Open(filePath, id3v2.Options{Parse: true})
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer tag.Close()

	return tag.Title(), nil
}

func (mp3Editor) writeTitle(filePath, title string) error {
	tag, err := id3v2.Open(filePath, id3v2.Options{Parse: true})
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer tag.Close()

	tag.SetDefaultEncoding(id3v2.EncodingUTF8)
	tag.SetTitle(title)

	if err := tag.Save(); err != nil {
		return fmt.Errorf("failed to save tags: %w", err)
	}
	return nil
}

package tags

import (
	"fmt"
	"strings"

	"github.com/go-flac/flacvorbis"
	"github.com/go-flac/go-flac"
)

type flacEditor struct{}

func (flacEditor) readTitle(filePath string) (string, error) {
	f, err := flac.ParseFile(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to parse FLAC file: %w", err)
	}

	cmts, _, err := findVorbisComment(f)
	if err != nil || cmts == nil {
		return "", err
	}

	titles, err := cmts.Get(flacvorbis.FIELD_TITLE)
	if err != nil || len(titles) == 0 {
		return "", nil
	}
	return titles[0], nil
}

func (flacEditor) writeTitle(filePath, title string) error {
	f, err := flac.ParseFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to parse FLAC file: %w", err)
	}

	cmts, idx, err := findVorbisComment(f)
	if err != nil {
		return err
	}
	if cmts == nil {
		cmts = flacvorbis.New()
	}

	// Add appends, so existing TITLE values are dropped first
	kept := cmts.Comments[:0]
	for _, c := range cmts.Comments {
		key, _, _ := strings.Cut(c, "=")
		if !strings.EqualFold(key, flacvorbis.FIELD_TITLE) {
			kept = append(kept, c)
		}
	}
	cmts.Comments = kept

	if err := cmts.Add(flacvorbis.FIELD_TITLE, title); err != nil {
		return fmt.Errorf("failed to set title comment: %w", err)
	}

	block := cmts.Marshal()
	if idx >= 0 {
		f.Meta[idx] = &block
	} else {
		f.Meta = append(f.Meta, &block)
	}

	if err := f.Save(filePath); err != nil {
		return fmt.Errorf("failed to save FLAC file: %w", err)
	}
	return nil
}

func findVorbisComment(f *flac.File) (*flacvorbis.MetaDataBlockVorbisComment, int, error) {
	for idx, meta := range f.Meta {
		if meta.Type != flac.VorbisComment {
			continue
		}
		cmts, err := flacvorbis.ParseFromMetaDataBlock(*meta)
		if err != nil {
			return nil, -1, fmt.Errorf("failed to parse vorbis comment: %w", err)
		}
		return cmts, idx, nil
	}
	return nil, -1, nil
}

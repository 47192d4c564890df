package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/chatterbox-app/chatterbox/internal/client/repository"
)

// maxRecordingSize bounds the upload at 50 MiB, matching the backend
// limit for a single recording.
const maxRecordingSize = 50 << 20

var contentTypes = map[string]string{
	".m4a": "audio/mp4",
	".mp3": "audio/mpeg",
	".wav": "audio/wav",
}

func (c *Cli) runRecord(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: chatterbox record <file>")
	}
	path := args[0]

	contentType, ok := contentTypes[filepath.Ext(path)]
	if !ok {
		return fmt.Errorf("unsupported file type %q, expected .m4a, .mp3 or .wav", filepath.Ext(path))
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat recording: %w", err)
	}
	if info.Size() == 0 {
		return fmt.Errorf("recording file is empty")
	}
	if info.Size() > maxRecordingSize {
		return fmt.Errorf("recording exceeds the %d MiB limit", maxRecordingSize>>20)
	}

	cueID, err := readInput("Cue id: ")
	if err != nil {
		return fmt.Errorf("failed to read cue id: %w", err)
	}
	if cueID == "" {
		return fmt.Errorf("cue id cannot be empty")
	}

	fmt.Println()
	fmt.Println("Requesting upload...")

	intent, err := c.recordings.CreateUploadIntent(ctx,
		cueID, filepath.Base(path), contentType, info.Size(), 0)
	if err != nil {
		return err
	}

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open recording: %w", err)
	}
	defer file.Close()

	fmt.Println("Uploading...")

	if err := c.uploader.UploadFile(ctx, intent.UploadURL, contentType, file, info.Size()); err != nil {
		return fmt.Errorf("upload failed: %w", err)
	}

	recordingID, err := c.recordings.CompleteUploadIntent(ctx, intent.IntentID)
	if err != nil {
		if errors.Is(err, repository.ErrUploadExpired) {
			return fmt.Errorf("the upload took too long and expired, try again")
		}
		return err
	}

	fmt.Println()
	fmt.Println("✓ Recording uploaded!")
	fmt.Printf("Recording id: %s\n", recordingID)
	fmt.Println("Transcription starts shortly. Check 'chatterbox history' for progress.")

	return nil
}

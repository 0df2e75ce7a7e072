package gen

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/renameio/v2"
)

const (
	fileMode = 0o644
	dirMode  = 0o755
)

// Emit writes resp.Source. With no output the source goes to w verbatim;
// local paths are replaced atomically and URLs are uploaded through afs.
func (s *Service) Emit(ctx context.Context, resp *Response, w io.Writer) error {
	switch {
	case resp.Output == "":
		if w == nil {
			return nil
		}
		if _, err := io.WriteString(w, resp.Source); err != nil {
			return fmt.Errorf("write source: %w", err)
		}
		return nil
	case isURL(resp.Output):
		if err := s.fs.Upload(ctx, resp.Output, fileMode, strings.NewReader(resp.Source)); err != nil {
			return fmt.Errorf("upload %s: %w", resp.Output, err)
		}
	default:
		if err := os.MkdirAll(filepath.Dir(resp.Output), dirMode); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
		if err := renameio.WriteFile(resp.Output, []byte(resp.Source), fileMode); err != nil {
			return fmt.Errorf("write %s: %w", resp.Output, err)
		}
	}
	s.logger.Info().Str("output", resp.Output).Str("class", resp.ClassName).Msg("generated source")
	return nil
}

package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

var _ Exporter = (*FileExporter)(nil)

// FileExporter 결과를 텍스트 파일로 저장합니다
type FileExporter struct {
	Dir string
}

// NewFileExporter 저장 디렉터리를 지정합니다 (빈 값이면 현재 디렉터리)
func NewFileExporter(dir string) *FileExporter {
	if dir == "" {
		dir = "."
	}
	return &FileExporter{Dir: dir}
}

// Export 파일을 쓰고 경로를 반환합니다. 같은 이름의 파일은 덮어씁니다
func (e *FileExporter) Export(_ context.Context, doc Document) (string, error) {
	if err := os.MkdirAll(e.Dir, 0755); err != nil {
		return "", fmt.Errorf("디렉터리 생성 실패: %w", err)
	}

	path := filepath.Join(e.Dir, FileName(doc))
	if err := os.WriteFile(path, []byte(doc.Content), 0644); err != nil {
		return "", fmt.Errorf("파일 쓰기 실패: %w", err)
	}
	return path, nil
}

// Package logger --verbose 플래그가 켜졌을 때만 stderr 로 진행 상황을 출력합니다.
// 사용자에게 보여줄 결과는 여기가 아니라 각 명령/화면에서 출력합니다.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
)

// SetVerbose 상세 로그를 켜거나 끕니다
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose 상세 로그가 켜져 있는지 반환합니다
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput 로그 출력 대상을 바꿉니다 (기본 os.Stderr, 테스트용)
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

func logf(level, format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "["+level+"] "+format+"\n", args...)
	}
}

// Debug 디버그 메시지
func Debug(format string, args ...any) { logf("DEBUG", format, args...) }

// Info 정보 메시지
func Info(format string, args ...any) { logf("INFO", format, args...) }

// Warn 경고 메시지
func Warn(format string, args ...any) { logf("WARN", format, args...) }

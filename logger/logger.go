package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/mitchellh/go-homedir"
)

var (
	mu      sync.Mutex
	loggers []*log.Logger
	level   = DEBUG
)

// prefix
const (
	DEBUG = "DEBUG"
	INFO  = "INFO"
	WARN  = "WARN"
	ERROR = "ERROR"
	FATAL = "FATAL"
)

var levels = map[string]int{DEBUG: 0, INFO: 1, WARN: 2, ERROR: 3, FATAL: 4}

const flags = log.LstdFlags | log.Lshortfile | log.LUTC

func init() {
	loggers = []*log.Logger{log.New(os.Stdout, "", flags)}
	file, err := openLogFile()
	if err != nil {
		loggers[0].Println("[WARN] file logging disabled:", err)
		return
	}
	loggers = append(loggers, log.New(file, "", flags))
}

// openLogFile opens ~/.chunky/log/chunky.txt for appending.
func openLogFile() (*os.File, error) {
	dir, err := homedir.Dir()
	if err != nil {
		return nil, err
	}
	path := filepath.Join(dir, ".chunky", "log")
	if err = os.MkdirAll(path, os.ModePerm); err != nil {
		return nil, err
	}
	return os.OpenFile(filepath.Join(path, "chunky.txt"), os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
}

// SetOutput replaces every sink with w.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	loggers = []*log.Logger{log.New(w, "", flags)}
}

// SetLevel drops messages below lvl. Unknown levels are ignored.
func SetLevel(lvl string) {
	mu.Lock()
	defer mu.Unlock()
	if _, ok := levels[lvl]; ok {
		level = lvl
	}
}

func Debug(v ...any) {
	_log(DEBUG, v)
}
func Info(v ...any) {
	_log(INFO, v)
}
func Warn(v ...any) {
	_log(WARN, v)
}
func Error(v ...any) {
	_log(ERROR, v)
}
func Fatal(v ...any) {
	_log(FATAL, v)
}

func _log(prefix string, v []any) {
	mu.Lock()
	defer mu.Unlock()
	if levels[prefix] < levels[level] {
		return
	}
	logPrefix := callerPrefix(prefix)
	for _, l := range loggers {
		l.SetPrefix(logPrefix)
		l.Println(v...)
	}
}

func callerPrefix(logType string) string {
	_, file, line, ok := runtime.Caller(3)
	if ok {
		return fmt.Sprintf("[%s][%s:%d]", logType, filepath.Base(file), line)
	}
	return fmt.Sprintf("[%s]", logType)
}

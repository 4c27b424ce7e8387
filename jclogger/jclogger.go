package jclogger

import (
	"log"
	"os"
	"path/filepath"
)

const LOG_FILE = "logs/jsonconv.log"

type JCLogger struct {
	log.Logger
}

func NewJCLoggerByLogName(logFile string) *JCLogger {
	os.MkdirAll(filepath.Dir(logFile), 0755)
	file, _ := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	return &JCLogger{
		Logger: *log.New(file, "JSONCONV ", log.Ldate|log.Ltime),
	}
}

func NewJCLoggerByFile(file *os.File) *JCLogger {
	return &JCLogger{
		Logger: *log.New(file, "JSONCONV ", log.Ldate|log.Ltime),
	}
}

var JCLoggerInstance *JCLogger = NewJCLoggerByLogName(LOG_FILE)

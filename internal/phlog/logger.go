/*
 *     Copyright 2025 The Pigeonhole Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package logger is the process-wide logging facade, backed by zap.
package logger

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

// CoreLogFileName is the file the rotating logger writes under the
// configured log directory.
const CoreLogFileName = "core.log"

const (
	defaultMaxSize    = 100 // megabytes
	defaultMaxAge     = 7   // days
	defaultMaxBackups = 3
)

var coreLogger *zap.SugaredLogger

// LogLevel is the shared level of every logger this package builds.
var LogLevel = zap.NewAtomicLevel()

func init() {
	log, _ := zap.NewDevelopment(zap.AddCallerSkip(1))
	coreLogger = log.Sugar()
}

// CreateLogger builds a JSON file logger rotating at filePath.
func CreateLogger(filePath string, maxSize, maxAge, maxBackups int, compress bool) (*zap.Logger, error) {
	if err := os.MkdirAll(filepath.Dir(filePath), 0700); err != nil {
		return nil, err
	}

	rotateConfig := &lumberjack.Logger{
		Filename:   filePath,
		MaxSize:    maxSize,
		MaxAge:     maxAge,
		MaxBackups: maxBackups,
		LocalTime:  true,
		Compress:   compress,
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05.000")

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(rotateConfig),
		LogLevel,
	)

	return zap.New(core, zap.AddCaller(), zap.AddStacktrace(zap.WarnLevel), zap.AddCallerSkip(1)), nil
}

// InitCLI wires the process logger for the command line client.
// Console mode writes development output to the terminal; otherwise a
// rotating file logger is created under dir.
func InitCLI(verbose, console bool, dir string) error {
	if verbose {
		LogLevel.SetLevel(zapcore.DebugLevel)
	} else {
		LogLevel.SetLevel(zapcore.InfoLevel)
	}

	if console {
		opts := []zap.Option{zap.AddCallerSkip(1)}
		if !verbose {
			opts = append(opts, zap.IncreaseLevel(zapcore.InfoLevel))
		}

		log, err := zap.NewDevelopment(opts...)
		if err != nil {
			return err
		}

		SetCoreLogger(log.Sugar())
		return nil
	}

	log, err := CreateLogger(filepath.Join(dir, CoreLogFileName), defaultMaxSize, defaultMaxAge, defaultMaxBackups, false)
	if err != nil {
		return err
	}

	SetCoreLogger(log.Sugar())
	return nil
}

// SetCoreLogger replaces the logger behind the package-level funcs.
func SetCoreLogger(log *zap.SugaredLogger) {
	coreLogger = log
}

// SugaredLoggerOnWith carries structured key-value pairs applied to
// every message logged through it.
type SugaredLoggerOnWith struct {
	withArgs []any
}

func With(args ...any) *SugaredLoggerOnWith {
	return &SugaredLoggerOnWith{
		withArgs: args,
	}
}

func (log *SugaredLoggerOnWith) Infof(template string, args ...any) {
	coreLogger.Infow(fmt.Sprintf(template, args...), log.withArgs...)
}

func (log *SugaredLoggerOnWith) Warnf(template string, args ...any) {
	coreLogger.Warnw(fmt.Sprintf(template, args...), log.withArgs...)
}

func (log *SugaredLoggerOnWith) Errorf(template string, args ...any) {
	coreLogger.Errorw(fmt.Sprintf(template, args...), log.withArgs...)
}

func (log *SugaredLoggerOnWith) Debugf(template string, args ...any) {
	coreLogger.Debugw(fmt.Sprintf(template, args...), log.withArgs...)
}

func Infof(template string, args ...any) {
	coreLogger.Infof(template, args...)
}

func Warnf(template string, args ...any) {
	coreLogger.Warnf(template, args...)
}

func Errorf(template string, args ...any) {
	coreLogger.Errorf(template, args...)
}

func Debugf(template string, args ...any) {
	coreLogger.Debugf(template, args...)
}

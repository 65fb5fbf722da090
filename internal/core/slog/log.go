package slog

import (
	"maps"
	"sync"
	"time"

	"github.com/inoxlang/substrate/internal/config"
	"github.com/rs/zerolog"
)

const (
	SOURCE_FIELD_NAME = "src"

	DebugLevel = zerolog.DebugLevel
	InfoLevel  = zerolog.InfoLevel
	WarnLevel  = zerolog.WarnLevel
	ErrorLevel = zerolog.ErrorLevel
	TraceLevel = zerolog.TraceLevel
)

var (
	DEFAULT_LEVELS = NewLevels(LevelsInitialization{DefaultLevel: config.LOG_LEVEL})
)

func init() {
	//configure zerolog fields

	zerolog.DurationFieldInteger = false
	zerolog.DurationFieldUnit = time.Millisecond
	zerolog.MessageFieldName = "msg"
	zerolog.LevelFieldName = "lvl"
	zerolog.TimestampFieldName = "tm"
}

// ChildLoggerForSource returns a copy of logger with the src field set. If levels is not nil the level
// configured for src is applied.
func ChildLoggerForSource(logger zerolog.Logger, src string, levels *Levels) zerolog.Logger {
	logger = logger.With().Str(SOURCE_FIELD_NAME, src).Logger()
	if levels != nil {
		logger = logger.Level(levels.LevelFor(src))
	}
	return logger
}

type Levels struct {
	lock         sync.Mutex
	defaultLevel zerolog.Level
	levelBySrc   map[string]zerolog.Level
}

type LevelsInitialization struct {
	DefaultLevel zerolog.Level
	BySource     map[string]zerolog.Level
}

func NewLevels(init LevelsInitialization) *Levels {
	bySrc := init.BySource
	if bySrc == nil {
		bySrc = map[string]zerolog.Level{}
	} else {
		bySrc = maps.Clone(bySrc)
	}

	return &Levels{
		defaultLevel: init.DefaultLevel,
		levelBySrc:   bySrc,
	}
}

func (l *Levels) LevelFor(src string) zerolog.Level {
	l.lock.Lock()
	defer l.lock.Unlock()

	level, ok := l.levelBySrc[src]
	if ok {
		return level
	}
	return l.defaultLevel
}

func (l *Levels) SetLevel(src string, level zerolog.Level) {
	l.lock.Lock()
	defer l.lock.Unlock()

	l.levelBySrc[src] = level
}

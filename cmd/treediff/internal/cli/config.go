package cli

import (
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/HuygensING/alexandria-markup-sub001/ted"
)

const (
	configBaseName = "treediff"
	configFileName = configBaseName + ".yaml"

	envPrefix = "TREEDIFF"

	configFlagName   = "config"
	verboseFlagName  = "verbose"
	logFileFlagName  = "log-file"
	formatFlagName   = "format"
	detailFlagName   = "detail"
	colorFlagName    = "color"
	maxCellsFlagName = "max-cells"
	textFlagName     = "text"

	formatKey       = "diff.format"
	detailKey       = "diff.detail"
	colorKey        = "diff.color"
	maxCellsKey     = "diff.max_cells"
	markdownTextKey = "markdown.text"
	showFormatKey   = "show.format"

	defaultFormat     = "text"
	defaultDetail     = false
	defaultColor      = "auto"
	defaultShowFormat = "outline"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".treediff.log"
	defaultLogLevel      = "info"
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

// newConfig returns a viper instance with defaults and environment lookup.
func newConfig() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	v.SetDefault(formatKey, defaultFormat)
	v.SetDefault(detailKey, defaultDetail)
	v.SetDefault(colorKey, defaultColor)
	v.SetDefault(maxCellsKey, ted.DefaultMaxCells)
	v.SetDefault(markdownTextKey, false)
	v.SetDefault(showFormatKey, defaultShowFormat)

	v.SetDefault(logFilenameKey, defaultLogFilename)
	v.SetDefault(logLevelKey, defaultLogLevel)
	v.SetDefault(logVerboseKey, false)
	v.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	v.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	v.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	v.SetDefault(logCompressKey, defaultLogCompress)

	return v
}

// readConfig loads path into v. A missing file is an error only when the
// user asked for it explicitly.
func readConfig(v *viper.Viper, path string, explicit bool) error {
	v.SetConfigFile(path)
	err := v.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if !explicit && (errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)) {
		return nil
	}

	return err
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Numeric slog levels, e.g. -4 for debug.
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger builds a text logger writing to a rotating file. It logs
// at log.level, or at Debug when verbose.
func configureLogger(v *viper.Viper) (*slog.Logger, io.Closer) {
	logPath := strings.TrimSpace(v.GetString(logFilenameKey))
	if logPath == "" {
		logPath = defaultLogFilename
	}

	level := parseSlogLevel(v.GetString(logLevelKey), slog.LevelInfo)
	if v.GetBool(logVerboseKey) {
		level = slog.LevelDebug
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    v.GetInt(logMaxSizeKey),
		MaxBackups: v.GetInt(logMaxBackupsKey),
		MaxAge:     v.GetInt(logMaxAgeKey),
		Compress:   v.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     level,
	})

	return slog.New(handler), logWriter
}

package config

import (
	"log/slog"

	"github.com/fsnotify/fsnotify"
)

// WatchClient загружает конфигурацию клиента и вызывает onChange при каждой
// успешной перечитке файла. Невалидный файл логируется и игнорируется,
// onChange получает только корректные значения
func WatchClient(path string, logger *slog.Logger, onChange func(*Client)) (*Client, error) {
	v, err := newViper(path)
	if err != nil {
		return nil, err
	}
	setClientDefaults(v)

	cfg, err := decodeClient(v)
	if err != nil {
		return nil, err
	}
	if path == "" {
		return cfg, nil
	}

	v.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		next, err := decodeClient(v)
		if err != nil {
			logger.Warn("ignoring invalid client config", slog.String("file", e.Name), slog.Any("error", err))
			return
		}
		logger.Info("client config reloaded", slog.String("file", e.Name))
		onChange(next)
	})
	v.WatchConfig()

	return cfg, nil
}

/*
 * Copyright (c) 2026 Francesco Biribo'
 *
 * Permission to use, copy, modify, and distribute this software for any purpose with or without fee is hereby granted, provided that the above copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package config

import (
	"fmt"
	"time"

	env "github.com/Netflix/go-env"
	"github.com/joho/godotenv"
)

type Config struct {
	DBPath        string `env:"DB_PATH,default=teenconnect.db"`
	ServerPort    uint16 `env:"SERVER_PORT,default=8080"`
	SessionSecret string `env:"SESSION_SECRET,required=true"`

	ReadTimeout  time.Duration `env:"READ_TIMEOUT,default=10s"`
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT,default=10s"`

	StoreTimeout time.Duration `env:"STORE_TIMEOUT,default=5s"` // Bounded timeout applied to every backing store call
	HistoryLimit int           `env:"HISTORY_LIMIT,default=200"`
	CacheTTL     time.Duration `env:"CACHE_TTL,default=2s"`

	BibleAPIBase    string        `env:"BIBLE_API_BASE,default=https://bible-api.com"`
	BibleAPITimeout time.Duration `env:"BIBLE_API_TIMEOUT,default=8s"`

	Logging bool `env:"LOGGING,default=true"`
}

// Load reads an optional .env file, then unmarshals the environment into a Config
func Load() (*Config, error) {
	godotenv.Load()

	var cfg Config
	if _, err := env.UnmarshalFromEnviron(&cfg); err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}
	if cfg.HistoryLimit <= 0 {
		return nil, fmt.Errorf("HISTORY_LIMIT must be positive, got %d", cfg.HistoryLimit)
	}
	return &cfg, nil
}

package config

import (
	"errors"
	"flag"
	"github.com/caarlos0/env/v8"
	"github.com/joho/godotenv"
	"io/fs"
	"os"
	"time"
)

type Config interface {
	ServerAddress() string
	SocketAddress() string
	InitialStatePath() string
	MetricsAddress() string
	LogLevel() string
	LogFormat() string
	RequestTimeout() time.Duration
	PollInterval() time.Duration
	FlashTTL() time.Duration
}

type Builder struct {
	parameters *parameters
	arguments  []string
	err        error
}

type parameters struct {
	ServerAddress    string        `env:"LIEFERSPATZ_ADDRESS"`
	SocketAddress    string        `env:"SOCKET_ADDRESS"`
	InitialStatePath string        `env:"INITIAL_STATE"`
	MetricsAddress   string        `env:"METRICS_ADDRESS"`
	LogLevel         string        `env:"LOG_LEVEL"`
	LogFormat        string        `env:"LOG_FORMAT"`
	RequestTimeout   time.Duration `env:"REQUEST_TIMEOUT"`
	PollInterval     time.Duration `env:"POLL_INTERVAL"`
	FlashTTL         time.Duration `env:"FLASH_TTL"`
}

const (
	defaultServerAddress  = "http://localhost:5000"
	defaultSocketAddress  = "ws://localhost:5000/ws"
	defaultLogLevel       = "info"
	defaultLogFormat      = "console"
	defaultRequestTimeout = 10 * time.Second
	defaultPollInterval   = 10 * time.Second
	defaultFlashTTL       = 3 * time.Second
)

func NewBuilder() *Builder {
	return &Builder{
		parameters: &parameters{
			ServerAddress:  defaultServerAddress,
			SocketAddress:  defaultSocketAddress,
			LogLevel:       defaultLogLevel,
			LogFormat:      defaultLogFormat,
			RequestTimeout: defaultRequestTimeout,
			PollInterval:   defaultPollInterval,
			FlashTTL:       defaultFlashTTL,
		},
		arguments: os.Args[1:],
	}
}

// LoadDotEnv загружает переменные окружения из файла .env, если он есть.
// Уже заданные переменные не перезаписываются.
func (b *Builder) LoadDotEnv(filenames ...string) *Builder {
	if b.err != nil {
		return b
	}

	if err := godotenv.Load(filenames...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		b.err = err
	}

	return b
}

func (b *Builder) LoadEnv() *Builder {
	if b.err != nil {
		return b
	}

	b.err = env.Parse(b.parameters)

	return b
}

func (b *Builder) LoadFlags() *Builder {
	if b.err != nil {
		return b
	}

	flags := flag.NewFlagSet("lieferspatz", flag.ContinueOnError)
	flags.StringVar(&b.parameters.ServerAddress, "a", b.parameters.ServerAddress, "адрес веб-приложения")
	flags.StringVar(&b.parameters.SocketAddress, "w", b.parameters.SocketAddress, "адрес WebSocket-сервера уведомлений")
	flags.StringVar(&b.parameters.InitialStatePath, "s", b.parameters.InitialStatePath, "путь к файлу с начальным состоянием страницы")
	flags.StringVar(&b.parameters.MetricsAddress, "m", b.parameters.MetricsAddress, "адрес HTTP-сервера метрик, пустой - не запускать")
	flags.StringVar(&b.parameters.LogLevel, "l", b.parameters.LogLevel, "уровень логирования")
	b.err = flags.Parse(b.arguments)

	return b
}

func (b *Builder) Build() (Config, error) {
	return b, b.err
}

func (b *Builder) ServerAddress() string {
	return b.parameters.ServerAddress
}

func (b *Builder) SocketAddress() string {
	return b.parameters.SocketAddress
}

func (b *Builder) InitialStatePath() string {
	return b.parameters.InitialStatePath
}

func (b *Builder) MetricsAddress() string {
	return b.parameters.MetricsAddress
}

func (b *Builder) LogLevel() string {
	return b.parameters.LogLevel
}

func (b *Builder) LogFormat() string {
	return b.parameters.LogFormat
}

func (b *Builder) RequestTimeout() time.Duration {
	return b.parameters.RequestTimeout
}

func (b *Builder) PollInterval() time.Duration {
	return b.parameters.PollInterval
}

func (b *Builder) FlashTTL() time.Duration {
	return b.parameters.FlashTTL
}

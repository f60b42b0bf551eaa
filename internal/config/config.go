package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "toml"
	configDir  = ".mca"
	envPrefix  = "MCA"
)

const (
	HistoryBackendJSONL  = "jsonl"
	HistoryBackendMemory = "memory"
	HistoryBackendSQLite = "sqlite"

	GameAdapterEcho = "echo"
	GameAdapterExec = "exec"

	LocatorBackendStub     = "stub"
	LocatorBackendDemo     = "demo"
	LocatorBackendCubiomes = "cubiomes"

	VoiceModePushToTalk      = "push_to_talk"
	VoiceModeAlwaysListening = "always_listening"
)

// Config is the resolved, read-only settings snapshot handed to the wiring
// layer. Nothing downstream reads viper directly.
type Config struct {
	HomeDir       string
	LogLevel      string
	Game          GameConfig
	Runtime       RuntimeConfig
	History       HistoryConfig
	Conversations ConversationsConfig
	Locator       LocatorConfig
	SeedCracker   SeedCrackerConfig
	Schematics    SchematicsConfig
	Voice         VoiceConfig
}

type GameConfig struct {
	Adapter       string
	ExecBin       string
	ExecArgs      []string
	CommandPrefix string
}

type RuntimeConfig struct {
	CommandTimeout time.Duration
	MaxRetries     int
	RetryDelay     time.Duration
	QueueCapacity  int
	RetainFinished int
}

type HistoryConfig struct {
	Backend        string
	Path           string
	MemoryCapacity int
}

type ConversationsConfig struct {
	Path string
}

type LocatorConfig struct {
	Backend          string
	Fallback         string
	CubiomesBin      string
	MinecraftVersion string
}

type SeedCrackerConfig struct {
	LogPath        string
	DataPermission bool
}

type SchematicsConfig struct {
	Root string
}

type VoiceConfig struct {
	Mode        string
	WakeWord    string
	Sensitivity float64
	MaxChars    int
}

// Load reads $HOME/.mca/config.toml when present, overlays MCA_* environment
// variables and applies defaults. Keys set directly on v win over both.
func Load(v *viper.Viper) (Config, error) {
	if v == nil {
		v = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("resolve home directory: %w", err)
	}
	baseDir := filepath.Join(homeDir, configDir)

	v.SetConfigName(configName)
	v.SetConfigType(configType)
	v.AddConfigPath(baseDir)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v, baseDir)

	if err := v.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	backend := strings.ToLower(strings.TrimSpace(v.GetString("history.backend")))
	historyPath := v.GetString("history.path")
	if historyPath == "" {
		historyPath = defaultHistoryPath(baseDir, backend)
	}

	cfg := Config{
		HomeDir:  homeDir,
		LogLevel: strings.ToLower(strings.TrimSpace(v.GetString("log.level"))),
		Game: GameConfig{
			Adapter:       strings.ToLower(strings.TrimSpace(v.GetString("game.adapter"))),
			ExecBin:       expandHome(v.GetString("game.exec_bin"), homeDir),
			ExecArgs:      v.GetStringSlice("game.exec_args"),
			CommandPrefix: v.GetString("game.command_prefix"),
		},
		Runtime: RuntimeConfig{
			CommandTimeout: v.GetDuration("runtime.command_timeout"),
			MaxRetries:     v.GetInt("runtime.max_retries"),
			RetryDelay:     v.GetDuration("runtime.retry_delay"),
			QueueCapacity:  v.GetInt("runtime.queue_capacity"),
			RetainFinished: v.GetInt("runtime.retain_finished"),
		},
		History: HistoryConfig{
			Backend:        backend,
			Path:           expandHome(historyPath, homeDir),
			MemoryCapacity: v.GetInt("history.memory_capacity"),
		},
		Conversations: ConversationsConfig{
			Path: expandHome(v.GetString("conversations.path"), homeDir),
		},
		Locator: LocatorConfig{
			Backend:          strings.ToLower(strings.TrimSpace(v.GetString("locator.backend"))),
			Fallback:         strings.ToLower(strings.TrimSpace(v.GetString("locator.fallback"))),
			CubiomesBin:      expandHome(v.GetString("locator.cubiomes_bin"), homeDir),
			MinecraftVersion: v.GetString("locator.minecraft_version"),
		},
		SeedCracker: SeedCrackerConfig{
			LogPath:        expandHome(v.GetString("seedcracker.log_path"), homeDir),
			DataPermission: v.GetBool("seedcracker.data_permission"),
		},
		Schematics: SchematicsConfig{
			Root: expandHome(v.GetString("schematics.root"), homeDir),
		},
		Voice: VoiceConfig{
			Mode:        strings.ToLower(strings.TrimSpace(v.GetString("voice.mode"))),
			WakeWord:    strings.ToLower(strings.TrimSpace(v.GetString("voice.wake_word"))),
			Sensitivity: v.GetFloat64("voice.sensitivity"),
			MaxChars:    v.GetInt("voice.max_chars"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper, baseDir string) {
	v.SetDefault("log.level", "warn")
	v.SetDefault("game.adapter", GameAdapterEcho)
	v.SetDefault("game.exec_bin", "")
	v.SetDefault("game.exec_args", []string{})
	v.SetDefault("game.command_prefix", "/")
	v.SetDefault("runtime.command_timeout", 5*time.Second)
	v.SetDefault("runtime.max_retries", 1)
	v.SetDefault("runtime.retry_delay", 250*time.Millisecond)
	v.SetDefault("runtime.queue_capacity", 64)
	v.SetDefault("runtime.retain_finished", 100)
	v.SetDefault("history.backend", HistoryBackendJSONL)
	v.SetDefault("history.path", "")
	v.SetDefault("history.memory_capacity", 200)
	v.SetDefault("conversations.path", filepath.Join(baseDir, "conversations.toml"))
	v.SetDefault("locator.backend", LocatorBackendStub)
	v.SetDefault("locator.fallback", "")
	v.SetDefault("locator.cubiomes_bin", "")
	v.SetDefault("locator.minecraft_version", "1.20.1")
	v.SetDefault("seedcracker.log_path", "")
	v.SetDefault("seedcracker.data_permission", true)
	v.SetDefault("schematics.root", filepath.Join(baseDir, "schematics"))
	v.SetDefault("voice.mode", VoiceModePushToTalk)
	v.SetDefault("voice.wake_word", "assistant")
	v.SetDefault("voice.sensitivity", 0.1)
	v.SetDefault("voice.max_chars", 500)
}

func defaultHistoryPath(baseDir, backend string) string {
	if backend == HistoryBackendSQLite {
		return filepath.Join(baseDir, "history.sqlite")
	}

	return filepath.Join(baseDir, "history.jsonl")
}

func expandHome(path, homeDir string) string {
	if path == "~" {
		return homeDir
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(homeDir, path[2:])
	}

	return path
}

func (c Config) Validate() error {
	var problems []string

	if c.Runtime.CommandTimeout <= 0 {
		problems = append(problems, "runtime.command_timeout must be positive")
	}
	if c.Runtime.MaxRetries < 0 {
		problems = append(problems, "runtime.max_retries must not be negative")
	}
	if c.Runtime.RetryDelay < 0 {
		problems = append(problems, "runtime.retry_delay must not be negative")
	}
	if c.Runtime.QueueCapacity <= 0 {
		problems = append(problems, "runtime.queue_capacity must be positive")
	}
	if c.Runtime.RetainFinished <= 0 {
		problems = append(problems, "runtime.retain_finished must be positive")
	}

	switch c.History.Backend {
	case HistoryBackendJSONL, HistoryBackendSQLite:
		if c.History.Path == "" {
			problems = append(problems, "history.path is empty")
		}
	case HistoryBackendMemory:
		if c.History.MemoryCapacity <= 0 {
			problems = append(problems, "history.memory_capacity must be positive")
		}
	default:
		problems = append(problems, fmt.Sprintf("unknown history.backend %q", c.History.Backend))
	}

	switch c.Game.Adapter {
	case GameAdapterEcho:
	case GameAdapterExec:
		if c.Game.ExecBin == "" {
			problems = append(problems, "game.exec_bin is required for the exec adapter")
		}
	default:
		problems = append(problems, fmt.Sprintf("unknown game.adapter %q", c.Game.Adapter))
	}

	switch c.Locator.Backend {
	case LocatorBackendStub, LocatorBackendDemo:
	case LocatorBackendCubiomes:
		if c.Locator.CubiomesBin == "" {
			problems = append(problems, "locator.cubiomes_bin is required for the cubiomes backend")
		}
	default:
		problems = append(problems, fmt.Sprintf("unknown locator.backend %q", c.Locator.Backend))
	}

	switch c.Locator.Fallback {
	case "", LocatorBackendStub, LocatorBackendDemo:
	default:
		problems = append(problems, fmt.Sprintf("locator.fallback must be stub or demo, got %q", c.Locator.Fallback))
	}

	switch c.Voice.Mode {
	case VoiceModePushToTalk, VoiceModeAlwaysListening:
	default:
		problems = append(problems, fmt.Sprintf("unknown voice.mode %q", c.Voice.Mode))
	}
	if c.Voice.MaxChars <= 0 {
		problems = append(problems, "voice.max_chars must be positive")
	}

	if c.Conversations.Path == "" {
		problems = append(problems, "conversations.path is empty")
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}

	return nil
}
